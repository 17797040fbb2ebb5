package lru

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/lru/internal/errorutil"
	"github.com/ghettovoice/lru/internal/grammar"
	"github.com/ghettovoice/lru/internal/util"
)

// ToURL reassembles the URL an LRU encodes.
//
// In strict mode the input must match the canonical LRU surface pattern
// (ErrNotALRU) and pass stem validation (ErrMalformedLRU). Default ports are
// elided and path/query/fragment values are recoded, so a round trip through
// FromURL canonicalizes rather than reproducing the input byte for byte.
func ToURL(l LRU, strict bool) (string, error) {
	if strict && !grammar.IsLRU(string(l)) {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrNotALRU, "%q", l))
	}
	stems, err := SplitStems(l, strict)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	var (
		scheme, port, query, fragment string
		hosts, paths                  []string
		hasScheme, hasPort            bool
		hasQuery, hasFragment         bool
		emptyPath                     bool
	)
	for _, st := range stems {
		switch st.Type {
		case StemScheme:
			if !hasScheme {
				scheme, hasScheme = st.Value, true
			}
		case StemPort:
			if !hasPort {
				port, hasPort = st.Value, true
			}
		case StemHost:
			hosts = append(hosts, st.Value)
		case StemPath:
			paths = append(paths, st.Value)
			if st.Value == "" {
				emptyPath = true
			}
		case StemQuery:
			if !hasQuery {
				query, hasQuery = st.Value, true
			}
		case StemFragment:
			if !hasFragment {
				fragment, hasFragment = st.Value, true
			}
		}
	}
	if !hasScheme {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrNotALRU, "%q", l))
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(scheme)
	sb.WriteString("://")
	// Host labels are stored TLD-first; emit them back in original order.
	for i := len(hosts) - 1; i >= 0; i-- {
		sb.WriteString(hosts[i])
		if i > 0 {
			sb.WriteByte('.')
		}
	}
	if hasPort && port != "" && port != "80" && port != "443" {
		sb.WriteByte(':')
		sb.WriteString(port)
	}
	if len(paths) > 0 {
		path := strings.Join(paths, "/")
		if path != "" {
			sb.WriteByte('/')
			sb.WriteString(grammar.Recode(path, "/+"))
		} else if emptyPath {
			sb.WriteByte('/')
		}
	}
	if hasQuery {
		sb.WriteByte('?')
		sb.WriteString(grammar.RecodeQuery(query))
	}
	if hasFragment {
		sb.WriteByte('#')
		sb.WriteString(grammar.Recode(fragment, ""))
	}
	return sb.String(), nil
}

// ConvertLRU canonicalizes an LRU and reassembles its URL in one step.
func ConvertLRU(l LRU) (string, LRU, error) {
	cl, err := Canonicalize(l)
	if err != nil {
		return "", "", errtrace.Wrap(err)
	}
	u, err := ToURL(cl, true)
	if err != nil {
		return "", "", errtrace.Wrap(err)
	}
	return u, cl, nil
}
