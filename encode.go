package lru

import (
	"slices"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/lru/internal/constraints"
	"github.com/ghettovoice/lru/internal/errorutil"
	"github.com/ghettovoice/lru/internal/grammar"
	"github.com/ghettovoice/lru/internal/util"
)

// FromURL converts an absolute http/https URL to its raw LRU form.
//
// The host is lowercased and split into labels emitted in reverse order,
// except for special hosts (IPv4/IPv6 literals, localhost) which are kept as
// a single stem. An omitted port defaults to 80 for http and 443 for https.
// Path, query and fragment stems are emitted only when the component is
// present in the URL, so an empty query ("?") stays distinguishable from no
// query at all.
func FromURL[T constraints.Byteseq](src T) (LRU, error) {
	u, err := grammar.ParseURL(src)
	if err != nil {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrNotAURL, err))
	}
	if !grammar.IsHTTPScheme(u.Scheme) || !u.HasAuthority || u.Authority == "" {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrNotAURL, "%q", src))
	}
	auth, err := grammar.ParseAuthority(u.Authority)
	if err != nil {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrNotAURL, err))
	}

	var labels []string
	if grammar.IsSpecialHost(auth.Host) {
		labels = []string{auth.Host}
	} else {
		labels = dns.SplitDomainName(util.LCase(auth.Host))
		slices.Reverse(labels)
	}

	port := auth.Port
	if port == "" {
		if u.Scheme == "https" {
			port = "443"
		} else {
			port = "80"
		}
	}

	stems := make([]Stem, 0, len(labels)+4)
	stems = append(stems, Stem{StemScheme, util.LCase(u.Scheme)}, Stem{StemPort, port})
	for _, lb := range labels {
		if lb != "" {
			stems = append(stems, Stem{StemHost, lb})
		}
	}
	if u.Path != "" {
		path := strings.TrimPrefix(grammar.Recode(u.Path, "/+"), "/")
		for _, seg := range strings.Split(path, "/") {
			stems = append(stems, Stem{StemPath, seg})
		}
	}
	if u.HasQuery {
		stems = append(stems, Stem{StemQuery, grammar.RecodeQuery(u.Query)})
	}
	if u.HasFragment {
		stems = append(stems, Stem{StemFragment, grammar.Recode(u.Fragment, "")})
	}
	return joinStems(stems), nil
}

// CanonicalFromURL converts a URL to its canonical LRU: FromURL followed by
// the default canonicalization pipeline.
func CanonicalFromURL[T constraints.Byteseq](src T) (LRU, error) {
	l, err := FromURL(src)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return errtrace.Wrap2(Canonicalize(l))
}
