package lru

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/lru/internal/grammar"
	"github.com/ghettovoice/lru/internal/log"
	"github.com/ghettovoice/lru/internal/util"
)

// Pass is one idempotent rewrite over LRU text.
type Pass struct {
	Name  string
	Apply func(LRU) (LRU, error)
}

// Canonicalizer applies the default canonicalization chain, then any Extra
// passes, producing one canonical LRU per equivalence class of input URLs.
//
// The default chain strips scheme-standard port stems, lowercases scheme and
// host values, collapses a trailing empty path stem right after the host
// block, recodes path/query/fragment values and ensures the trailing pipe.
// Looser equivalence classes (www stripping, fragment stripping, query
// reordering) are opt-in through Extra.
type Canonicalizer struct {
	// Extra passes run after the default chain.
	Extra []Pass
	// Logger traces passes at debug level; nil means no logging.
	Logger *slog.Logger
}

var defaultPasses = []Pass{
	{"strip-standard-ports", StripStandardPorts},
	{"lowerize-host", LowerizeHost},
	{"strip-host-trailing-slash", StripHostTrailingSlash},
	{"recode-stems", RecodeStems},
	{"trailing-pipe", func(l LRU) (LRU, error) { return withTrailingPipe(l), nil }},
}

// Canonicalize runs l through the default chain and the Extra passes.
func (c *Canonicalizer) Canonicalize(l LRU) (LRU, error) {
	lg := c.Logger
	if lg == nil {
		lg = log.Noop
	}
	for _, passes := range [][]Pass{defaultPasses, c.Extra} {
		for _, p := range passes {
			next, err := p.Apply(l)
			if err != nil {
				lg.Debug("canonicalize pass failed",
					"pass", p.Name, "in", log.StringValue(l), "error", log.FmtValue(err, false))
				return "", errtrace.Wrap(err)
			}
			lg.Debug("canonicalize pass applied",
				"pass", p.Name, "in", log.StringValue(l), "out", log.StringValue(next))
			l = next
		}
	}
	return l, nil
}

var defCanonicalizer = &Canonicalizer{}

// Canonicalize applies the default canonicalization chain to l.
func Canonicalize(l LRU) (LRU, error) {
	return errtrace.Wrap2(defCanonicalizer.Canonicalize(l))
}

// StripStandardPorts removes port stems that carry no information: t:80 under
// the http scheme and t:443 under https.
func StripStandardPorts(l LRU) (LRU, error) {
	stems, err := SplitStems(l, false)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	var scheme string
	for _, st := range stems {
		if st.Type == StemScheme {
			scheme = st.Value
			break
		}
	}
	kept := stems[:0]
	for _, st := range stems {
		if st.Type == StemPort &&
			(st.Value == "80" && util.EqFold(scheme, "http") ||
				st.Value == "443" && util.EqFold(scheme, "https")) {
			continue
		}
		kept = append(kept, st)
	}
	return joinStems(kept), nil
}

// LowerizeHost lowercases scheme and host stem values.
func LowerizeHost(l LRU) (LRU, error) {
	stems, err := SplitStems(l, true)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	for i, st := range stems {
		if st.Type == StemScheme || st.Type == StemHost {
			stems[i].Value = util.LCase(st.Value)
		}
	}
	return joinStems(stems), nil
}

var hostTrailingSlashRx = regexp.MustCompile(`(h:[^|]*)\|p:\|?$`)

// StripHostTrailingSlash collapses a trailing empty path stem that directly
// follows the host block: a bare host and a host with a trailing slash are
// the same resource.
func StripHostTrailingSlash(l LRU) (LRU, error) {
	return LRU(hostTrailingSlashRx.ReplaceAllString(string(l), "$1")), nil
}

// RecodeStems re-percent-encodes path, query and fragment stem values to
// collapse encoding variants.
func RecodeStems(l LRU) (LRU, error) {
	stems, err := SplitStems(l, true)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	for i, st := range stems {
		switch st.Type {
		case StemPath:
			stems[i].Value = grammar.Recode(st.Value, "/+")
		case StemQuery:
			stems[i].Value = grammar.RecodeQuery(st.Value)
		case StemFragment:
			stems[i].Value = grammar.Recode(st.Value, "")
		}
	}
	return joinStems(stems), nil
}

// StripWWW removes a www host label. Not part of the default chain.
func StripWWW(l LRU) (LRU, error) {
	stems, err := SplitStems(l, true)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	kept := stems[:0]
	for _, st := range stems {
		if st.Type == StemHost && st.Value == "www" {
			continue
		}
		kept = append(kept, st)
	}
	return joinStems(kept), nil
}

// StripFragments removes fragment stems. Not part of the default chain.
func StripFragments(l LRU) (LRU, error) {
	stems, err := SplitStems(l, true)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	kept := stems[:0]
	for _, st := range stems {
		if st.Type == StemFragment {
			continue
		}
		kept = append(kept, st)
	}
	return joinStems(kept), nil
}

var queryStemRx = regexp.MustCompile(`\|q:([^|]*)`)

// SortQuery reorders query parameter pairs alphabetically. Not part of the
// default chain.
func SortQuery(l LRU) (LRU, error) {
	m := queryStemRx.FindStringSubmatchIndex(string(l))
	if m == nil || m[2] < 0 {
		return withTrailingPipe(l), nil
	}
	pairs := strings.Split(string(l)[m[2]:m[3]], "&")
	sort.Strings(pairs)
	return withTrailingPipe(LRU(string(l)[:m[2]] + strings.Join(pairs, "&") + string(l)[m[3]:])), nil
}

var pathTrailingSlashRx = regexp.MustCompile(`(p:\|?)+$`)

// StripPathTrailingSlash drops repeated empty path stems at the end of an
// LRU prefix, keeping a single one. Not part of the default chain.
func StripPathTrailingSlash(l LRU) (LRU, error) {
	return LRU(pathTrailingSlashRx.ReplaceAllString(string(l), "$1")), nil
}
