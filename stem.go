package lru

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/lru/internal/errorutil"
	"github.com/ghettovoice/lru/internal/grammar"
	"github.com/ghettovoice/lru/internal/util"
)

// LRU is the reversed-label, pipe-delimited, typed-stem text form of a URL.
// Host labels are stored TLD-first so that two LRUs sharing a domain share a
// textual prefix.
type LRU string

// String returns the LRU text.
func (l LRU) String() string { return string(l) }

// StemType identifies the kind of a stem.
type StemType string

const (
	StemScheme   StemType = "s"
	StemPort     StemType = "t"
	StemHost     StemType = "h"
	StemPath     StemType = "p"
	StemQuery    StemType = "q"
	StemFragment StemType = "f"
)

// Stem is one typed token of an LRU.
type Stem struct {
	Type  StemType
	Value string
}

// String returns the "type:value" rendering of the stem.
func (s Stem) String() string { return string(s.Type) + ":" + s.Value }

// SplitStems tokenizes l into its ordered stems.
//
// When validate is true the sequence must open with a scheme stem followed by
// a port stem and a host stem, unless the second stem holds a special host
// form (IPv4 literal, bracketed IPv6 literal or localhost) standing in for
// the port+host pair; violations yield ErrMalformedLRU. When validate is
// false grammar checking is skipped and whatever stems are present are
// returned, never an error.
func SplitStems(l LRU, validate bool) ([]Stem, error) {
	pre, toks := grammar.SplitStems(strings.TrimRight(string(l), "|"))
	if !validate {
		return stemsOf(toks), nil
	}
	if len(toks) == 0 || pre != "" {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedLRU, "%q", l))
	}

	stems := stemsOf(toks)
	if !validHeadRun(stems) {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedLRU, "%q", l))
	}
	return stems, nil
}

func stemsOf(toks []grammar.StemToken) []Stem {
	if len(toks) == 0 {
		return nil
	}
	stems := make([]Stem, len(toks))
	for i, t := range toks {
		stems[i] = Stem{Type: StemType(t.Type), Value: t.Value}
	}
	return stems
}

// validHeadRun checks the mandatory opening of a stem sequence: scheme, port,
// host — or scheme followed by a single special-host stem.
func validHeadRun(stems []Stem) bool {
	if len(stems) >= 3 && stems[0].Type == StemScheme && stems[2].Type == StemHost {
		return true
	}
	return len(stems) >= 2 && grammar.IsSpecialHost(stems[1].Value)
}

// ParentPrefixes returns all strict prefixes of l's stem sequence, longest
// first, each rendered with a trailing pipe. The full LRU itself is excluded
// and so is the single-stem prefix: walking stops when one stem remains.
func ParentPrefixes(l LRU) ([]LRU, error) {
	stems, err := SplitStems(l, true)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	var res []LRU
	for n := len(stems) - 1; n >= 2; n-- {
		res = append(res, joinStems(stems[:n]))
	}
	return res, nil
}

// joinStems renders stems joined with pipes, trailing pipe included.
func joinStems(stems []Stem) LRU {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for _, st := range stems {
		sb.WriteString(st.String())
		sb.WriteByte('|')
	}
	return LRU(sb.String())
}

// withTrailingPipe appends the trailing pipe every canonical LRU carries.
func withTrailingPipe(l LRU) LRU {
	if !strings.HasSuffix(string(l), "|") {
		return l + "|"
	}
	return l
}
