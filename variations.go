package lru

import (
	"strings"

	"braces.dev/errtrace"
)

// Variations returns the closed set of LRUs naming the same logical resource
// under scheme (http/https) and leading-www ambiguity. The input and its
// scheme-flipped counterpart are always included. When the host has exactly
// one label there is no www to add or remove and the set has size 2;
// otherwise the www variants are derived by a full URL round trip — textual
// insertion or removal of "www." after "//", then re-encoding through
// FromURL and the canonicalization pipeline — so each variation is a valid,
// freshly derived LRU rather than a patched string.
func Variations(l LRU) ([]LRU, error) {
	out := []LRU{l}

	u, err := ToURL(l, true)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	var (
		flipped LRU
		u2      string
	)
	switch {
	case strings.Contains(string(l), "s:http|"):
		flipped = LRU(strings.Replace(string(l), "s:http|", "s:https|", 1))
	case strings.Contains(string(l), "s:https|"):
		flipped = LRU(strings.Replace(string(l), "s:https|", "s:http|", 1))
	}
	if flipped != "" {
		out = append(out, flipped)
		if u2, err = ToURL(flipped, true); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}

	if hostStemCount(l) == 1 {
		return out, nil
	}

	v, err := toggleWWW(u)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	out = append(out, v)
	if u2 != "" {
		if v, err = toggleWWW(u2); err != nil {
			return nil, errtrace.Wrap(err)
		}
		out = append(out, v)
	}
	return out, nil
}

func toggleWWW(u string) (LRU, error) {
	if strings.Contains(u, "//www.") {
		u = strings.Replace(u, "//www.", "//", 1)
	} else {
		u = strings.Replace(u, "//", "//www.", 1)
	}
	return errtrace.Wrap2(CanonicalFromURL(u))
}

func hostStemCount(l LRU) int {
	stems, _ := SplitStems(l, false)
	var n int
	for _, st := range stems {
		if st.Type == StemHost {
			n++
		}
	}
	return n
}
