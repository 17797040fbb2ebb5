package lru

import (
	"slices"
	"strings"

	"github.com/ghettovoice/lru/internal/grammar"
	"github.com/ghettovoice/lru/internal/util"
)

// DefaultPrecisionLimit is the number of stems beyond its head an LRU may
// carry and still count as a node.
const DefaultPrecisionLimit = 1

// Head returns the prefix of l denoting its aggregation root: the longest
// precision exception that is a literal prefix of l, or the run of scheme,
// port and host stems when no exception matches. More specific configured
// boundaries always win over the domain default. Malformed input yields
// whatever prefix is present, possibly empty; Head never fails.
func Head(l LRU, exceptions []LRU) LRU {
	var best LRU
	for _, e := range exceptions {
		if strings.HasPrefix(string(l), string(e)) && len(e) > len(best) {
			best = e
		}
	}
	if best != "" {
		return best
	}
	if run := grammar.HostRun(string(l)); run != "" {
		return withTrailingPipe(LRU(run))
	}
	return ""
}

// IsNode reports whether l is within limit stems of its head, i.e. whether it
// should be treated as an aggregation point rather than a leaf page.
func IsNode(l LRU, limit int, exceptions []LRU) bool {
	return IsNodeWithHead(l, Head(l, exceptions), limit)
}

// IsNodeWithHead is IsNode with a pre-resolved head.
func IsNodeWithHead(l LRU, head LRU, limit int) bool {
	return len(stemsPastHead(l, head)) <= limit
}

// Node returns the canonical identifier of the aggregation boundary
// containing l: its head plus up to limit further stems, trailing-piped.
func Node(l LRU, limit int, exceptions []LRU) LRU {
	return NodeWithHead(l, Head(l, exceptions), limit)
}

// NodeWithHead is Node with a pre-resolved head.
func NodeWithHead(l LRU, head LRU, limit int) LRU {
	rest := stemsPastHead(l, head)
	rest = rest[:min(limit, len(rest))]

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(strings.Trim(string(head), "|"))
	for _, st := range rest {
		sb.WriteByte('|')
		sb.WriteString(st.String())
	}
	return withTrailingPipe(LRU(sb.String()))
}

func stemsPastHead(l, head LRU) []Stem {
	rest := LRU(strings.TrimPrefix(string(l), string(head)))
	stems, _ := SplitStems(rest, false)
	return stems
}

// IsFullPrecision reports whether l itself is a registered precision exception.
func IsFullPrecision(l LRU, exceptions []LRU) bool {
	return slices.Contains(exceptions, l)
}

// HasPrefix reports whether any of the given prefixes is a literal prefix of l.
func HasPrefix(l LRU, prefixes []LRU) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(string(l), string(p)) {
			return true
		}
	}
	return false
}

// HostURL reassembles the URL of l's domain-level prefix.
func HostURL(l LRU) (string, error) {
	return toRunURL(grammar.HostRun(string(l)))
}

// PathURL reassembles the URL of l's path-level prefix.
func PathURL(l LRU) (string, error) {
	return toRunURL(grammar.PathRun(string(l)))
}

func toRunURL(run string) (string, error) {
	return ToURL(LRU(run), true) //errtrace:skip
}
