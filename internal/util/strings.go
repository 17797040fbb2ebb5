package util

import (
	"strings"
	"sync"
	"unicode"
)

func LCase[T ~string](s T) T { return T(strings.ToLower(string(s))) }

func EqFold[T1, T2 ~string](s1 T1, s2 T2) bool {
	return strings.EqualFold(string(s1), string(s2))
}

// Title capitalizes the first letter of every word of s and lowercases the
// rest, where a word is a maximal run of letters.
func Title[T ~string](s T) T {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range string(s) {
		switch {
		case !unicode.IsLetter(r):
			prevLetter = false
			b.WriteRune(r)
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			prevLetter = true
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return T(b.String())
}

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(1024)
		return sb
	},
}

func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}
