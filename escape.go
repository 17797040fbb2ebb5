package lru

import (
	"github.com/ghettovoice/lru/internal/constraints"
	"github.com/ghettovoice/lru/internal/grammar"
)

// Unescape percent-decodes src. Malformed escape sequences are passed through
// untouched rather than rejected.
func Unescape[T constraints.Byteseq](src T) T {
	return grammar.Unescape(src)
}

// Escape percent-encodes every byte of src outside the always-safe set
// (alphanumerics and "_.-") and the given safe set. A literal '%' is always
// re-encoded.
func Escape[T constraints.Byteseq](src T, safe string) T {
	return grammar.Escape(src, safe)
}

// Recode normalizes the percent-encoding of src by decoding then re-encoding,
// collapsing encoding variants of the same text into one spelling.
func Recode[T constraints.Byteseq](src T, safe string) T {
	return grammar.Recode(src, safe)
}

// RecodeQuery recodes an ampersand-joined query string pair-wise, falling back
// to whole-string recoding when no key=value pair is found.
func RecodeQuery[T constraints.Byteseq](src T) T {
	return grammar.RecodeQuery(src)
}
