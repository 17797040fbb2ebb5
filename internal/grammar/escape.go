package grammar

import (
	"bytes"
	"strings"

	"github.com/ghettovoice/lru/internal/constraints"
)

// Unescape unescapes s by converting each 3-byte encoded substring of the form
// "% HEXDIG HEXDIG" into the hex-decoded byte. Malformed escapes are passed
// through untouched: crawled URLs are frequently non-conformant and best-effort
// normalization beats rejection at this layer.
func Unescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Escape escapes every byte of s outside the always-safe set (alphanumerics
// and "_.-") and the given safe set to the hex form "% HEXDIG HEXDIG".
// A literal '%' is always re-encoded, so escaping an already escaped string
// encodes the escapes themselves.
func Escape[T constraints.Byteseq](s T, safe string) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isSafeByte(s[i]) || strings.IndexByte(safe, s[i]) >= 0 {
			b.WriteByte(s[i])
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[s[i]>>4])
		b.WriteByte(upperhex[s[i]&15])
	}
	return T(b.Bytes())
}

// Recode normalizes the percent-encoding of s by decoding and re-encoding it,
// collapsing encoding variants of the same text into one spelling.
func Recode[T constraints.Byteseq](s T, safe string) T {
	return Escape(Unescape(s), safe)
}

// RecodeQuery recodes an ampersand-joined query string pair-wise: each key and
// value is recoded independently and the pairs are rejoined with '=' and '&'.
// When the pair pattern matches nothing the whole string is recoded as one token.
func RecodeQuery[T constraints.Byteseq](s T) T {
	ms := queryPairRx.FindAllStringSubmatch(string(s), -1)
	if len(ms) == 0 {
		return Recode(s, "")
	}

	var b strings.Builder
	b.Grow(len(s))
	for i, m := range ms {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(Recode(m[2], ""))
		b.WriteByte('=')
		b.WriteString(Recode(m[3], ""))
	}
	return T(b.String())
}

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

func isSafeByte(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
		c == '_' || c == '.' || c == '-'
}
