package lru

import "github.com/ghettovoice/lru/internal/errorutil"

const (
	// ErrNotAURL is returned when an input does not match the full-URL grammar,
	// carries a scheme other than http/https, or has an unparsable authority.
	ErrNotAURL errorutil.Error = "not a url"
	// ErrNotALRU is returned by strict decoding when an input does not match
	// the canonical LRU surface pattern.
	ErrNotALRU errorutil.Error = "not an lru"
	// ErrMalformedLRU is returned when an input fails the stem grammar under
	// strict validation.
	ErrMalformedLRU errorutil.Error = "malformed lru"
)
