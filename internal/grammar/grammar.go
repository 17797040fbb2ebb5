// Package grammar implements the textual grammars of URLs and LRUs.
package grammar

import (
	"regexp"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

var (
	// lruRx matches the canonical LRU surface: one scheme stem, an optional
	// port stem, then at least one host stem.
	lruRx = regexp.MustCompile(`^s:[^|]+(\|t:[^|]+)?(\|h:[^|]+)+`)
	// urlRx captures scheme, authority, path, query and fragment of a full URL.
	urlRx = regexp.MustCompile(`^([^:/?#]+):(?://([^/?#]*))?([^?#]*)(?:\?([^#]*))?(?:#(.*))?$`)
	// authorityRx captures userinfo, host and port of a URL authority.
	authorityRx = regexp.MustCompile(`(?i)^(?:([^:]+)(?::([^@]+))?@)?(\[[\da-f]*:[\da-f:]*\]|[^\s:]+)(?::(\d+))?$`)
	// schemeRx admits the only schemes the LRU notation covers.
	schemeRx = regexp.MustCompile(`^https?$`)
	// stemRx locates typed stem markers inside an LRU.
	stemRx = regexp.MustCompile(`(^|\|)([shtpqf]):`)
	// queryPairRx tolerates values containing no further '='/'&'.
	queryPairRx = regexp.MustCompile(`(^|&)([^=]+)=([^&]+)`)
	// specialHostRx matches hosts kept as a single unreversed stem.
	specialHostRx = regexp.MustCompile(`(?i)^(?:localhost|(?:\d{1,3}\.){3}\d{1,3}|\[[\da-f]*:[\da-f:]*\])$`)
	// hostRunRx and pathRunRx match the leading domain-level and path-level stem runs.
	hostRunRx = regexp.MustCompile(`^([sth]:[^|]*(\||$))+`)
	pathRunRx = regexp.MustCompile(`^([sthp]:[^|]*(\||$))+`)
)

// IsLRU reports whether s matches the canonical LRU surface pattern.
func IsLRU(s string) bool { return lruRx.MatchString(s) }

// IsHTTPScheme reports whether s is one of the schemes convertible to LRU form.
func IsHTTPScheme(s string) bool { return schemeRx.MatchString(s) }

// IsSpecialHost reports whether s is a host form kept as a single literal stem:
// localhost, an IPv4 dotted quad or a bracketed IPv6 literal.
func IsSpecialHost(s string) bool { return specialHostRx.MatchString(s) }

// HostRun returns the leading run of scheme, port and host stems of lru,
// or the empty string when lru does not start with such a run.
func HostRun(lru string) string { return hostRunRx.FindString(lru) }

// PathRun returns the leading run of scheme, port, host and path stems of lru,
// or the empty string when lru does not start with such a run.
func PathRun(lru string) string { return pathRunRx.FindString(lru) }
