package grammar

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/lru/internal/constraints"
)

// URL holds the components captured by the full-URL grammar.
// The Has* flags distinguish a component that is present but empty from one
// that is absent: "http://x?" carries an empty query, "http://x" carries none.
type URL struct {
	Scheme    string
	Authority string
	Path      string
	Query     string
	Fragment  string

	HasAuthority bool
	HasQuery     bool
	HasFragment  bool
}

// ParseURL matches src against the full-URL grammar and returns its components.
func ParseURL[T constraints.Byteseq](src T) (*URL, error) {
	if len(src) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	s := string(src)
	m := urlRx.FindStringSubmatchIndex(s)
	if m == nil {
		return nil, errtrace.Wrap(ErrMalformedInput)
	}

	u := &URL{Scheme: group(s, m, 1), Path: group(s, m, 3)}
	if m[2*2] >= 0 {
		u.Authority = group(s, m, 2)
		u.HasAuthority = true
	}
	if m[2*4] >= 0 {
		u.Query = group(s, m, 4)
		u.HasQuery = true
	}
	if m[2*5] >= 0 {
		u.Fragment = group(s, m, 5)
		u.HasFragment = true
	}
	return u, nil
}

// Authority holds the components captured by the authority sub-grammar.
type Authority struct {
	User   string
	Passwd string
	Host   string
	Port   string
}

// ParseAuthority matches src against the authority sub-grammar.
func ParseAuthority[T constraints.Byteseq](src T) (*Authority, error) {
	if len(src) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	s := string(src)
	m := authorityRx.FindStringSubmatchIndex(s)
	if m == nil {
		return nil, errtrace.Wrap(ErrMalformedInput)
	}
	return &Authority{
		User:   group(s, m, 1),
		Passwd: group(s, m, 2),
		Host:   group(s, m, 3),
		Port:   group(s, m, 4),
	}, nil
}

func group(s string, m []int, i int) string {
	if m[2*i] < 0 {
		return ""
	}
	return s[m[2*i]:m[2*i+1]]
}

// StemToken is one raw type:value token produced by SplitStems.
type StemToken struct {
	Type  string
	Value string
}

// SplitStems tokenizes lru on the pipe-delimited typed-stem markers.
// It returns the text preceding the first marker (empty for a well-formed LRU)
// and the tokens in order. Validity of the token sequence is the caller's concern.
func SplitStems(lru string) (pre string, toks []StemToken) {
	ms := stemRx.FindAllStringSubmatchIndex(lru, -1)
	if len(ms) == 0 {
		return lru, nil
	}

	pre = lru[:ms[0][0]]
	toks = make([]StemToken, len(ms))
	for i, m := range ms {
		end := len(lru)
		if i+1 < len(ms) {
			end = ms[i+1][0]
		}
		toks[i] = StemToken{Type: lru[m[4]:m[5]], Value: lru[m[1]:end]}
	}
	return pre, toks
}
