package lru

import (
	"regexp"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/lru/internal/errorutil"
	"github.com/ghettovoice/lru/internal/grammar"
	"github.com/ghettovoice/lru/internal/util"
)

// CleanURL normalizes a raw URL before conversion: a missing scheme is filled
// in with http and the host is lowercased, since some servers answer badly to
// uppercase hosts. Blank or whitespace-only input yields the empty string.
func CleanURL(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}
	if !strings.HasPrefix(url, "http") {
		url = "http://" + strings.TrimLeft(url, "/")
	}
	u, err := grammar.ParseURL(url)
	if err != nil || !u.HasAuthority {
		return url
	}
	return strings.Replace(url, "://"+u.Authority, "://"+util.LCase(u.Authority), 1)
}

// ConvertURL cleans a raw URL and converts it to its canonical LRU, returning
// both forms.
func ConvertURL(url string) (string, LRU, error) {
	cleaned := CleanURL(url)
	if cleaned == "" {
		return "", "", errtrace.Wrap(errorutil.NewWrapperError(ErrNotAURL, "%q", url))
	}
	l, err := CanonicalFromURL(cleaned)
	if err != nil {
		return "", "", errtrace.Wrap(err)
	}
	return cleaned, l, nil
}

var titlizeRx = regexp.MustCompile(`(?i)(https?://|[./#])`)

// ShortenURL turns a URL into a short title-cased label: percent escapes are
// decoded and scheme/separator characters become word breaks.
func ShortenURL(url string) string {
	return util.Title(strings.TrimSpace(titlizeRx.ReplaceAllString(grammar.Unescape(url), " ")))
}

// NameURL builds a human display name for a URL from its canonical LRU:
// non-www host labels in original order, the last path segment (abbreviated
// when deeper than one level), then query and fragment markers.
func NameURL(url string) (string, error) {
	l, err := CanonicalFromURL(url)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	stems, err := SplitStems(l, true)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	var (
		host       []string
		path, name string
		lasthost   string
		pathdone   bool
	)
	for _, st := range stems {
		switch {
		case st.Type == StemHost && st.Value != "www":
			lasthost = util.Title(st.Value)
			// Keep a short leading label (ccTLDs and the like) only when it
			// would otherwise be the whole name.
			if len(host) > 0 || len(lasthost) > 3 {
				host = append([]string{lasthost}, host...)
			}
		case st.Type == StemPath && st.Value != "":
			if pathdone {
				path = " /.../" + st.Value
			} else {
				path = " /" + st.Value
			}
			pathdone = true
		case st.Type == StemQuery && st.Value != "":
			name += " ?" + st.Value
		case st.Type == StemFragment && st.Value != "":
			name += " #" + st.Value
		}
	}
	if len(host) == 0 && lasthost != "" {
		host = []string{lasthost}
	}
	return strings.Join(host, ".") + path + name, nil
}
