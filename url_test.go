package lru_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/lru"
)

func TestCleanURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"blank", "", ""},
		{"whitespace only", "   ", ""},
		{"bare host", "EXAMPLE.com", "http://example.com"},
		{"protocol relative", "//example.com", "http://example.com"},
		{"uppercase host lowered", "http://Example.COM/Path", "http://example.com/Path"},
		{"already clean", "https://example.com/a", "https://example.com/a"},
		{"surrounding whitespace", "  http://example.com  ", "http://example.com"},
		{"unparseable passthrough", "no url here", "http://no url here"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := lru.CleanURL(c.input); got != c.want {
				t.Errorf("lru.CleanURL(%q) = %q, want %q", c.input, got, c.want)
			}
		})
	}
}

func TestConvertURL(t *testing.T) {
	t.Parallel()

	url, l, err := lru.ConvertURL("Example.com/a")
	if err != nil {
		t.Fatalf("lru.ConvertURL error = %v", err)
	}
	if want := "http://example.com/a"; url != want {
		t.Errorf("lru.ConvertURL url = %q, want %q", url, want)
	}
	if want := lru.LRU("s:http|h:com|h:example|p:a|"); l != want {
		t.Errorf("lru.ConvertURL lru = %q, want %q", l, want)
	}

	if _, _, err := lru.ConvertURL("   "); !errors.Is(err, lru.ErrNotAURL) {
		t.Errorf("lru.ConvertURL of blank input error = %v, want %v", err, lru.ErrNotAURL)
	}
}

func TestShortenURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"escaped path", "http://www.example.com/my%20page.html", "Www Example Com My Page Html"},
		{"bare host", "https://example.com", "Example Com"},
		{"fragment", "http://example.com/a#top", "Example Com A Top"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := lru.ShortenURL(c.input); got != c.want {
				t.Errorf("lru.ShortenURL(%q) = %q, want %q", c.input, got, c.want)
			}
		})
	}
}

func TestNameURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"deep page", "http://www.example.com/a/b?q=1#top", "Example /.../b ?q=1 #top"},
		{"single path level", "http://www.example.com/about", "Example /about"},
		{"bare host", "http://www.example.com", "Example"},
		{"short host", "http://bit.ly", "Bit"},
		{"subdomain", "http://blog.example.com/post", "Blog.Example /post"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := lru.NameURL(c.input)
			if err != nil {
				t.Fatalf("lru.NameURL(%q) error = %v", c.input, err)
			}
			if got != c.want {
				t.Errorf("lru.NameURL(%q) = %q, want %q", c.input, got, c.want)
			}
		})
	}

	if _, err := lru.NameURL("not a url"); err == nil {
		t.Error("lru.NameURL of malformed input error = nil, want error")
	}
}
