package lru_test

import (
	"testing"

	"github.com/ghettovoice/lru"
)

func TestHead(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		input      lru.LRU
		exceptions []lru.LRU
		want       lru.LRU
	}{
		{
			"default host run",
			"s:http|t:80|h:com|h:example|p:a|",
			nil,
			"s:http|t:80|h:com|h:example|",
		},
		{
			"exception wins over default",
			"s:http|t:80|h:com|h:example|p:a|",
			[]lru.LRU{"s:http|t:80|h:com|h:example|"},
			"s:http|t:80|h:com|h:example|",
		},
		{
			"longest exception wins",
			"s:http|t:80|h:com|h:example|p:blog|p:post|",
			[]lru.LRU{
				"s:http|t:80|h:com|h:example|",
				"s:http|t:80|h:com|h:example|p:blog|",
			},
			"s:http|t:80|h:com|h:example|p:blog|",
		},
		{
			"non matching exception ignored",
			"s:http|t:80|h:com|h:example|p:a|",
			[]lru.LRU{"s:http|t:80|h:org|h:other|"},
			"s:http|t:80|h:com|h:example|",
		},
		{"malformed input yields empty head", "nonsense", nil, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := lru.Head(c.input, c.exceptions); got != c.want {
				t.Errorf("lru.Head(%q, %v) = %q, want %q", c.input, c.exceptions, got, c.want)
			}
		})
	}
}

func TestIsNode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		input      lru.LRU
		limit      int
		exceptions []lru.LRU
		want       bool
	}{
		{"domain itself", "s:http|t:80|h:com|h:example|", 1, nil, true},
		{"one stem past head", "s:http|t:80|h:com|h:example|p:a|", 1, nil, true},
		{"two stems past head", "s:http|t:80|h:com|h:example|p:a|p:b|", 1, nil, false},
		{"wider limit", "s:http|t:80|h:com|h:example|p:a|p:b|", 2, nil, true},
		{
			"exception moves the boundary",
			"s:http|t:80|h:com|h:example|p:blog|p:post|",
			1,
			[]lru.LRU{"s:http|t:80|h:com|h:example|p:blog|"},
			true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := lru.IsNode(c.input, c.limit, c.exceptions); got != c.want {
				t.Errorf("lru.IsNode(%q, %d, %v) = %v, want %v", c.input, c.limit, c.exceptions, got, c.want)
			}
		})
	}
}

func TestNode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		input      lru.LRU
		limit      int
		exceptions []lru.LRU
		want       lru.LRU
	}{
		{
			"leaf collapses to boundary",
			"s:http|t:80|h:com|h:example|p:a|p:b|",
			1,
			nil,
			"s:http|t:80|h:com|h:example|p:a|",
		},
		{
			"node maps to itself",
			"s:http|t:80|h:com|h:example|p:a|",
			1,
			nil,
			"s:http|t:80|h:com|h:example|p:a|",
		},
		{
			"domain maps to itself",
			"s:http|t:80|h:com|h:example|",
			1,
			nil,
			"s:http|t:80|h:com|h:example|",
		},
		{
			"exception boundary",
			"s:http|t:80|h:com|h:example|p:blog|p:post|p:1|",
			1,
			[]lru.LRU{"s:http|t:80|h:com|h:example|p:blog|"},
			"s:http|t:80|h:com|h:example|p:blog|p:post|",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := lru.Node(c.input, c.limit, c.exceptions); got != c.want {
				t.Errorf("lru.Node(%q, %d, %v) = %q, want %q", c.input, c.limit, c.exceptions, got, c.want)
			}
		})
	}
}

func TestIsFullPrecision(t *testing.T) {
	t.Parallel()

	exceptions := []lru.LRU{"s:http|t:80|h:com|h:example|p:blog|"}
	if !lru.IsFullPrecision("s:http|t:80|h:com|h:example|p:blog|", exceptions) {
		t.Error("lru.IsFullPrecision = false for a registered exception")
	}
	if lru.IsFullPrecision("s:http|t:80|h:com|h:example|", exceptions) {
		t.Error("lru.IsFullPrecision = true for an unregistered lru")
	}
}

func TestHasPrefix(t *testing.T) {
	t.Parallel()

	prefixes := []lru.LRU{"s:http|t:80|h:com|h:example|"}
	if !lru.HasPrefix("s:http|t:80|h:com|h:example|p:a|", prefixes) {
		t.Error("lru.HasPrefix = false, want true")
	}
	if lru.HasPrefix("s:http|t:80|h:org|h:other|", prefixes) {
		t.Error("lru.HasPrefix = true, want false")
	}
	if lru.HasPrefix("s:http|t:80|h:com|h:example|p:a|", nil) {
		t.Error("lru.HasPrefix with no prefixes = true, want false")
	}
}

func TestHostAndPathURL(t *testing.T) {
	t.Parallel()

	const l = lru.LRU("s:http|t:80|h:com|h:google|h:www|p:search|q:q=text&p=2|")

	host, err := lru.HostURL(l)
	if err != nil {
		t.Fatalf("lru.HostURL(%q) error = %v", l, err)
	}
	if want := "http://www.google.com"; host != want {
		t.Errorf("lru.HostURL(%q) = %q, want %q", l, host, want)
	}

	path, err := lru.PathURL(l)
	if err != nil {
		t.Fatalf("lru.PathURL(%q) error = %v", l, err)
	}
	if want := "http://www.google.com/search"; path != want {
		t.Errorf("lru.PathURL(%q) = %q, want %q", l, path, want)
	}

	if _, err := lru.HostURL("nonsense"); err == nil {
		t.Error("lru.HostURL of malformed input error = nil, want error")
	}
}
