package util_test

import (
	"testing"

	"github.com/ghettovoice/lru/internal/util"
)

func TestTitle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"hello world", "Hello World"},
		{"HELLO WORLD", "Hello World"},
		{"my page.html", "My Page.Html"},
		{"a1b c", "A1B C"},
		{"3rd party", "3Rd Party"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			if got := util.Title(c.in); got != c.want {
				t.Errorf("util.Title(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestLCase(t *testing.T) {
	t.Parallel()

	if got := util.LCase("Example.COM"); got != "example.com" {
		t.Errorf("util.LCase = %q, want %q", got, "example.com")
	}
}

func TestEqFold(t *testing.T) {
	t.Parallel()

	if !util.EqFold("HTTP", "http") {
		t.Error("util.EqFold(HTTP, http) = false, want true")
	}
	if util.EqFold("http", "https") {
		t.Error("util.EqFold(http, https) = true, want false")
	}
}
