// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"crypto/md5"
	"fmt"
	"strings"
	"testing"
)

var inlineTests = []struct {
	in  string
	out string
}{
	{"**x**", "<b>x</b>"},
	{"a **b** c **d**", "a <b>b</b> c <b>d</b>"},
	{"**a** **b**", "<b>a</b> <b>b</b>"},
	{"** a", "** a"},
	{"****", "<b></b>"},
	{"***a**", "<b>*a</b>"},
	{"__x__", "<em>x</em>"},
	{"**__x__**", "<b><em>x</em></b>"},
	{"__**__**", "<em><b></em></b>"},
	{"[[hello]]", "5d41402abc4b2a76b9719d911017c592"},
	{"[[]]", "d41d8cd98f00b204e9800998ecf8427e"},
	{"[[Hello World]]", "b10a8db164e0754105b7a99be72e3fe5"},
	{"[[é]]", "66ddcd97cfdeabb2f6fb8a999b4bc76f"},
	{"[[a]] [[b]]", "0cc175b9c0f1b6a831c399e269772661 92eb5ffee6ae2fec3ad71c777531578f"},
	{"[[x]]]]", "9dd4e461268c8034f5c8564e155c67a6]]"},
	{"((Cocoa))", "ooa"},
	{"((abc)) ((CCC))", "ab "},
	{"((ÇcédillaC))", "Çédilla"},
	{"(( c ))", "  "},
	{"((a)b))", "a)b"},
	{"((**c**))", "<b></b>"},
	{"x ** y __ z [[ ((", "x ** y __ z [[ (("},
	{"plain text, nothing here", "plain text, nothing here"},
	{"", ""},
}

func TestInline(t *testing.T) {
	for _, tt := range inlineTests {
		if out := Inline(tt.in); out != tt.out {
			t.Errorf("Inline(%q) = %q, want %q", tt.in, out, tt.out)
		}
	}
}

var spanContents = []string{
	"",
	"x",
	"hello",
	"two words",
	" padded ",
	"*",
	"_",
	"[",
	")",
	"<i>html</i>",
	"naïve café",
	"日本語",
}

func TestInlineBold(t *testing.T) {
	for _, x := range spanContents {
		if strings.Contains(x, "*") {
			continue
		}
		in := "before **" + x + "** after"
		want := "before <b>" + x + "</b> after"
		if out := Inline(in); out != want {
			t.Errorf("Inline(%q) = %q, want %q", in, out, want)
		}
	}
}

func TestInlineDigest(t *testing.T) {
	for _, x := range spanContents {
		if strings.Contains(x, "]") {
			continue
		}
		in := "[[" + x + "]]"
		want := fmt.Sprintf("%x", md5.Sum([]byte(x)))
		if out := Inline(in); out != want {
			t.Errorf("Inline(%q) = %q, want %q", in, out, want)
		}
		if strings.Contains(Inline(in), x) && x != "" {
			t.Errorf("Inline(%q) leaks the enclosed text", in)
		}
	}
}

func TestInlineStrip(t *testing.T) {
	for _, x := range []string{"", "c", "C", "cCcC", "Cocoa", "abc", "ccc ddd CCC", "Çà"} {
		in := "((" + x + "))"
		want := strings.NewReplacer("c", "", "C", "").Replace(x)
		if out := Inline(in); out != want {
			t.Errorf("Inline(%q) = %q, want %q", in, out, want)
		}
	}
}

func TestInlineUnchanged(t *testing.T) {
	for _, s := range []string{
		"nothing to see",
		"single * star and _ underscore",
		"[one bracket] (one paren)",
		"a *b* c _d_",
		"# heading marker",
		"- list marker",
		"<p>raw &amp; html</p>",
	} {
		if out := Inline(s); out != s {
			t.Errorf("Inline(%q) = %q, want unchanged", s, out)
		}
	}
}
