// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

func FuzzConvert(f *testing.F) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		f.Fatal(err)
	}
	for _, file := range files {
		a, err := txtar.ParseFile(file)
		if err != nil {
			f.Fatal(err)
		}
		for i := 0; i+2 <= len(a.Files); i += 2 {
			f.Add(decode(string(a.Files[i].Data)))
		}
	}
	f.Fuzz(func(t *testing.T, s string) {
		// Raw HTML in the input passes through and could look like our own tags.
		if !strings.Contains(s, "<") {
			checkBalanced(t, s)
		}

		out := Convert(s)
		if strings.HasSuffix(out, "\n") {
			t.Fatalf("Convert(%q) = %q, ends in newline", s, out)
		}
		if out != strings.Join(Parse(s).Fragments(), "\n") {
			t.Fatalf("Convert(%q) differs from joined fragments", s)
		}
	})
}

func FuzzInline(f *testing.F) {
	for _, tt := range inlineTests {
		f.Add(tt.in)
	}
	f.Fuzz(func(t *testing.T, s string) {
		out := Inline(s)
		if !strings.ContainsAny(s, "*_[(") && out != s {
			t.Fatalf("Inline(%q) = %q, want unchanged", s, out)
		}
	})
}
