// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"bufio"
	"io"
	"strings"
)

// ToHTML returns the HTML for doc: its [Document.Fragments]
// joined by newlines, with no final newline.
func ToHTML(doc *Document) string {
	var b strings.Builder
	p := printer{w: &b}
	p.html(doc.Fragments()...)
	return b.String()
}

// WriteHTML writes the HTML for doc to w.
// The output is the same as [ToHTML].
func WriteHTML(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	p := printer{w: bw}
	p.html(doc.Fragments()...)
	if p.err != nil {
		return p.err
	}
	return bw.Flush()
}

// A printer writes fragments to w, separated by newlines.
// The first write error is kept in err and stops further writes.
type printer struct {
	w   io.Writer
	n   int // fragments written
	err error
}

func (p *printer) html(list ...string) {
	for _, s := range list {
		if p.err != nil {
			return
		}
		if p.n > 0 {
			_, p.err = io.WriteString(p.w, "\n")
		}
		if p.err == nil {
			_, p.err = io.WriteString(p.w, s)
		}
		p.n++
	}
}
