// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markdown converts a small Markdown dialect to HTML, one line at a time.
//
// The dialect has four block forms, chosen by the first character of a line:
//
//	# Heading      <h1>Heading</h1> (## for <h2>, and so on)
//	- item         <ul><li>item</li>...</ul>
//	* item         <ol><li>item</li>...</ol>
//	text           <p>text<br/>more text</p>
//
// A blank line ends a paragraph but not a list.
// Within a line, the inline rules documented at [Inline] apply first.
//
// There is no nesting, no escaping of HTML special characters,
// and no links, images or code blocks.
package markdown

// A Document is the sequence of source lines being converted.
// The lines do not include line terminators.
type Document struct {
	Lines []string
}

// Parse splits text into a [Document].
// A line ends at "\n", "\r\n" or a lone "\r";
// a terminator at the very end of text does not start another line.
func Parse(text string) *Document {
	return &Document{Lines: splitLines(text)}
}

// Convert returns the HTML for the Markdown text.
// It is shorthand for ToHTML(Parse(text)).
func Convert(text string) string {
	return ToHTML(Parse(text))
}
