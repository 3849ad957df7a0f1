// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// lineBreak separates consecutive lines of one paragraph.
const lineBreak = "<br/>"

// startParagraph is a [starter] for a paragraph line:
// any non-blank line that no other starter took.
// Consecutive paragraph lines share one <p> element,
// separated by <br/>.
// The line is emitted as is, including any leading white space.
func startParagraph(p *parser, s string) bool {
	if isBlank(s) {
		return false
	}
	if p.state == blockParagraph {
		p.emit(lineBreak, s)
		return true
	}
	p.openBlock(blockParagraph)
	p.emit(s)
	return true
}

// endParagraph is a [starter] for a blank line,
// which closes an open paragraph.
// An open list stays open across blank lines.
func endParagraph(p *parser, s string) bool {
	if !isBlank(s) {
		return false
	}
	if p.state == blockParagraph {
		p.closeBlock()
	}
	return true
}
