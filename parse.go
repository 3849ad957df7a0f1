// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// A blockState records which HTML container, if any, is open.
// At most one container is open at a time.
type blockState int

const (
	blockNone blockState = iota
	blockUnorderedList
	blockOrderedList
	blockParagraph
)

var openTag = [...]string{
	blockUnorderedList: "<ul>",
	blockOrderedList:   "<ol>",
	blockParagraph:     "<p>",
}

var closeTag = [...]string{
	blockUnorderedList: "</ul>",
	blockOrderedList:   "</ol>",
	blockParagraph:     "</p>",
}

func (b blockState) String() string {
	switch b {
	case blockNone:
		return "none"
	case blockUnorderedList:
		return "ul"
	case blockOrderedList:
		return "ol"
	case blockParagraph:
		return "p"
	}
	return "???"
}

// A parser turns inline-resolved lines into HTML fragments.
type parser struct {
	state blockState
	out   []string // fragments emitted so far
}

// A starter handles the line s if it is the kind of block the starter knows,
// reporting whether it did.
// The line has trailing white space removed and inline markup resolved.
type starter func(p *parser, s string) bool

// starters are tried in order; the first to accept a line handles it.
// startParagraph accepts any non-blank line and endParagraph any blank one,
// so every line is handled.
var starters = []starter{
	startHeading,
	startUnorderedItem,
	startOrderedItem,
	startParagraph,
	endParagraph,
}

// Fragments returns the HTML fragments for d, in order:
// opening tags, content and closing tags.
// Every opening tag in the result is matched by a closing tag.
func (d *Document) Fragments() []string {
	var p parser
	for _, s := range d.Lines {
		p.addLine(s)
	}
	p.closeBlock()
	return p.out
}

func (p *parser) addLine(s string) {
	s = Inline(trimRightSpace(s))
	for _, start := range starters {
		if start(p, s) {
			return
		}
	}
	panic("markdown: line not handled")
}

// emit appends fragments to the output.
func (p *parser) emit(list ...string) {
	p.out = append(p.out, list...)
}

// openBlock makes b the open container,
// closing any other container first.
// If b is already open, openBlock does nothing.
func (p *parser) openBlock(b blockState) {
	if p.state == b {
		return
	}
	p.closeBlock()
	p.emit(openTag[b])
	p.state = b
}

// closeBlock closes the open container, if any.
func (p *parser) closeBlock() {
	if p.state == blockNone {
		return
	}
	p.emit(closeTag[p.state])
	p.state = blockNone
}
