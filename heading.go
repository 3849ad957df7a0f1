// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strconv"

// startHeading is a [starter] for a heading, like "## Heading".
// The level is the number of leading #s, with no upper bound:
// "####### x" is <h7>x</h7>.
// A heading closes any open list or paragraph
// and does not itself stay open.
func startHeading(p *parser, s string) bool {
	level := trimHeading(&s)
	if level == 0 {
		return false
	}
	p.closeBlock()
	n := strconv.Itoa(level)
	p.emit("<h" + n + ">" + trimSpace(s) + "</h" + n + ">")
	return true
}

// trimHeading trims the leading #s from s, returning how many there were.
// If s does not start with #, trimHeading returns 0 and leaves s unmodified.
func trimHeading(s *string) int {
	t := *s
	n := 0
	for n < len(t) && t[n] == '#' {
		n++
	}
	*s = t[n:]
	return n
}
