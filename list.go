// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// startUnorderedItem is a [starter] for an item of an unordered list,
// a line beginning with "-".
func startUnorderedItem(p *parser, s string) bool {
	return startListItem(p, s, '-', blockUnorderedList)
}

// startOrderedItem is a [starter] for an item of an ordered list,
// a line beginning with "*".
//
// Note that "*" means ordered and "-" means unordered,
// unlike CommonMark, where both are bullets.
func startOrderedItem(p *parser, s string) bool {
	return startListItem(p, s, '*', blockOrderedList)
}

// startListItem handles s as an item of the list kind if s begins with bullet.
// The item continues the list if one of that kind is open;
// otherwise any open block is closed and a new list is opened.
func startListItem(p *parser, s string, bullet byte, kind blockState) bool {
	if s == "" || s[0] != bullet {
		return false
	}
	p.openBlock(kind)
	p.emit("<li>" + trimSpace(s[1:]) + "</li>")
	return true
}
