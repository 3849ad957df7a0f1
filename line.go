// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// splitLines splits text into lines, dropping the terminators.
func splitLines(text string) []string {
	var lines []string
	for text != "" {
		i := strings.IndexAny(text, "\r\n")
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i])
		if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
			i++
		}
		text = text[i+1:]
	}
	return lines
}

// trimRightSpace returns s without trailing white space.
func trimRightSpace(s string) string {
	return strings.TrimRightFunc(s, isSpace)
}

// trimSpace returns s without leading or trailing white space.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// isBlank reports whether the (already right-trimmed) line s is blank.
func isBlank(s string) bool {
	return s == ""
}
