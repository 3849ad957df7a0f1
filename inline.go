// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// A span is an inline substitution rule: every non-greedy run of text
// between open and close is replaced by repl applied to the text between.
type span struct {
	open  string
	close string
	repl  func(inner string) string
}

// Parsing Inlines
//
// Each rule is a separate pass over the line, applied in order,
// so a later rule sees (and may match) the output of an earlier one.
// A pass walks left to right looking for the opening delimiter.
// Once found, the nearest closing delimiter after it ends the span:
// "**a** **b**" is two spans, not one span "a** **b".
// The replacement is copied to the output and the scan resumes after
// the closing delimiter, so a replacement is never rescanned by its own rule.
// An opening delimiter without a closing one ends the pass;
// no later opener could be closed either.

var spans = []span{
	{"**", "**", tag("b")},
	{"__", "__", tag("em")},
	{"[[", "]]", digest},
	{"((", "))", stripC},
}

// Inline returns line with all inline markup resolved:
//
//	**text**  <b>text</b>
//	__text__  <em>text</em>
//	[[text]]  the lowercase hex MD5 digest of text
//	((text))  text with every c and C removed
//
// Unmatched delimiters are left as they are.
// Inline does not escape HTML special characters.
func Inline(line string) string {
	for _, sp := range spans {
		line = sp.apply(line)
	}
	return line
}

// apply returns s with every span matching sp replaced.
func (sp *span) apply(s string) string {
	i := strings.Index(s, sp.open)
	if i < 0 {
		return s
	}
	var b strings.Builder
	for i >= 0 {
		start := i + len(sp.open)
		j := strings.Index(s[start:], sp.close)
		if j < 0 {
			break
		}
		b.WriteString(s[:i])
		b.WriteString(sp.repl(s[start : start+j]))
		s = s[start+j+len(sp.close):]
		i = strings.Index(s, sp.open)
	}
	b.WriteString(s)
	return b.String()
}

// tag returns a replacement func wrapping its text in <name>...</name>.
func tag(name string) func(string) string {
	return func(s string) string {
		return "<" + name + ">" + s + "</" + name + ">"
	}
}

// digest returns the lowercase hex MD5 of the bytes of s.
func digest(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// removeC removes every c and C. It is stateless and safe for concurrent use.
var removeC = runes.Remove(runes.Predicate(func(r rune) bool { return r == 'c' || r == 'C' }))

// stripC returns s with every c and C removed.
// Invalid UTF-8 in s comes back as U+FFFD.
func stripC(s string) string {
	t, _, _ := transform.String(removeC, s)
	return t
}
