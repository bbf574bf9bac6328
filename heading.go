// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtree

import "strings"

// trimATX matches an ATX heading line.
// “An ATX heading consists of a string of characters, parsed as
// inline content, between an opening sequence of 1–6 unescaped #
// characters and an optional closing sequence of any number of
// unescaped # characters.” Seven or more # is not a heading.
//
// [ATX headings]: https://spec.commonmark.org/0.31.2/#atx-headings
func trimATX(s string) (level int, text string, ok bool) {
	s = trimIndent(s)
	n := 0
	for n < len(s) && s[n] == '#' {
		n++
	}
	if n < 1 || n > 6 {
		return 0, "", false
	}
	s = s[n:]
	if s != "" && s[0] != ' ' && s[0] != '\t' {
		return 0, "", false
	}
	s = trimSpaceTab(s)
	// “The optional closing sequence of #s must be preceded by
	// spaces or tabs and may be followed by spaces or tabs only.”
	if t := strings.TrimRight(s, "#"); t != s {
		if t == "" {
			s = ""
		} else if c := t[len(t)-1]; c == ' ' || c == '\t' {
			s = strings.TrimRight(t, " \t")
		}
	}
	return n, s, true
}

// trimSetext matches a setext heading underline: a run of = for
// level 1 or - for level 2, with nothing else on the line.
//
// [setext headings]: https://spec.commonmark.org/0.31.2/#setext-headings
func trimSetext(s string) (level int, ok bool) {
	s = trimIndent(s)
	c := byte(0)
	if s != "" && (s[0] == '=' || s[0] == '-') {
		c = s[0]
	} else {
		return 0, false
	}
	rest := strings.TrimLeft(s, string(c))
	if trimSpaceTab(rest) != "" {
		return 0, false
	}
	if c == '=' {
		return 1, true
	}
	return 2, true
}

// trimIndent removes up to three leading spaces.
func trimIndent(s string) string {
	for i := 0; i < 3 && s != "" && s[0] == ' '; i++ {
		s = s[1:]
	}
	return s
}
