// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtree

// trimQuote matches a blockquote line and returns it with the
// marker stripped. “A block quote marker consists of 0-3 spaces of
// initial indent, plus (a) the character > together with a
// following space, or (b) a single character > not followed by a
// space.”
//
// [block quotes]: https://spec.commonmark.org/0.31.2/#block-quotes
func trimQuote(s string) (text string, ok bool) {
	t := trimIndent(s)
	if t == "" || t[0] != '>' {
		return "", false
	}
	t = t[1:]
	if t != "" && (t[0] == ' ' || t[0] == '\t') {
		t = t[1:]
	}
	return t, true
}
