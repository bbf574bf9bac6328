// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtree

import "strings"

// trimFence matches an opening code fence: at most three spaces of
// indentation, three or more backticks, and an optional info
// string. “The info string may not contain any backtick
// characters.”
//
// [info string]: https://spec.commonmark.org/0.31.2/#info-string
func trimFence(s string) (ticks int, info string, ok bool) {
	if indentWidth(s) > 3 {
		return 0, "", false
	}
	t := trimIndent(s)
	n := 0
	for n < len(t) && t[n] == '`' {
		n++
	}
	if n < 3 {
		return 0, "", false
	}
	info = trimSpaceTab(t[n:])
	if strings.Contains(info, "`") {
		return 0, "", false
	}
	return n, info, true
}

// closesFence reports whether the line closes a fence opened with
// ticks backticks: a run of at least that many backticks and
// nothing else but whitespace.
func closesFence(s string, ticks int) bool {
	t := trimIndent(s)
	n := 0
	for n < len(t) && t[n] == '`' {
		n++
	}
	return n >= ticks && trimSpaceTab(t[n:]) == ""
}
