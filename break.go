// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtree

// isRule matches a thematic break. “A line consisting of
// optionally up to three spaces of indentation, followed by a
// sequence of three or more matching -, _, or * characters, each
// followed optionally by any number of spaces or tabs, forms a
// thematic break.”
//
// [thematic breaks]: https://spec.commonmark.org/0.31.2/#thematic-breaks
func isRule(s string) bool {
	s = trimIndent(s)
	if s == "" {
		return false
	}
	c := s[0]
	if c != '-' && c != '_' && c != '*' {
		return false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case c:
			n++
		case ' ', '\t':
			// ignored
		default:
			return false
		}
	}
	return n >= 3
}
