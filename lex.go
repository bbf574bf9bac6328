// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtree

import "strings"

// isPunct reports whether c is an ASCII punctuation character.
// “An ASCII punctuation character is !, ", #, $, %, &, ', (, ), *,
// +, ,, -, ., /, :, ;, <, =, >, ?, @, [, \, ], ^, _, `, {, |, }, or
// ~.”
//
// [ASCII punctuation character]: https://spec.commonmark.org/0.31.2/#ascii-punctuation-character
func isPunct(c byte) bool {
	return '!' <= c && c <= '/' || ':' <= c && c <= '@' || '[' <= c && c <= '`' || '{' <= c && c <= '~'
}

func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetterDigit(c byte) bool {
	return isLetter(c) || isDigit(c)
}

func isHexDigit(c byte) bool {
	return 'A' <= c && c <= 'F' || 'a' <= c && c <= 'f' || '0' <= c && c <= '9'
}

// isLDH reports whether c is a letter, digit, or hyphen,
// the alphabet of a domain name label.
func isLDH(c byte) bool {
	return isLetterDigit(c) || c == '-'
}

// skipSpace returns i advanced past any spaces, tabs, and newlines.
func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
		i++
	}
	return i
}

// trimSpaceTab returns s with leading and trailing spaces and tabs
// removed.
func trimSpaceTab(s string) string {
	return strings.Trim(s, " \t")
}

// trimSpaceTabNewline returns s with leading and trailing spaces,
// tabs, and newlines removed.
func trimSpaceTabNewline(s string) string {
	return strings.Trim(s, " \t\n")
}

// mdUnescape returns s with backslash escapes of punctuation
// resolved. Other backslashes are left alone.
//
// [backslash escapes]: https://spec.commonmark.org/0.31.2/#backslash-escapes
func mdUnescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && isPunct(s[i+1]) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
