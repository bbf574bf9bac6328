// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtree

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// parseEntity matches a character reference at s[start] == '&'.
// “Entity and numeric character references are recognized in any
// context besides code spans or code blocks.” Invalid or
// out-of-range numeric references produce U+FFFD; an unknown name
// leaves the text literal.
//
// [entity references]: https://spec.commonmark.org/0.31.2/#entity-references
func parseEntity(s string, start int) (Text, int, bool) {
	i := start + 1
	if i < len(s) && s[i] == '#' {
		return parseNumericEntity(s, start, i+1)
	}
	j := i
	for j < len(s) && isLetterDigit(s[j]) {
		j++
	}
	if j == i || j-i > 32 || j >= len(s) || s[j] != ';' {
		return "", 0, false
	}
	name := s[start : j+1]
	// UnescapeString also resolves legacy references without a
	// trailing semicolon, which would truncate the name; a leftover
	// semicolon in the result means the full name did not match.
	un := html.UnescapeString(name)
	if un == name || strings.Contains(un, ";") {
		return "", 0, false
	}
	return Text(un), j + 1, true
}

// parseNumericEntity matches &#digits; and &#xhexdigits;.
// “However, for security reasons, the code point U+0000 will also
// be replaced by U+FFFD.” Digit counts are capped (seven decimal,
// six hex), so the largest valid code point still fits.
//
// [decimal numeric character references]: https://spec.commonmark.org/0.31.2/#decimal-numeric-character-references
func parseNumericEntity(s string, start, i int) (Text, int, bool) {
	hex := false
	if i < len(s) && (s[i] == 'x' || s[i] == 'X') {
		hex = true
		i++
	}
	j := i
	if hex {
		for j < len(s) && isHexDigit(s[j]) {
			j++
		}
	} else {
		for j < len(s) && isDigit(s[j]) {
			j++
		}
	}
	max := 7
	base := 10
	if hex {
		max = 6
		base = 16
	}
	if j == i || j-i > max || j >= len(s) || s[j] != ';' {
		return "", 0, false
	}
	v, err := strconv.ParseInt(s[i:j], base, 32)
	r := rune(v)
	if err != nil || r == 0 || !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	return Text(string(r)), j + 1, true
}
