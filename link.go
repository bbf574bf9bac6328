// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtree

import (
	"strings"

	"golang.org/x/text/cases"
)

// maxLinkLabel caps reference label length, matching the 999
// character limit that keeps label scanning linear.
//
// [link label]: https://spec.commonmark.org/0.31.2/#link-label
const maxLinkLabel = 999

// parseLink matches a link at s[start] == '['. The bracketed text
// is resolved in order as an inline destination, a full reference,
// a collapsed reference, and a shortcut reference; if none applies
// the bracket stays literal.
//
// [links]: https://spec.commonmark.org/0.31.2/#links
func (p *parser) parseLink(s string, start int) (Node, int, bool) {
	txt, i, ok := scanBracket(s, start)
	if !ok {
		return nil, 0, false
	}
	def, end, ok := p.linkTarget(s, i, txt)
	if !ok {
		return nil, 0, false
	}
	a := elem(A, p.inline(txt)...).attr("href", def.url)
	if def.title != "" {
		a.attr("title", def.title)
	}
	return a, end, true
}

// parseImage matches ![alt](...). Images use the link grammar but
// flatten the bracketed text into an alt attribute.
//
// [images]: https://spec.commonmark.org/0.31.2/#images
func (p *parser) parseImage(s string, start int) (Node, int, bool) {
	if start+1 >= len(s) || s[start+1] != '[' {
		return nil, 0, false
	}
	txt, i, ok := scanBracket(s, start+1)
	if !ok {
		return nil, 0, false
	}
	def, end, ok := p.linkTarget(s, i, txt)
	if !ok {
		return nil, 0, false
	}
	img := elem(Img).attr("src", def.url).attr("alt", plainText(p.inline(txt)))
	if def.title != "" {
		img.attr("title", def.title)
	}
	return img, end, true
}

// linkTarget resolves what follows a closing bracket at s[i]:
// (url "title"), [label], [] using txt as the label, or nothing,
// in which case txt itself is the label. A shortcut is not tried
// when ( or [ follows.
func (p *parser) linkTarget(s string, i int, txt string) (*linkDef, int, bool) {
	if i < len(s) && s[i] == '(' {
		return parseInlineDest(s, i)
	}
	if i < len(s) && s[i] == '[' {
		j := strings.IndexByte(s[i:], ']')
		if j < 0 {
			return nil, 0, false
		}
		label := s[i+1 : i+j]
		if label == "" {
			label = txt
		}
		def := p.defs.link(normalizeLabel(label))
		if def == nil {
			return nil, 0, false
		}
		return def, i + j + 1, true
	}
	def := p.defs.link(normalizeLabel(txt))
	if def == nil {
		return nil, 0, false
	}
	return def, i, true
}

// parseInlineDest parses (url "title") at s[i] == '('.
func parseInlineDest(s string, i int) (*linkDef, int, bool) {
	j := skipSpace(s, i+1)
	url, j, ok := parseLinkDest(s, j)
	if !ok {
		return nil, 0, false
	}
	def := &linkDef{url: url}
	k := skipSpace(s, j)
	if k > j && k < len(s) && s[k] != ')' {
		title, e, ok := parseLinkTitle(s, k)
		if !ok {
			return nil, 0, false
		}
		def.title = title
		k = skipSpace(s, e)
	}
	if k < len(s) && s[k] == ')' {
		return def, k + 1, true
	}
	return nil, 0, false
}

// parseLinkDest parses a link destination: either <...> with no
// embedded < or newline, or a run of non-space characters with
// balanced parentheses. “Although link destinations may contain
// balanced parentheses, at most 32 may be nested”, which keeps
// malicious inputs from forcing deep scans.
//
// [link destination]: https://spec.commonmark.org/0.31.2/#link-destination
func parseLinkDest(s string, i int) (string, int, bool) {
	if i < len(s) && s[i] == '<' {
		for j := i + 1; j < len(s); j++ {
			switch s[j] {
			case '>':
				return mdUnescape(s[i+1 : j]), j + 1, true
			case '<', '\n':
				return "", 0, false
			}
		}
		return "", 0, false
	}
	depth := 0
	j := i
Loop:
	for j < len(s) {
		switch s[j] {
		case ' ', '\t', '\n':
			break Loop
		case '\\':
			j++
			if j < len(s) && isPunct(s[j]) {
				j++
			}
		case '(':
			depth++
			if depth > 32 {
				return "", 0, false
			}
			j++
		case ')':
			if depth == 0 {
				break Loop
			}
			depth--
			j++
		default:
			j++
		}
	}
	return mdUnescape(s[i:j]), j, true
}

// parseLinkTitle parses a link title delimited by double quotes,
// single quotes, or parentheses.
//
// [link title]: https://spec.commonmark.org/0.31.2/#link-title
func parseLinkTitle(s string, i int) (string, int, bool) {
	if i >= len(s) {
		return "", 0, false
	}
	open := s[i]
	close := open
	switch open {
	case '"', '\'':
	case '(':
		close = ')'
	default:
		return "", 0, false
	}
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case close:
			return mdUnescape(s[i+1 : j]), j + 1, true
		case open:
			return "", 0, false
		}
	}
	return "", 0, false
}

// scanBracket finds the ] matching the [ at s[start], honoring
// nesting and backslash escapes, and returns the text between.
func scanBracket(s string, start int) (inner string, end int, ok bool) {
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start+1 : i], i + 1, true
			}
		}
	}
	return "", 0, false
}

// normalizeLabel prepares a reference label for lookup:
// whitespace is trimmed and collapsed, and the case is folded.
// “One label matches another just in case their normalized forms
// are equal.”
//
// [matches]: https://spec.commonmark.org/0.31.2/#matches
func normalizeLabel(s string) string {
	if len(s) > maxLinkLabel {
		return ""
	}
	s = strings.Join(strings.Fields(s), " ")
	return cases.Fold().String(s)
}

// parseRefDef matches a one-line link reference definition,
// [label]: url "title", with the title optional.
func parseRefDef(s string) (string, *linkDef, bool) {
	t := trimIndent(s)
	if t == "" || t[0] != '[' {
		return "", nil, false
	}
	inner, i, ok := scanBracket(t, 0)
	if !ok || i >= len(t) || t[i] != ':' {
		return "", nil, false
	}
	label := normalizeLabel(inner)
	if label == "" {
		return "", nil, false
	}
	j := skipSpace(t, i+1)
	url, j, ok := parseLinkDest(t, j)
	if !ok || url == "" {
		return "", nil, false
	}
	def := &linkDef{url: url}
	k := skipSpace(t, j)
	if k == len(t) {
		return label, def, true
	}
	if k == j {
		return "", nil, false
	}
	title, e, ok := parseLinkTitle(t, k)
	if !ok || skipSpace(t, e) != len(t) {
		return "", nil, false
	}
	def.title = title
	return label, def, true
}

// parseAutolink matches <scheme:uri> and <addr@host> autolinks.
//
// [autolinks]: https://spec.commonmark.org/0.31.2/#autolinks
func parseAutolink(s string, start int) (Node, int, bool) {
	j := start + 1
	for j < len(s) {
		c := s[j]
		if c == '>' {
			break
		}
		if c == ' ' || c == '\t' || c == '\n' || c == '<' {
			return nil, 0, false
		}
		j++
	}
	if j >= len(s) {
		return nil, 0, false
	}
	uri := s[start+1 : j]
	switch {
	case isURI(uri):
		return elem(A, Text(uri)).attr("href", uri), j + 1, true
	case isEmail(uri):
		return elem(A, Text(uri)).attr("href", "mailto:"+uri), j + 1, true
	}
	return nil, 0, false
}

// isURI reports whether s is scheme:rest with a valid scheme.
// “A scheme is any sequence of 2–32 characters beginning with an
// ASCII letter and followed by any combination of ASCII letters,
// digits, or the symbols plus, period, or hyphen.”
func isURI(s string) bool {
	i := strings.IndexByte(s, ':')
	if i < 2 || i > 32 || !isLetter(s[0]) {
		return false
	}
	for j := 1; j < i; j++ {
		c := s[j]
		if !isLetterDigit(c) && c != '+' && c != '.' && c != '-' {
			return false
		}
	}
	return true
}

// isEmail loosely matches an email address: local@domain with
// dot-separated letter-digit-hyphen domain labels.
func isEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	for i := 0; i < at; i++ {
		c := s[i]
		if !isLetterDigit(c) && !strings.ContainsRune(".!#$%&'*+/=?^_`{|}~-", rune(c)) {
			return false
		}
	}
	for _, label := range strings.Split(s[at+1:], ".") {
		if label == "" || label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for i := 0; i < len(label); i++ {
			if !isLDH(label[i]) {
				return false
			}
		}
	}
	return true
}

// parseBareURL matches a bare http:// or https:// URL outside
// angle brackets, a GFM extension. Trailing sentence punctuation
// is not part of the link.
//
// [autolinks extension]: https://github.github.com/gfm/#autolinks-extension-
func parseBareURL(s string, start int) (Node, int, bool) {
	if start > 0 && isLetterDigit(s[start-1]) {
		return nil, 0, false
	}
	t := s[start:]
	n := 0
	switch {
	case strings.HasPrefix(t, "https://"):
		n = len("https://")
	case strings.HasPrefix(t, "http://"):
		n = len("http://")
	default:
		return nil, 0, false
	}
	end := start + n
	for end < len(s) {
		c := s[end]
		if c == ' ' || c == '\t' || c == '\n' || c == '<' || c == '>' {
			break
		}
		end++
	}
	for end > start+n && strings.ContainsRune(".,;:!?)", rune(s[end-1])) {
		end--
	}
	if end == start+n {
		return nil, 0, false
	}
	url := s[start:end]
	return elem(A, Text(url)).attr("href", url), end, true
}
