// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtree

import "strings"

// inline parses one leaf block's content into inline nodes.
// The scan moves left to right trying each recognizer at the
// current byte; an unmatched construct degrades to literal text
// and the scan resumes past it, so inline parsing never fails.
func (p *parser) inline(s string) []Node {
	s = trimSpaceTabNewline(s)
	if s == "" {
		return nil
	}
	if !p.enter() {
		return []Node{Text(s)}
	}
	defer p.exit()

	var out []Node
	start := 0
	i := 0
	for i < len(s) {
		var x Node
		end := 0
		ok := false
		switch s[i] {
		case '\\':
			x, end, ok = parseEscape(s, i)
		case '`':
			x, end, ok = parseCodeSpan(s, i)
		case '*', '_':
			x, end, ok = p.parseEmph(s, i)
		case '!':
			x, end, ok = p.parseImage(s, i)
		case '[':
			if x, end, ok = p.parseFootnoteRef(s, i); !ok {
				x, end, ok = p.parseLink(s, i)
			}
		case '<':
			if x, end, ok = parseAutolink(s, i); !ok {
				if raw, e, o := parseInlineHTML(s, i); o {
					x, end, ok = raw, e, true
				}
			}
		case '~':
			x, end, ok = p.parseStrike(s, i)
		case '&':
			if t, e, o := parseEntity(s, i); o {
				x, end, ok = t, e, true
			}
		case '\n':
			j := i
			for j > start && (s[j-1] == ' ' || s[j-1] == '\t') {
				j--
			}
			if j > start {
				out = append(out, Text(s[start:j]))
			}
			if i-j >= 2 && s[i-1] == ' ' && s[i-2] == ' ' {
				out = append(out, elem(Br))
			} else {
				out = append(out, Text("\n"))
			}
			i++
			for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
				i++
			}
			start = i
			continue
		case 'h':
			x, end, ok = parseBareURL(s, i)
		}
		if !ok {
			i++
			continue
		}
		if start < i {
			out = append(out, Text(s[start:i]))
		}
		out = append(out, x)
		i = end
		start = i
	}
	if start < len(s) {
		out = append(out, Text(s[start:]))
	}
	return mergeText(out)
}

// parseEscape matches a backslash escape. “Any ASCII punctuation
// character may be backslash-escaped.” A backslash at the end of a
// line is a hard line break; before anything else it is literal.
//
// [backslash escapes]: https://spec.commonmark.org/0.31.2/#backslash-escapes
func parseEscape(s string, start int) (Node, int, bool) {
	if start+1 >= len(s) {
		return nil, 0, false
	}
	c := s[start+1]
	if c == '\n' {
		end := start + 2
		for end < len(s) && (s[end] == ' ' || s[end] == '\t') {
			end++
		}
		return elem(Br), end, true
	}
	if isPunct(c) {
		return Text(s[start+1 : start+2]), start + 2, true
	}
	return nil, 0, false
}

// parseCodeSpan matches a backtick code span: the closing run must
// have exactly the length of the opening run. An unclosed run
// stays literal. Newlines in the content become spaces, and one
// space is stripped from each end if both ends have one and the
// content is not all spaces.
//
// [code spans]: https://spec.commonmark.org/0.31.2/#code-spans
func parseCodeSpan(s string, start int) (Node, int, bool) {
	n := runLen(s, start, '`')
	i := start + n
	for i < len(s) {
		if s[i] != '`' {
			i++
			continue
		}
		m := runLen(s, i, '`')
		if m != n {
			i += m
			continue
		}
		text := strings.ReplaceAll(s[start+n:i], "\n", " ")
		if len(text) >= 2 && text[0] == ' ' && text[len(text)-1] == ' ' && strings.Trim(text, " ") != "" {
			text = text[1 : len(text)-1]
		}
		return elem(Code, Text(text)), i + m, true
	}
	return Text(s[start : start+n]), start + n, true
}

// parseEmph matches an emphasis or strong span opened by a run of
// * or _. A run of length n tries to close at strength min(n,3)
// first, scanning forward for a run of exactly the tried length;
// a run that opens nothing is literal, and the scan does not retry
// shorter strengths at the same position once one has matched.
func (p *parser) parseEmph(s string, start int) (Node, int, bool) {
	c := s[start]
	n := runLen(s, start, c)
	after := start + n
	if after >= len(s) || s[after] == ' ' || s[after] == '\t' || s[after] == '\n' {
		return Text(s[start:after]), after, true
	}
	// _ inside a word does not open.
	if c == '_' && start > 0 && isLetterDigit(s[start-1]) {
		return Text(s[start:after]), after, true
	}
	for k := min(n, 3); k >= 1; k-- {
		j := findEmphCloser(s, after, c, k)
		if j < 0 {
			continue
		}
		inner := p.inline(s[after:j])
		var x Node
		switch k {
		case 3:
			x = elem(Em, elem(Strong, inner...))
		case 2:
			x = elem(Strong, inner...)
		default:
			x = elem(Em, inner...)
		}
		if n > k {
			x = Fragment{Text(s[start : start+n-k]), x}
		}
		return x, j + k, true
	}
	return Text(s[start:after]), after, true
}

// findEmphCloser scans for a run of exactly k of c that can close:
// not escaped, not preceded by whitespace, and for _ not followed
// by an alphanumeric (which would be intra-word). Runs of other
// lengths are skipped whole.
func findEmphCloser(s string, i int, c byte, k int) int {
	for i < len(s) {
		if s[i] != c {
			i++
			continue
		}
		m := runLen(s, i, c)
		if m == k && !escapedAt(s, i) && i > 0 {
			switch s[i-1] {
			case ' ', '\t', '\n':
				// whitespace cannot precede a closer
			default:
				if c != '_' || i+k >= len(s) || !isLetterDigit(s[i+k]) {
					return i
				}
			}
		}
		i += m
	}
	return -1
}

// parseStrike matches ~~strikethrough~~. Only runs of exactly two
// tildes delimit; an unclosed pair stays literal.
//
// [strikethrough]: https://github.github.com/gfm/#strikethrough-extension-
func (p *parser) parseStrike(s string, start int) (Node, int, bool) {
	if runLen(s, start, '~') != 2 {
		return nil, 0, false
	}
	after := start + 2
	if after >= len(s) || s[after] == ' ' || s[after] == '\t' || s[after] == '\n' {
		return Text("~~"), after, true
	}
	i := after
	for i < len(s) {
		if s[i] != '~' {
			i++
			continue
		}
		m := runLen(s, i, '~')
		if m == 2 && !escapedAt(s, i) && s[i-1] != ' ' && s[i-1] != '\t' && s[i-1] != '\n' {
			return elem(Del, p.inline(s[after:i])...), i + 2, true
		}
		i += m
	}
	return Text("~~"), after, true
}

// runLen returns the length of the run of c starting at s[i].
func runLen(s string, i int, c byte) int {
	n := 0
	for i+n < len(s) && s[i+n] == c {
		n++
	}
	return n
}

// mergeText flattens fragments into the list and merges adjacent
// text nodes.
func mergeText(list []Node) []Node {
	var out []Node
	for _, n := range list {
		if f, ok := n.(Fragment); ok {
			for _, c := range mergeText(f) {
				out = appendMerged(out, c)
			}
			continue
		}
		out = appendMerged(out, n)
	}
	return out
}

func appendMerged(out []Node, n Node) []Node {
	if t, ok := n.(Text); ok && len(out) > 0 {
		if prev, ok := out[len(out)-1].(Text); ok {
			out[len(out)-1] = prev + t
			return out
		}
	}
	return append(out, n)
}
