// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtree

import "strings"

// blockTags are the tag names that open an HTML block when a line
// starts with them. The list follows the HTML-block rule's fixed
// set of block-level elements.
//
// [HTML blocks]: https://spec.commonmark.org/0.31.2/#html-blocks
var blockTags = []string{
	"address", "article", "aside",
	"base", "basefont", "blockquote", "body",
	"caption", "center", "col", "colgroup",
	"dd", "details", "dialog", "dir", "div", "dl", "dt",
	"fieldset", "figcaption", "figure", "footer", "form", "frame", "frameset",
	"h1", "h2", "h3", "h4", "h5", "h6", "head", "header", "hr", "html",
	"iframe",
	"legend", "li", "link",
	"main", "menu", "menuitem",
	"nav", "noframes",
	"ol", "optgroup", "option",
	"p", "param",
	"search", "section", "summary",
	"table", "tbody", "td", "tfoot", "th", "thead", "title", "tr", "track",
	"ul",
}

// inlineTags are the tag names recognized as inline raw HTML.
// Anything else stays literal text.
var inlineTags = []string{
	"a", "abbr", "b", "bdi", "bdo", "br",
	"cite", "code",
	"del", "dfn",
	"em",
	"i", "img", "ins",
	"kbd",
	"mark",
	"q",
	"rp", "rt", "ruby",
	"s", "samp", "small", "span", "strike", "strong", "sub", "sup",
	"time", "tt",
	"u",
	"var",
	"wbr",
}

// startsHTMLBlock reports whether the line opens an HTML block:
// a comment, processing instruction, declaration, CDATA section,
// or a tag from the block-level list.
func startsHTMLBlock(s string) bool {
	t := trimIndent(s)
	if t == "" || t[0] != '<' {
		return false
	}
	for _, pre := range []string{"<!--", "<![CDATA[", "<?", "<!"} {
		if strings.HasPrefix(t, pre) {
			return true
		}
	}
	t = t[1:]
	if strings.HasPrefix(t, "/") {
		t = t[1:]
	}
	n := 0
	for n < len(t) && isLetterDigit(t[n]) {
		n++
	}
	if n == 0 {
		return false
	}
	if n < len(t) {
		switch t[n] {
		case ' ', '\t', '>', '/':
			// tag name properly terminated
		default:
			return false
		}
	}
	name := strings.ToLower(t[:n])
	for _, tag := range blockTags {
		if name == tag {
			return true
		}
	}
	return false
}

// parseInlineHTML matches raw inline HTML at s[start] == '<':
// a comment, a closing tag, or an open tag whose name is on the
// inline allow-list. The match is passed through opaque.
//
// [raw HTML]: https://spec.commonmark.org/0.31.2/#raw-html
func parseInlineHTML(s string, start int) (Raw, int, bool) {
	t := s[start:]
	if strings.HasPrefix(t, "<!--") {
		if i := strings.Index(t[4:], "-->"); i >= 0 {
			end := start + 4 + i + 3
			return Raw(s[start:end]), end, true
		}
		return "", 0, false
	}
	i := start + 1
	closing := false
	if i < len(s) && s[i] == '/' {
		closing = true
		i++
	}
	j := i
	for j < len(s) && isLetterDigit(s[j]) {
		j++
	}
	name := strings.ToLower(s[i:j])
	allowed := false
	for _, tag := range inlineTags {
		if name == tag {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", 0, false
	}
	if closing {
		j = skipSpace(s, j)
		if j < len(s) && s[j] == '>' {
			return Raw(s[start : j+1]), j + 1, true
		}
		return "", 0, false
	}
	// Attributes pass through without interpretation; the tag ends
	// at the first > not inside a quoted value.
	var quote byte
	for ; j < len(s); j++ {
		c := s[j]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '<':
			return "", 0, false
		case '>':
			return Raw(s[start : j+1]), j + 1, true
		}
	}
	return "", 0, false
}
