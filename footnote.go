// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtree

import (
	"fmt"
	"strconv"
	"strings"
)

// A footnote tracks one referenced definition: its number in
// first-reference order, its definition text, and how many
// references point at it, which fixes the back-link anchors.
type footnote struct {
	label string
	num   int
	text  string
	refs  int
}

// trimFootnoteDef matches a footnote definition line, [^id]: text.
//
// [footnotes]: https://github.github.com/gfm/#footnotes
func trimFootnoteDef(s string) (label, text string, ok bool) {
	t := trimIndent(s)
	if !strings.HasPrefix(t, "[^") {
		return "", "", false
	}
	i := strings.IndexByte(t, ']')
	if i < 0 || i+1 >= len(t) || t[i+1] != ':' {
		return "", "", false
	}
	label = t[2:i]
	if label == "" || strings.ContainsAny(label, " \t") {
		return "", "", false
	}
	return label, trimSpaceTab(t[i+2:]), true
}

// parseFootnoteRef matches a footnote reference [^id] at
// s[start] == '['. It only matches a defined footnote, and not
// when a ( follows, which reads as ordinary link syntax. Footnotes
// are numbered in the order first referenced.
func (p *parser) parseFootnoteRef(s string, start int) (Node, int, bool) {
	if start+1 >= len(s) || s[start+1] != '^' {
		return nil, 0, false
	}
	rest := s[start+2:]
	i := strings.IndexByte(rest, ']')
	if i <= 0 {
		return nil, 0, false
	}
	label := rest[:i]
	if strings.ContainsAny(label, " \t\n") {
		return nil, 0, false
	}
	end := start + 2 + i + 1
	if end < len(s) && s[end] == '(' {
		return nil, 0, false
	}
	text, ok := p.defs.note(label)
	if !ok {
		return nil, 0, false
	}
	fn := p.noteIndex[label]
	if fn == nil {
		fn = &footnote{label: label, num: len(p.notes) + 1, text: text}
		p.notes = append(p.notes, fn)
		p.noteIndex[label] = fn
	}
	fn.refs++
	a := elem(A, Text(strconv.Itoa(fn.num)))
	a.attr("id", refID(fn.num, fn.refs))
	a.attr("href", "#fn-"+strconv.Itoa(fn.num))
	return elem(Sup, a).attr("class", "fn"), end, true
}

// refID returns the anchor id for the nth reference to footnote
// num: fnref-1 for the first, fnref-1-2 for the second, and so on.
func refID(num, nth int) string {
	if nth <= 1 {
		return fmt.Sprintf("fnref-%d", num)
	}
	return fmt.Sprintf("fnref-%d-%d", num, nth)
}

// footnoteSection synthesizes the closing section listing every
// referenced footnote, each item ending in back-links to its
// references. Definitions never referenced are dropped.
func (p *parser) footnoteSection() *Element {
	ol := elem(Ol)
	for _, fn := range p.notes {
		li := elem(Li)
		li.attr("id", "fn-"+strconv.Itoa(fn.num))
		li.Children = p.inline(fn.text)
		for nth := 1; nth <= fn.refs; nth++ {
			back := elem(A, Text("↩")).attr("class", "fnref")
			back.attr("href", "#"+refID(fn.num, nth))
			li.Children = append(li.Children, Text(" "), back)
		}
		li.Children = mergeText(li.Children)
		ol.Children = append(ol.Children, li)
	}
	return elem(Section, ol).attr("class", "footnotes")
}
