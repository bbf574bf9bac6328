// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtree

import "strings"

// A blockKind identifies the kind of a scanned block record.
type blockKind uint8

const (
	blankKind blockKind = iota
	paragraphKind
	headingKind
	codeKind
	ruleKind
	quoteKind
	itemKind
	tableKind
	htmlKind
	refDefKind
	footnoteKind
)

// A taskState records the checkbox of a task list item, if any.
type taskState uint8

const (
	taskNone taskState = iota
	taskTodo
	taskDone
)

// A block is one record in the flat sequence the scanner emits.
// The scanner classifies lines; it does not nest. Structure
// (list nesting, table assembly, blockquote interiors) is
// recovered later by the builder.
type block struct {
	kind   blockKind
	text   string    // content with markers stripped
	info   string    // fence language, or footnote label
	level  int       // heading level 1 through 6
	indent int       // list item marker column
	bullet byte      // '-', '*', '+', or the '.' or ')' after a number
	num    int       // ordered item number, -1 for bullets
	task   taskState // task list checkbox
	loose  bool      // item absorbed a blank-separated continuation
}

func (b *block) ordered() bool {
	return b.bullet == '.' || b.bullet == ')'
}

// A linkDef is a collected link reference definition.
//
// [link reference definition]: https://spec.commonmark.org/0.31.2/#link-reference-definitions
type linkDef struct {
	url   string
	title string
}

// defs holds the reference and footnote definitions collected during
// a scan. A blockquote interior is scanned with a child defs whose
// parent is the enclosing scope, so inner definitions shadow outer
// ones for the inner content only. Within one scope the first
// definition of a label wins.
type defs struct {
	links  map[string]*linkDef
	notes  map[string]string
	parent *defs
}

func newDefs(parent *defs) *defs {
	return &defs{
		links:  make(map[string]*linkDef),
		notes:  make(map[string]string),
		parent: parent,
	}
}

func (d *defs) addLink(label string, def *linkDef) {
	if _, ok := d.links[label]; !ok {
		d.links[label] = def
	}
}

func (d *defs) addNote(label, text string) {
	if _, ok := d.notes[label]; !ok {
		d.notes[label] = text
	}
}

func (d *defs) link(label string) *linkDef {
	for ; d != nil; d = d.parent {
		if def, ok := d.links[label]; ok {
			return def
		}
	}
	return nil
}

func (d *defs) note(label string) (string, bool) {
	for ; d != nil; d = d.parent {
		if text, ok := d.notes[label]; ok {
			return text, true
		}
	}
	return "", false
}

// A scanner holds the state of one pass over the input:
// the pending paragraph, the pending blockquote lines, and the
// open table. Fences, HTML blocks, and indented code consume
// their lines in place and leave no state behind.
type scanner struct {
	lines  []string
	defs   *defs
	blocks []block

	para  []string // pending paragraph lines
	quote []string // pending blockquote lines, prefix stripped
	table []string // open table: header, separator, then rows
}

// scan splits src into lines and classifies each in a fixed
// priority order, emitting the flat block sequence and the
// collected definitions.
func (s *scanner) scan(src string) ([]block, *defs) {
	if s.defs == nil {
		s.defs = newDefs(nil)
	}
	s.lines = splitLines(src)
	for i := 0; i < len(s.lines); i++ {
		i = s.scanLine(i)
	}
	s.flushQuote()
	s.flushTable()
	s.flushPara()
	return s.blocks, s.defs
}

// scanLine classifies the line at index i, emitting any blocks it
// completes. It returns the index of the last line it consumed;
// most classifiers consume one line, but fences, HTML blocks,
// indented code, and list continuation look ahead.
func (s *scanner) scanLine(i int) int {
	ln := s.lines[i]

	if text, ok := trimQuote(ln); ok {
		s.flushTable()
		s.flushPara()
		s.quote = append(s.quote, text)
		return i
	}
	s.flushQuote()

	if isBlank(ln) {
		s.flushTable()
		s.flushPara()
		s.blocks = append(s.blocks, block{kind: blankKind})
		return i
	}

	// A setext underline only promotes a single-line paragraph.
	// Otherwise --- falls through to the thematic break and list
	// checks below.
	if len(s.para) == 1 && s.table == nil {
		if level, ok := trimSetext(ln); ok {
			text := trimSpaceTab(s.para[0])
			s.para = nil
			s.blocks = append(s.blocks, block{kind: headingKind, level: level, text: text})
			return i
		}
	}

	if isRule(ln) {
		s.flushTable()
		s.flushPara()
		s.blocks = append(s.blocks, block{kind: ruleKind})
		return i
	}

	if b, ok := startItem(ln); ok {
		s.flushTable()
		s.flushPara()
		s.blocks = append(s.blocks, b)
		return s.itemLookahead(i)
	}

	if ticks, info, ok := trimFence(ln); ok {
		s.flushTable()
		s.flushPara()
		return s.scanFence(i, ticks, info)
	}

	if label, text, ok := trimFootnoteDef(ln); ok {
		s.flushTable()
		s.flushPara()
		s.defs.addNote(label, text)
		s.blocks = append(s.blocks, block{kind: footnoteKind, info: label, text: text})
		return i
	}

	if label, def, ok := parseRefDef(ln); ok {
		s.flushTable()
		s.flushPara()
		s.defs.addLink(label, def)
		// Recorded so block order is preserved; builds to nothing.
		s.blocks = append(s.blocks, block{kind: refDefKind})
		return i
	}

	if level, text, ok := trimATX(ln); ok {
		s.flushTable()
		s.flushPara()
		s.blocks = append(s.blocks, block{kind: headingKind, level: level, text: text})
		return i
	}

	if startsHTMLBlock(ln) {
		s.flushTable()
		s.flushPara()
		return s.scanHTML(i)
	}

	if s.para == nil && s.table == nil && !isBlank(ln) && indentWidth(ln) >= 4 {
		return s.scanIndent(i)
	}

	if s.table != nil {
		if strings.Contains(ln, "|") {
			s.table = append(s.table, ln)
			return i
		}
		s.flushTable()
	}

	if len(s.para) == 1 && strings.Contains(s.para[0], "|") && isTableDelim(ln) {
		s.table = append(s.table, s.para[0], ln)
		s.para = nil
		return i
	}

	s.para = append(s.para, ln)
	return i
}

func (s *scanner) flushPara() {
	if s.para == nil {
		return
	}
	text := trimSpaceTab(strings.Join(s.para, "\n"))
	s.para = nil
	s.blocks = append(s.blocks, block{kind: paragraphKind, text: text})
}

func (s *scanner) flushQuote() {
	if s.quote == nil {
		return
	}
	text := strings.Join(s.quote, "\n")
	s.quote = nil
	s.blocks = append(s.blocks, block{kind: quoteKind, text: text})
}

func (s *scanner) flushTable() {
	if s.table == nil {
		return
	}
	text := strings.Join(s.table, "\n")
	s.table = nil
	s.blocks = append(s.blocks, block{kind: tableKind, text: text})
}

// itemLookahead extends the just-emitted item at s.blocks[len-1].
// A directly following line indented past the marker joins the
// item's paragraph. A blank line followed by such a line starts a
// new paragraph within the item and marks it loose. A line that is
// itself a list marker is never absorbed; nested items and the
// blanks before them are left for the builder, which derives
// looseness from the blank markers. The lookahead stops at the
// first line it does not consume.
func (s *scanner) itemLookahead(i int) int {
	it := &s.blocks[len(s.blocks)-1]
	min := it.indent + 2
	for i+1 < len(s.lines) {
		next := s.lines[i+1]
		if !isBlank(next) {
			if indentWidth(next) < min {
				break
			}
			if _, ok := startItem(next); ok {
				break
			}
			it.text += "\n" + trimSpaceTab(next)
			i++
			continue
		}
		if i+2 >= len(s.lines) {
			break
		}
		cont := s.lines[i+2]
		if isBlank(cont) || indentWidth(cont) < min {
			break
		}
		if _, ok := startItem(cont); ok {
			break
		}
		it.text += "\n\n" + trimSpaceTab(cont)
		it.loose = true
		i += 2
	}
	return i
}

// scanFence consumes the body of a code fence opened at line i.
// “The content of the code block consists of all subsequent lines,
// until a closing code fence of the same type as the code block
// began with.” An unterminated fence runs to end of input.
//
// [fenced code blocks]: https://spec.commonmark.org/0.31.2/#fenced-code-blocks
func (s *scanner) scanFence(i, ticks int, info string) int {
	var buf []string
	j := i + 1
	for ; j < len(s.lines); j++ {
		if closesFence(s.lines[j], ticks) {
			break
		}
		buf = append(buf, s.lines[j])
	}
	s.blocks = append(s.blocks, block{kind: codeKind, text: strings.Join(buf, "\n"), info: info})
	if j == len(s.lines) {
		return j - 1
	}
	return j
}

// scanHTML consumes an HTML block starting at line i: the start
// line and every following line up to but not including the next
// blank line. The content is preserved verbatim.
func (s *scanner) scanHTML(i int) int {
	j := i
	for j+1 < len(s.lines) && !isBlank(s.lines[j+1]) {
		j++
	}
	s.blocks = append(s.blocks, block{kind: htmlKind, text: strings.Join(s.lines[i:j+1], "\n")})
	return j
}

// scanIndent consumes an indented code block starting at line i:
// consecutive lines indented four or more spaces, with interior
// blank lines allowed when more indented code follows. Four spaces
// are stripped from each line.
func (s *scanner) scanIndent(i int) int {
	var buf []string
	j := i
	for j < len(s.lines) {
		ln := s.lines[j]
		if !isBlank(ln) && indentWidth(ln) >= 4 {
			buf = append(buf, dedent4(ln))
			j++
			continue
		}
		if isBlank(ln) {
			k := j
			for k < len(s.lines) && isBlank(s.lines[k]) {
				k++
			}
			if k < len(s.lines) && !isBlank(s.lines[k]) && indentWidth(s.lines[k]) >= 4 {
				for ; j < k; j++ {
					buf = append(buf, "")
				}
				continue
			}
		}
		break
	}
	s.blocks = append(s.blocks, block{kind: codeKind, text: strings.Join(buf, "\n")})
	return j - 1
}

// splitLines splits src into lines at newlines, dropping the
// terminators. A carriage return before a newline is dropped too.
// The last line needs no terminator.
func splitLines(src string) []string {
	lines := strings.Split(src, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}

// isBlank reports whether the line contains only spaces and tabs.
//
// [blank line]: https://spec.commonmark.org/0.31.2/#blank-lines
func isBlank(s string) bool {
	return trimSpaceTab(s) == ""
}

// indentWidth returns the width of the line's leading whitespace.
// Spaces count one column each; tabs count zero.
func indentWidth(s string) int {
	w := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ':
			w++
		case '\t':
			// zero width
		default:
			return w
		}
	}
	return w
}

// dedent4 removes up to four leading spaces.
func dedent4(s string) string {
	for i := 0; i < 4 && s != "" && s[0] == ' '; i++ {
		s = s[1:]
	}
	return s
}
