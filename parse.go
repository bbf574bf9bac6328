// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtree

import (
	"errors"
	"strings"
)

// ErrNestingTooDeep is returned by [Parse] when the input nests
// blockquotes, lists, or inline spans beyond the supported depth.
var ErrNestingTooDeep = errors.New("markdown: nesting too deep")

// maxNesting bounds the combined recursion depth of blockquote
// re-parsing, nested lists, and inline spans. Recursion past the
// limit fails the whole parse instead of overflowing the stack.
const maxNesting = 8192

// A parser carries the state shared across one Parse call: the
// definition tables in scope, the footnotes referenced so far, and
// the recursion depth.
type parser struct {
	defs      *defs
	notes     []*footnote
	noteIndex map[string]*footnote
	depth     int
	tooDeep   bool
}

func (p *parser) enter() bool {
	p.depth++
	if p.depth >= maxNesting {
		p.tooDeep = true
	}
	return !p.tooDeep
}

func (p *parser) exit() {
	p.depth--
}

// Parse parses Markdown text into a document tree. The returned
// node is a [Fragment] whose children are the top-level blocks,
// with a trailing footnotes section when the input references any
// footnotes. Malformed input never fails; unparseable constructs
// degrade to literal text. The only error is [ErrNestingTooDeep],
// and a parse that hits the limit returns no partial tree.
//
// Parse keeps no state between calls and may be used from
// concurrent goroutines.
func Parse(input []byte) (Node, error) {
	src := string(input)
	// A NUL byte is replaced, as in HTML, by U+FFFD.
	src = strings.ReplaceAll(src, "\x00", "�")
	p := &parser{noteIndex: make(map[string]*footnote)}
	doc := p.parse(src)
	if p.tooDeep {
		return nil, ErrNestingTooDeep
	}
	if len(p.notes) > 0 {
		doc = append(doc, p.footnoteSection())
	}
	return doc, nil
}

// parse runs the pipeline over src: scan to blocks, then build.
// Definitions collected from src shadow those of the enclosing
// scope for the duration of the build, which is what makes a
// blockquote interior parse exactly like a top-level document.
func (p *parser) parse(src string) Fragment {
	sc := &scanner{defs: newDefs(p.defs)}
	blocks, d := sc.scan(src)
	p.defs = d
	b := &builder{p: p, reparse: p.reparse}
	return b.build(blocks)
}

// reparse is the entry point handed to the builder for blockquote
// interiors. It restores the enclosing definition scope when done;
// content past the nesting limit stays literal.
func (p *parser) reparse(src string) []Node {
	if !p.enter() {
		return []Node{Text(src)}
	}
	defer p.exit()
	saved := p.defs
	defer func() { p.defs = saved }()
	return p.parse(src)
}
