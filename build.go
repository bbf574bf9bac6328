// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtree

import "strings"

// A builder turns a flat block sequence into the document tree.
// Blockquote interiors go back through the whole pipeline via the
// injected reparse function, which breaks what would otherwise be
// a call cycle between the builder and the top-level parse.
type builder struct {
	p       *parser
	reparse func(string) []Node
}

var headingTags = [...]Tag{1: H1, 2: H2, 3: H3, 4: H4, 5: H5, 6: H6}

// build maps each block record to at most one node. Item runs are
// handed to list grouping, tables to table assembly. Blank markers
// only steer list looseness; reference and footnote definitions
// were consumed by the scanner.
func (b *builder) build(blocks []block) Fragment {
	var out Fragment
	for i := 0; i < len(blocks); i++ {
		blk := &blocks[i]
		switch blk.kind {
		case blankKind, refDefKind, footnoteKind:
			// no output
		case headingKind:
			out = append(out, elem(headingTags[blk.level], b.p.inline(blk.text)...))
		case paragraphKind:
			out = append(out, elem(P, b.p.inline(blk.text)...))
		case codeKind:
			out = append(out, codeBlock(blk.text, blk.info))
		case ruleKind:
			out = append(out, elem(Hr))
		case quoteKind:
			out = append(out, elem(Blockquote, b.reparse(blk.text)...))
		case htmlKind:
			out = append(out, Raw(blk.text+"\n"))
		case itemKind:
			list, next := b.list(blocks, i)
			out = append(out, list)
			i = next - 1
		case tableKind:
			out = append(out, b.table(blk.text))
		}
	}
	return out
}

// codeBlock wraps fenced or indented code content as pre>code.
// The content always ends in a newline; a fence info string's
// first word becomes a language class.
func codeBlock(text, info string) *Element {
	if text != "" {
		text += "\n"
	}
	code := elem(Code, Text(text))
	if info != "" {
		lang, _, _ := strings.Cut(info, " ")
		code.attr("class", "language-"+lang)
	}
	return elem(Pre, code)
}
