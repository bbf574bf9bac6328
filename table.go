// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtree

import "strings"

// isTableDelim matches a table delimiter row: cells of hyphens with
// optional leading and trailing colons. “The delimiter row consists
// of cells whose only content are hyphens (-), and optionally, a
// leading or trailing colon (:), or both, to indicate left, right,
// or center alignment respectively.”
//
// [tables]: https://github.github.com/gfm/#tables-extension-
func isTableDelim(s string) bool {
	return tableAligns(s) != nil
}

// tableAligns parses a delimiter row into its per-column alignments
// ("left", "right", "center", or "" for none), or nil if the line
// is not a delimiter row. The result's length fixes the table's
// column count.
func tableAligns(s string) []string {
	cells := tableCells(s)
	if len(cells) == 0 {
		return nil
	}
	aligns := make([]string, len(cells))
	for i, c := range cells {
		left := strings.HasPrefix(c, ":")
		right := strings.HasSuffix(c, ":") && len(c) > 1
		dashes := strings.Trim(c, ":")
		if dashes == "" || strings.Trim(dashes, "-") != "" {
			return nil
		}
		switch {
		case left && right:
			aligns[i] = "center"
		case left:
			aligns[i] = "left"
		case right:
			aligns[i] = "right"
		}
	}
	return aligns
}

// tableCells splits a row into its trimmed cell texts. Outer pipes
// are optional and stripped; a pipe escaped with a backslash does
// not split. The escape itself is left in place for the inline
// parser to resolve.
func tableCells(s string) []string {
	s = trimSpaceTab(s)
	if s == "" {
		return nil
	}
	if s[0] == '|' {
		s = s[1:]
	}
	if strings.HasSuffix(s, "|") && !escapedAt(s, len(s)-1) {
		s = s[:len(s)-1]
	}
	var cells []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '|' && !escapedAt(s, i) {
			cells = append(cells, trimSpaceTab(s[start:i]))
			start = i + 1
		}
	}
	cells = append(cells, trimSpaceTab(s[start:]))
	return cells
}

// escapedAt reports whether s[i] is preceded by an odd number of
// backslashes.
func escapedAt(s string, i int) bool {
	n := 0
	for i-1-n >= 0 && s[i-1-n] == '\\' {
		n++
	}
	return n%2 == 1
}

// table assembles a scanned table block: the first line becomes the
// header row, the second fixes column count and alignment, and the
// rest become body rows. Rows are zipped to the column count, with
// missing cells empty and extra cells dropped.
func (b *builder) table(text string) *Element {
	lines := strings.Split(text, "\n")
	aligns := tableAligns(lines[1])
	tbl := elem(Table)
	tbl.Children = append(tbl.Children, elem(Thead, b.tableRow(lines[0], aligns, Th)))
	if len(lines) > 2 {
		tbody := elem(Tbody)
		for _, ln := range lines[2:] {
			tbody.Children = append(tbody.Children, b.tableRow(ln, aligns, Td))
		}
		tbl.Children = append(tbl.Children, tbody)
	}
	return tbl
}

func (b *builder) tableRow(line string, aligns []string, tag Tag) *Element {
	cells := tableCells(line)
	tr := elem(Tr)
	for i, align := range aligns {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		c := elem(tag, b.p.inline(cell)...)
		if align != "" {
			c.attr("style", "text-align: "+align)
		}
		tr.Children = append(tr.Children, c)
	}
	return tr
}
