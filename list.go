// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtree

import (
	"strconv"
	"strings"
)

// startItem matches a list item marker line and returns the item
// record with the marker stripped. “A list marker is a bullet list
// marker or an ordered list marker.” Bullets are -, *, or +;
// ordered markers are 1–9 digits followed by . or ). The marker
// must be followed by a space or tab.
//
// [list items]: https://spec.commonmark.org/0.31.2/#list-items
func startItem(s string) (block, bool) {
	indent := indentWidth(s)
	t := strings.TrimLeft(s, " \t")
	b := block{kind: itemKind, indent: indent, num: -1}
	switch {
	case t != "" && (t[0] == '-' || t[0] == '*' || t[0] == '+'):
		if len(t) < 2 || t[1] != ' ' && t[1] != '\t' {
			return block{}, false
		}
		b.bullet = t[0]
		t = t[2:]
	default:
		n := 0
		for n < len(t) && isDigit(t[n]) {
			n++
		}
		if n < 1 || n > 9 || n >= len(t) || t[n] != '.' && t[n] != ')' {
			return block{}, false
		}
		if n+1 >= len(t) || t[n+1] != ' ' && t[n+1] != '\t' {
			return block{}, false
		}
		b.bullet = t[n]
		b.num, _ = strconv.Atoi(t[:n])
		t = t[n+2:]
	}
	b.task, t = trimTask(t)
	b.text = trimSpaceTab(t)
	return b, true
}

// trimTask matches a task list checkbox at the start of item
// content: [ ], [x], or [X], followed by a space or end of line.
//
// [task list items]: https://github.github.com/gfm/#task-list-items-extension-
func trimTask(s string) (taskState, string) {
	if len(s) < 3 || s[0] != '[' || s[2] != ']' {
		return taskNone, s
	}
	if len(s) > 3 && s[3] != ' ' && s[3] != '\t' {
		return taskNone, s
	}
	switch s[1] {
	case ' ':
		return taskTodo, s[3:]
	case 'x', 'X':
		return taskDone, s[3:]
	}
	return taskNone, s
}

// A listItem is one grouped item: its joined paragraph text, its
// checkbox state, and any nested lists attached by indentation.
type listItem struct {
	text string
	task taskState
	subs []Node
}

// list groups the run of item blocks starting at blocks[i] into one
// list element and returns it with the index past the run. Items at
// the starting indent and kind join the list; a deeper item starts a
// nested list attached to the previous item; a shallower item or a
// kind change ends the group. The whole group renders loose if any
// blank separated two of its members or the scanner flagged a
// member loose.
func (b *builder) list(blocks []block, i int) (*Element, int) {
	if !b.p.enter() {
		return elem(Ul), skipItems(blocks, i)
	}
	defer b.p.exit()
	indent := blocks[i].indent
	ordered := blocks[i].ordered()
	var items []*listItem
	loose := false
	pendingBlank := false
	j := i
Loop:
	for j < len(blocks) {
		blk := &blocks[j]
		switch {
		case blk.kind == blankKind:
			if len(items) > 0 {
				pendingBlank = true
			}
			j++
		case blk.kind != itemKind:
			break Loop
		case blk.indent > indent:
			sub, next := b.list(blocks, j)
			last := items[len(items)-1]
			last.subs = append(last.subs, sub)
			if pendingBlank {
				loose = true
				pendingBlank = false
			}
			j = next
		case blk.indent < indent || blk.ordered() != ordered:
			break Loop
		default:
			if pendingBlank {
				loose = true
				pendingBlank = false
			}
			if blk.loose {
				loose = true
			}
			items = append(items, &listItem{text: blk.text, task: blk.task})
			j++
		}
	}

	list := elem(Ul)
	if ordered {
		list.Tag = Ol
		if n := blocks[i].num; n != 1 {
			list.attr("start", strconv.Itoa(n))
		}
	}
	for _, it := range items {
		li := elem(Li)
		if it.task != taskNone {
			li.attr("class", "task-list-item")
			if it.task == taskDone {
				li.boolAttr("checked")
			}
		}
		if loose {
			for _, seg := range strings.Split(it.text, "\n\n") {
				if seg = trimSpaceTabNewline(seg); seg != "" {
					li.Children = append(li.Children, elem(P, b.p.inline(seg)...))
				}
			}
		} else {
			li.Children = b.p.inline(it.text)
		}
		li.Children = append(li.Children, it.subs...)
		list.Children = append(list.Children, li)
	}
	return list, j
}

// skipItems advances past a run of item and blank blocks without
// building anything, for use once the nesting limit has tripped.
func skipItems(blocks []block, i int) int {
	for i < len(blocks) && (blocks[i].kind == itemKind || blocks[i].kind == blankKind) {
		i++
	}
	return i
}
