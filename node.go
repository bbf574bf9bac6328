// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtree

import (
	"fmt"
	"strings"
)

// A Node is a node in the parsed document tree.
//
// The concrete types are [*Element], [Text], [Raw], and [Fragment].
type Node interface {
	node()
}

// An Element is a document element: a tag, its attributes, and its
// children, mirroring the shape of an HTML element.
type Element struct {
	Tag      Tag
	Attr     []Attr
	Children []Node
}

// Text is literal text content. Markdown escapes and character
// references have already been resolved; the text carries no markup.
type Text string

// Raw is verbatim HTML carried through from the input without
// interpretation.
type Raw string

// A Fragment groups sibling nodes without introducing an element.
// It appears where the grammar produces literal text adjacent to a
// parsed construct, such as the unmatched prefix of an emphasis run.
type Fragment []Node

func (*Element) node() {}
func (Text) node()     {}
func (Raw) node()      {}
func (Fragment) node() {}

// An Attr is a single element attribute.
// If Bool is set, the attribute is valueless (like checked).
type Attr struct {
	Key  string
	Val  string
	Bool bool
}

// A Tag identifies the kind of an [Element].
type Tag uint8

const (
	_ Tag = iota
	H1
	H2
	H3
	H4
	H5
	H6
	P
	Pre
	Code
	Hr
	Blockquote
	Ul
	Ol
	Li
	Table
	Thead
	Tbody
	Tr
	Th
	Td
	Em
	Strong
	Del
	A
	Img
	Br
	Sup
	Section
)

var tagNames = [...]string{
	H1:         "h1",
	H2:         "h2",
	H3:         "h3",
	H4:         "h4",
	H5:         "h5",
	H6:         "h6",
	P:          "p",
	Pre:        "pre",
	Code:       "code",
	Hr:         "hr",
	Blockquote: "blockquote",
	Ul:         "ul",
	Ol:         "ol",
	Li:         "li",
	Table:      "table",
	Thead:      "thead",
	Tbody:      "tbody",
	Tr:         "tr",
	Th:         "th",
	Td:         "td",
	Em:         "em",
	Strong:     "strong",
	Del:        "del",
	A:          "a",
	Img:        "img",
	Br:         "br",
	Sup:        "sup",
	Section:    "section",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) && tagNames[t] != "" {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// elem is shorthand for building an element with children.
func elem(t Tag, children ...Node) *Element {
	return &Element{Tag: t, Children: children}
}

// attr appends an attribute and returns e for chaining.
func (e *Element) attr(key, val string) *Element {
	e.Attr = append(e.Attr, Attr{Key: key, Val: val})
	return e
}

// boolAttr appends a valueless attribute.
func (e *Element) boolAttr(key string) *Element {
	e.Attr = append(e.Attr, Attr{Key: key, Bool: true})
	return e
}

// plainText flattens a node list to its text content,
// ignoring markup. It is used for image alt text.
func plainText(list []Node) string {
	var sb strings.Builder
	appendPlainText(&sb, list)
	return sb.String()
}

func appendPlainText(sb *strings.Builder, list []Node) {
	for _, n := range list {
		switch n := n.(type) {
		case Text:
			sb.WriteString(string(n))
		case Fragment:
			appendPlainText(sb, n)
		case *Element:
			if n.Tag == Img {
				for _, a := range n.Attr {
					if a.Key == "alt" {
						sb.WriteString(a.Val)
					}
				}
				continue
			}
			appendPlainText(sb, n.Children)
		}
	}
}

// dump formats a node as a Lisp-like s-expression, for debugging
// and for tests. Attributes print as (key=val) pairs after the tag.
func dump(n Node) string {
	var sb strings.Builder
	dumpTo(&sb, n)
	return sb.String()
}

func dumpTo(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case Text:
		fmt.Fprintf(sb, "%q", string(n))
	case Raw:
		fmt.Fprintf(sb, "(raw %q)", string(n))
	case Fragment:
		sb.WriteString("(frag")
		for _, c := range n {
			sb.WriteString(" ")
			dumpTo(sb, c)
		}
		sb.WriteString(")")
	case *Element:
		sb.WriteString("(")
		sb.WriteString(n.Tag.String())
		for _, a := range n.Attr {
			if a.Bool {
				fmt.Fprintf(sb, " (%s)", a.Key)
			} else {
				fmt.Fprintf(sb, " (%s=%s)", a.Key, a.Val)
			}
		}
		for _, c := range n.Children {
			sb.WriteString(" ")
			dumpTo(sb, c)
		}
		sb.WriteString(")")
	default:
		fmt.Fprintf(sb, "(?%T)", n)
	}
}
