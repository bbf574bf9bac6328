// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtree

import (
	"bytes"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"golang.org/x/tools/txtar"
)

var goldmarkFlag = flag.Bool("goldmark", false, "also run corpus inputs through goldmark and log its output")

// TestFiles checks the txtar corpora in testdata: each archive
// holds name.md/name.html pairs, where the html side is the
// reference rendering of the parsed tree.
func TestFiles(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no testdata archives")
	}
	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txt"), func(t *testing.T) {
			a, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			if len(a.Files)%2 != 0 {
				t.Fatalf("%s: odd file count", file)
			}
			for i := 0; i+1 < len(a.Files); i += 2 {
				md, html := a.Files[i], a.Files[i+1]
				name := strings.TrimSuffix(md.Name, ".md")
				if name+".md" != md.Name || name+".html" != html.Name {
					t.Fatalf("%s: unpaired entries %s, %s", file, md.Name, html.Name)
				}
				t.Run(name, func(t *testing.T) {
					doc, err := Parse(md.Data)
					if err != nil {
						t.Fatal(err)
					}
					got := renderHTML(doc)
					if want := string(html.Data); got != want {
						t.Errorf("input:\n%s\ngot:\n%s\nwant:\n%s", md.Data, got, want)
					}
					if *goldmarkFlag {
						var buf bytes.Buffer
						if err := goldmark.Convert(md.Data, &buf); err != nil {
							t.Errorf("goldmark: %v", err)
						} else {
							t.Logf("goldmark:\n%s", buf.Bytes())
						}
					}
				})
			}
		})
	}
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// renderHTML is the reference rendering used by the corpus tests.
// Container tags put their children on fresh lines; block leaves
// end their line; inline tags render flat.
func renderHTML(n Node) string {
	var sb strings.Builder
	appendHTML(&sb, n)
	return sb.String()
}

func appendHTML(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case Text:
		sb.WriteString(textEscaper.Replace(string(n)))
	case Raw:
		sb.WriteString(string(n))
	case Fragment:
		for _, c := range n {
			appendHTML(sb, c)
		}
	case *Element:
		tag := n.Tag.String()
		sb.WriteString("<")
		sb.WriteString(tag)
		for _, a := range n.Attr {
			sb.WriteString(" ")
			sb.WriteString(a.Key)
			if !a.Bool {
				sb.WriteString(`="`)
				sb.WriteString(attrEscaper.Replace(a.Val))
				sb.WriteString(`"`)
			}
		}
		sb.WriteString(">")
		switch n.Tag {
		case Hr, Br:
			sb.WriteString("\n")
			return
		case Img:
			return
		}
		if isContainerTag(n.Tag) {
			sb.WriteString("\n")
		}
		for _, c := range n.Children {
			appendHTML(sb, c)
		}
		sb.WriteString("</")
		sb.WriteString(tag)
		sb.WriteString(">")
		if isContainerTag(n.Tag) || isBlockLeafTag(n.Tag) {
			sb.WriteString("\n")
		}
	}
}

func isContainerTag(t Tag) bool {
	switch t {
	case Blockquote, Ul, Ol, Table, Thead, Tbody, Tr, Section:
		return true
	}
	return false
}

func isBlockLeafTag(t Tag) bool {
	switch t {
	case P, H1, H2, H3, H4, H5, H6, Li, Th, Td, Pre:
		return true
	}
	return false
}
