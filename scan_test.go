// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtree

import (
	"reflect"
	"testing"
)

func TestTrimATX(t *testing.T) {
	for _, tt := range []struct {
		in    string
		level int
		text  string
		ok    bool
	}{
		{"# Hello", 1, "Hello", true},
		{"###### deep", 6, "deep", true},
		{"####### too deep", 0, "", false},
		{"#nospace", 0, "", false},
		{"#", 1, "", true},
		{"## trailing ##", 2, "trailing", true},
		{"## trailing##", 2, "trailing##", true},
		{"   # indented", 1, "indented", true},
		{"not # heading", 0, "", false},
	} {
		level, text, ok := trimATX(tt.in)
		if level != tt.level || text != tt.text || ok != tt.ok {
			t.Errorf("trimATX(%q) = %d, %q, %v, want %d, %q, %v",
				tt.in, level, text, ok, tt.level, tt.text, tt.ok)
		}
	}
}

func TestTrimSetext(t *testing.T) {
	for _, tt := range []struct {
		in    string
		level int
		ok    bool
	}{
		{"===", 1, true},
		{"=", 1, true},
		{"---", 2, true},
		{"----------  ", 2, true},
		{"=-=", 0, false},
		{"text", 0, false},
		{"", 0, false},
	} {
		level, ok := trimSetext(tt.in)
		if level != tt.level || ok != tt.ok {
			t.Errorf("trimSetext(%q) = %d, %v, want %d, %v", tt.in, level, ok, tt.level, tt.ok)
		}
	}
}

func TestIsRule(t *testing.T) {
	for _, tt := range []struct {
		in string
		ok bool
	}{
		{"---", true},
		{"***", true},
		{"___", true},
		{"- - -", true},
		{" **  * *", true},
		{"--", false},
		{"-*-", false},
		{"--- x", false},
	} {
		if got := isRule(tt.in); got != tt.ok {
			t.Errorf("isRule(%q) = %v, want %v", tt.in, got, tt.ok)
		}
	}
}

func TestStartItem(t *testing.T) {
	for _, tt := range []struct {
		in     string
		ok     bool
		indent int
		bullet byte
		num    int
		task   taskState
		text   string
	}{
		{"- item", true, 0, '-', -1, taskNone, "item"},
		{"* item", true, 0, '*', -1, taskNone, "item"},
		{"+ item", true, 0, '+', -1, taskNone, "item"},
		{"  - nested", true, 2, '-', -1, taskNone, "nested"},
		{"1. first", true, 0, '.', 1, taskNone, "first"},
		{"42) answer", true, 0, ')', 42, taskNone, "answer"},
		{"1234567890. too long", false, 0, 0, 0, taskNone, ""},
		{"-no space", false, 0, 0, 0, taskNone, ""},
		{"1.no space", false, 0, 0, 0, taskNone, ""},
		{"- [ ] todo", true, 0, '-', -1, taskTodo, "todo"},
		{"- [x] done", true, 0, '-', -1, taskDone, "done"},
		{"- [X] done", true, 0, '-', -1, taskDone, "done"},
		{"- [y] not a task", true, 0, '-', -1, taskNone, "[y] not a task"},
	} {
		b, ok := startItem(tt.in)
		if ok != tt.ok {
			t.Errorf("startItem(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if b.indent != tt.indent || b.bullet != tt.bullet || b.num != tt.num || b.task != tt.task || b.text != tt.text {
			t.Errorf("startItem(%q) = %+v, want indent=%d bullet=%q num=%d task=%d text=%q",
				tt.in, b, tt.indent, tt.bullet, tt.num, tt.task, tt.text)
		}
	}
}

func TestTrimFence(t *testing.T) {
	for _, tt := range []struct {
		in    string
		ticks int
		info  string
		ok    bool
	}{
		{"```", 3, "", true},
		{"```go", 3, "go", true},
		{"````` lang extra ", 5, "lang extra", true},
		{"``", 0, "", false},
		{"```a`b", 0, "", false},
		{"    ```", 0, "", false},
	} {
		ticks, info, ok := trimFence(tt.in)
		if ticks != tt.ticks || info != tt.info || ok != tt.ok {
			t.Errorf("trimFence(%q) = %d, %q, %v, want %d, %q, %v",
				tt.in, ticks, info, ok, tt.ticks, tt.info, tt.ok)
		}
	}
}

func TestIsTableDelim(t *testing.T) {
	for _, tt := range []struct {
		in string
		ok bool
	}{
		{"| --- | --- |", true},
		{"| :--- | ---: | :-: |", true},
		{"---|---", true},
		{"| a | b |", false},
		{"| :: |", false},
		{"", false},
	} {
		if got := isTableDelim(tt.in); got != tt.ok {
			t.Errorf("isTableDelim(%q) = %v, want %v", tt.in, got, tt.ok)
		}
	}
}

func TestTableCells(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want []string
	}{
		{"| a | b |", []string{"a", "b"}},
		{"a | b", []string{"a", "b"}},
		{`| a \| b | c |`, []string{`a \| b`, "c"}},
		{"| lone |", []string{"lone"}},
	} {
		if got := tableCells(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("tableCells(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseRefDef(t *testing.T) {
	for _, tt := range []struct {
		in    string
		label string
		url   string
		title string
		ok    bool
	}{
		{`[ref]: https://x "T"`, "ref", "https://x", "T", true},
		{"[ref]: /url", "ref", "/url", "", true},
		{"[ref]: <my url>", "ref", "my url", "", true},
		{"[Ref Label]: /url", "ref label", "/url", "", true},
		{"[ref]: /url garbage", "", "", "", false},
		{"[ref] : /url", "", "", "", false},
		{"[]: /url", "", "", "", false},
	} {
		label, def, ok := parseRefDef(tt.in)
		if ok != tt.ok {
			t.Errorf("parseRefDef(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if label != tt.label || def.url != tt.url || def.title != tt.title {
			t.Errorf("parseRefDef(%q) = %q, %q, %q, want %q, %q, %q",
				tt.in, label, def.url, def.title, tt.label, tt.url, tt.title)
		}
	}
}

func kinds(blocks []block) []blockKind {
	out := make([]blockKind, len(blocks))
	for i, b := range blocks {
		out[i] = b.kind
	}
	return out
}

func TestScanKinds(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want []blockKind
	}{
		{"# h\n\npara\n", []blockKind{headingKind, blankKind, paragraphKind}},
		{"a\nb\n\nc\n", []blockKind{paragraphKind, blankKind, paragraphKind}},
		{"> q\n> q2\npara\n", []blockKind{quoteKind, paragraphKind}},
		{"- a\n- b\n", []blockKind{itemKind, itemKind}},
		{"```\ncode\n```\n", []blockKind{codeKind}},
		{"```\nunterminated\n", []blockKind{codeKind}},
		{"    code\n", []blockKind{codeKind}},
		{"---\n", []blockKind{ruleKind}},
		{"[r]: /u\n", []blockKind{refDefKind}},
		{"[^f]: note\n", []blockKind{footnoteKind}},
		{"<div>\nx\n</div>\n", []blockKind{htmlKind}},
		{"a | b\n--- | ---\n1 | 2\n", []blockKind{tableKind}},
		{"Title\n===\n", []blockKind{headingKind}},
	} {
		var sc scanner
		blocks, _ := sc.scan(tt.in)
		if got := kinds(blocks); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("scan(%q) kinds = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScanItemLookahead(t *testing.T) {
	var sc scanner
	blocks, _ := sc.scan("- one\n\n  more\n- two\n")
	want := []blockKind{itemKind, itemKind}
	if got := kinds(blocks); !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	if blocks[0].text != "one\n\nmore" || !blocks[0].loose {
		t.Errorf("first item = %q loose=%v, want %q loose=true", blocks[0].text, blocks[0].loose, "one\n\nmore")
	}
	if blocks[1].text != "two" || blocks[1].loose {
		t.Errorf("second item = %q loose=%v, want %q loose=false", blocks[1].text, blocks[1].loose, "two")
	}
}

func TestScanLookaheadStopsAtNestedItem(t *testing.T) {
	// The blank line before a nested item is not consumed by the
	// lookahead; it survives as a blank marker so the builder can
	// see the separation.
	var sc scanner
	blocks, _ := sc.scan("- a\n\n  - b\n")
	want := []blockKind{itemKind, blankKind, itemKind}
	if got := kinds(blocks); !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	if blocks[0].loose {
		t.Errorf("outer item flagged loose by lookahead; looseness belongs to the builder here")
	}
	if blocks[2].indent != 2 {
		t.Errorf("nested item indent = %d, want 2", blocks[2].indent)
	}
}

func TestScanRefDefFirstWins(t *testing.T) {
	var sc scanner
	_, d := sc.scan("[r]: /first\n[r]: /second\n")
	def := d.link("r")
	if def == nil || def.url != "/first" {
		t.Fatalf("link(r) = %+v, want /first", def)
	}
}

func TestScanMultilineParagraphNotSetext(t *testing.T) {
	var sc scanner
	blocks, _ := sc.scan("two\nlines\n---\n")
	want := []blockKind{paragraphKind, ruleKind}
	if got := kinds(blocks); !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	if blocks[0].text != "two\nlines" {
		t.Errorf("paragraph = %q, want %q", blocks[0].text, "two\nlines")
	}
}

func TestDefsShadowing(t *testing.T) {
	outer := newDefs(nil)
	outer.addLink("a", &linkDef{url: "/outer"})
	inner := newDefs(outer)
	inner.addLink("a", &linkDef{url: "/inner"})
	if got := inner.link("a").url; got != "/inner" {
		t.Errorf("inner link(a) = %q, want /inner", got)
	}
	if got := outer.link("a").url; got != "/outer" {
		t.Errorf("outer link(a) = %q, want /outer", got)
	}
	if inner.link("missing") != nil {
		t.Errorf("link(missing) != nil")
	}
}
