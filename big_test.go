// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtree

import (
	"errors"
	"strings"
	"testing"
)

// Pathological inputs must terminate, returning either a tree or
// the nesting error, never crashing.

func TestBigQuotes(t *testing.T) {
	if _, err := Parse([]byte(strings.Repeat("> ", 2000) + "x")); err != nil {
		t.Fatalf("depth 2000: %v", err)
	}
	if _, err := Parse([]byte(strings.Repeat("> ", 20000) + "x")); !errors.Is(err, ErrNestingTooDeep) {
		t.Fatalf("depth 20000: err = %v, want ErrNestingTooDeep", err)
	}
}

func TestBigEmphasisNesting(t *testing.T) {
	src := strings.Repeat("*x ", 10000) + "y" + strings.Repeat(" x*", 10000)
	if _, err := Parse([]byte(src)); !errors.Is(err, ErrNestingTooDeep) {
		t.Fatalf("err = %v, want ErrNestingTooDeep", err)
	}
}

func TestBigBrackets(t *testing.T) {
	doc, err := Parse([]byte(strings.Repeat("[", 2000)))
	if err != nil {
		t.Fatal(err)
	}
	frag := doc.(Fragment)
	p, ok := frag[0].(*Element)
	if !ok || p.Tag != P {
		t.Fatalf("not a paragraph: %T", frag[0])
	}
	if text, ok := p.Children[0].(Text); !ok || string(text) != strings.Repeat("[", 2000) {
		t.Fatalf("brackets not preserved verbatim")
	}
}

func TestBigEmphasisRun(t *testing.T) {
	src := "a" + strings.Repeat("*", 50000)
	doc, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	frag := doc.(Fragment)
	p := frag[0].(*Element)
	if text, ok := p.Children[0].(Text); !ok || string(text) != src {
		t.Fatalf("run not preserved verbatim")
	}
}

func TestBigUnclosedFence(t *testing.T) {
	src := "```\n" + strings.Repeat("line\n", 10000)
	doc, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	frag := doc.(Fragment)
	pre := frag[0].(*Element)
	if pre.Tag != Pre {
		t.Fatalf("tag = %v, want pre", pre.Tag)
	}
}

var benchDoc = strings.Repeat(`# Heading

Some *emphasized* and **strong** text with a [link](https://example.com)
and `+"`code`"+`.

- item one
- item two
  - nested

> a quote with ~~strikethrough~~

| a | b |
| --- | --- |
| 1 | 2 |

`, 50)

func BenchmarkParse(b *testing.B) {
	in := []byte(benchDoc)
	b.SetBytes(int64(len(in)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(in); err != nil {
			b.Fatal(err)
		}
	}
}
