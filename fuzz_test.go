// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtree

import (
	"bytes"
	"errors"
	"testing"

	"github.com/yuin/goldmark"
)

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		"",
		"# heading\n\npara with *em* and `code`\n",
		"- a\n  - b\n\n- c\n",
		"> quote\n> > deeper\n",
		"| a | b |\n| --- | :-: |\n| 1 | 2 |\n",
		"[x](/u \"t\") ![i](/p) [r][]\n\n[r]: /url\n",
		"[^n] text\n\n[^n]: note\n",
		"```go\ncode\n",
		"a\x00b \\* &amp; &#x41; <b>x</b> <https://e.com>\n",
		"~~s~~ https://go.dev ***deep***\n",
	} {
		f.Add([]byte(seed))
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		doc, err := Parse(data)
		if err != nil {
			if !errors.Is(err, ErrNestingTooDeep) {
				t.Fatalf("unexpected error: %v", err)
			}
			return
		}
		if doc == nil {
			t.Fatal("nil tree without error")
		}
		if _, ok := doc.(Fragment); !ok {
			t.Fatalf("top-level node is %T, want Fragment", doc)
		}
		// The reference implementation must also accept the input;
		// disagreement on acceptance would mean the grammar lost
		// its never-fail property somewhere.
		var buf bytes.Buffer
		if err := goldmark.Convert(data, &buf); err != nil {
			t.Fatalf("goldmark rejected input accepted here: %v", err)
		}
	})
}
