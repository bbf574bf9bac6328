// Copyright 2025 The ztree-parse-md Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package mdtree parses Markdown into a document tree.

The dialect is the CommonMark core plus the GitHub extensions in
common use: pipe tables, strikethrough, task list items, bare URL
autolinks, and footnotes. The parser does not render; [Parse] returns
a [Node] tree that callers walk or format themselves.

[Parse] runs in two stages. A line-oriented scanner splits the input
into a flat sequence of typed block records, collecting link
reference definitions and footnote definitions as it goes. A builder
then turns the records into the tree, grouping list items by
indentation, assembling tables, re-parsing blockquote interiors, and
running the inline grammar over text content. Inputs that nest
blockquotes or emphasis beyond a fixed depth are rejected with
[ErrNestingTooDeep] rather than risking a stack overflow.

[CommonMark]: https://spec.commonmark.org/0.31.2/
[GitHub]: https://github.github.com/gfm/
*/
package mdtree
