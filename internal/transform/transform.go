// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transform rewrites Markdown text into Neorg text.
//
// The engine is a pure function over document text. It does not parse
// Markdown into a tree; it applies a fixed set of pattern rewrites in
// three passes: inline spans over the whole document, then a per-line
// classification, then fenced code blocks over the result. Anything no
// pattern matches passes through untouched, so every input produces an
// output and there is no error path.
package transform

// Transform converts one Markdown document to Neorg. Every logical line
// of the result ends with a newline, including the last one even when
// the source omitted its final terminator. Safe for concurrent use.
func Transform(doc string) string {
	head := ""
	if meta, rest, ok := splitFrontmatter(doc); ok {
		head = "@document.meta\n" + meta + "@end\n"
		doc = rest
	}

	out := rewriteSpans(doc)
	out = rewriteLines(out)
	out = rewriteFences(out)
	return head + out
}
