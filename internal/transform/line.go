// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"regexp"
	"strings"
)

// lineKind tags the classification of a single line.
type lineKind int

const (
	kindPlain lineKind = iota
	kindHeading
	kindTaskOpen
	kindTaskDone
	kindListItem
)

// lineClass is the result of classifying one line. indent is preserved
// byte-for-byte for task and list lines; level is the heading depth.
type lineClass struct {
	kind   lineKind
	level  int
	indent string
	text   string
}

var (
	headingRe  = regexp.MustCompile(`^(#+)\s+(.*)$`)
	taskOpenRe = regexp.MustCompile(`^(\s*)- \[ \] (.*)$`)
	taskDoneRe = regexp.MustCompile(`^(\s*)- \[x\] (.*)$`)
	listItemRe = regexp.MustCompile(`^(\s*)[-*+]\s+(.*)$`)
)

// classifyLine assigns exactly one category to a line, first match wins.
// The task patterns run before the generic list pattern, which would
// otherwise swallow them ("- [ ] x" is also a valid list item). An
// uppercase "- [X]" deliberately falls through to the list rule.
func classifyLine(line string) lineClass {
	if g := headingRe.FindStringSubmatch(line); g != nil {
		return lineClass{kind: kindHeading, level: len(g[1]), text: g[2]}
	}
	if g := taskOpenRe.FindStringSubmatch(line); g != nil {
		return lineClass{kind: kindTaskOpen, indent: g[1], text: g[2]}
	}
	if g := taskDoneRe.FindStringSubmatch(line); g != nil {
		return lineClass{kind: kindTaskDone, indent: g[1], text: g[2]}
	}
	if g := listItemRe.FindStringSubmatch(line); g != nil {
		return lineClass{kind: kindListItem, indent: g[1], text: g[2]}
	}
	return lineClass{kind: kindPlain, text: line}
}

// renderLine maps a classified line to its Neorg form, without the
// trailing newline.
func renderLine(c lineClass) string {
	switch c.kind {
	case kindHeading:
		return strings.Repeat("*", c.level) + " " + c.text
	case kindTaskOpen:
		return c.indent + "-- ( ) " + c.text
	case kindTaskDone:
		return c.indent + "-- (x) " + c.text
	case kindListItem:
		return c.indent + "-- " + c.text
	default:
		return c.text
	}
}

// rewriteLines classifies and renders each line independently. Every
// output line gets exactly one terminator; a source that ends without a
// final newline gains one.
func rewriteLines(text string) string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var b strings.Builder
	b.Grow(len(text) + len(lines))
	for _, line := range lines {
		b.WriteString(renderLine(classifyLine(line)))
		b.WriteByte('\n')
	}
	return b.String()
}
