// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"regexp"
	"strings"
	"unicode"
)

// fenceRe matches a fenced code block: an opening fence with an optional
// language tag, then the shortest payload up to the next closing fence.
// Non-greedy matching means blocks never nest and the first closing
// fence wins.
var fenceRe = regexp.MustCompile("(?s)```(\\w*)\\n(.*?)```")

// rewriteFences converts fenced code blocks to @code/@end ranges. The
// payload keeps its leading whitespace but loses trailing whitespace,
// including trailing blank lines. A fence with no language tag produces
// "@code " with a trailing space, which Neorg tolerates and existing
// output depends on.
func rewriteFences(text string) string {
	return fenceRe.ReplaceAllStringFunc(text, func(m string) string {
		groups := fenceRe.FindStringSubmatch(m)
		payload := strings.TrimRightFunc(groups[2], unicode.IsSpace)
		return "@code " + groups[1] + "\n" + payload + "\n@end"
	})
}
