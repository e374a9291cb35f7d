// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"strings"

	"go.yaml.in/yaml/v3"
)

// splitFrontmatter detects a YAML frontmatter block at the very start of
// the document: an opening "---" line, then payload lines, then a "---"
// or "..." delimiter line. The payload must parse as a non-empty YAML
// mapping; anything else is not treated as frontmatter and flows through
// the normal passes. Returned meta keeps the payload lines verbatim,
// each with its terminator.
func splitFrontmatter(doc string) (meta, rest string, ok bool) {
	if !strings.HasPrefix(doc, "---\n") {
		return "", "", false
	}

	body := doc[len("---\n"):]
	offset := 0
	for offset < len(body) {
		lineEnd := strings.IndexByte(body[offset:], '\n')
		var line string
		next := len(body)
		if lineEnd >= 0 {
			line = body[offset : offset+lineEnd]
			next = offset + lineEnd + 1
		} else {
			line = body[offset:]
		}

		if line == "---" || line == "..." {
			meta = body[:offset]
			rest = body[next:]
			var m map[string]any
			if err := yaml.Unmarshal([]byte(meta), &m); err != nil || len(m) == 0 {
				return "", "", false
			}
			return meta, rest, true
		}
		offset = next
	}
	return "", "", false
}
