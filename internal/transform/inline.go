// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import "regexp"

// spanRule rewrites one inline link or image form. Rules carry either an
// expansion template or a rewrite func for forms whose output depends on
// which optional groups matched.
type spanRule struct {
	re   *regexp.Regexp
	tmpl string
	fn   func(groups []string) string
}

// spanRules is evaluated top-down over the whole document, each rule
// consuming the previous rule's output. Order is load-bearing: image
// spans are a syntactic superset of link spans and must be rewritten
// first or the link rules would partially consume them. All patterns
// except the reference definition stay within a single line.
var spanRules = []spanRule{
	// ![alt](url "title") — the quoted title has no Neorg slot and is dropped.
	{re: regexp.MustCompile(`!\[([^\]\n]*)\]\(([^)"\n]+)[ \t]+"([^"\n]*)"\)`), tmpl: "{image:$2}[$1]"},
	// ![alt](url)
	{re: regexp.MustCompile(`!\[([^\]\n]*)\]\(([^)\n]+)\)`), tmpl: "{image:$2}[$1]"},
	// ![alt][ref]
	{re: regexp.MustCompile(`!\[([^\]\n]*)\]\[([^\]\n]*)\]`), tmpl: "{image:$2}[$1]"},
	// [text](url)
	{re: regexp.MustCompile(`\[([^\]\n]+)\]\(([^)\n]+)\)`), tmpl: "{$2}[$1]"},
	// [text][ref] — the ref id is emitted literally, an empty id stays empty.
	{re: regexp.MustCompile(`\[([^\]\n]+)\]\[([^\]\n]*)\]`), tmpl: "{$2}[$1]"},
	// [[target]] — Obsidian wiki link, target kept verbatim.
	{re: regexp.MustCompile(`\[\[([^\]\n]+)\]\]`), tmpl: "{:$1.norg:}"},
	// [id]: destination "title" — line-anchored reference definition.
	{re: regexp.MustCompile(`(?m)^\[([^\]\n]+)\]:[ \t]+([^ \t\n]+)(?:[ \t]+"([^"\n]*)")?[ \t]*$`), fn: rewriteRefDef},
	// <http://…> — URL doubles as destination and display text.
	{re: regexp.MustCompile(`<(https?://[^>\s]+)>`), tmpl: "{$1}[$1]"},
}

func rewriteSpans(text string) string {
	for _, r := range spanRules {
		if r.fn != nil {
			re := r.re
			text = re.ReplaceAllStringFunc(text, func(m string) string {
				return r.fn(re.FindStringSubmatch(m))
			})
			continue
		}
		text = r.re.ReplaceAllString(text, r.tmpl)
	}
	return text
}

// rewriteRefDef emits "@id destination title", omitting the title field
// entirely (no trailing space) when the definition carries none.
func rewriteRefDef(groups []string) string {
	if groups[3] == "" {
		return "@" + groups[1] + " " + groups[2]
	}
	return "@" + groups[1] + " " + groups[2] + " " + groups[3]
}
