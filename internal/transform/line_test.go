// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import "testing"

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want lineClass
	}{
		{"h1", "# Title", lineClass{kind: kindHeading, level: 1, text: "Title"}},
		{"h3", "### Sub", lineClass{kind: kindHeading, level: 3, text: "Sub"}},
		{"hash without space", "#nospace", lineClass{kind: kindPlain, text: "#nospace"}},
		{"open task", "- [ ] buy milk", lineClass{kind: kindTaskOpen, text: "buy milk"}},
		{"done task", "- [x] shipped", lineClass{kind: kindTaskDone, text: "shipped"}},
		{"indented task", "    - [ ] nested", lineClass{kind: kindTaskOpen, indent: "    ", text: "nested"}},
		{"uppercase x is a list", "- [X] shipped", lineClass{kind: kindListItem, text: "[X] shipped"}},
		{"dash list", "- one", lineClass{kind: kindListItem, text: "one"}},
		{"star list", "* two", lineClass{kind: kindListItem, text: "two"}},
		{"plus list", "+ three", lineClass{kind: kindListItem, text: "three"}},
		{"tab indent kept", "\t- four", lineClass{kind: kindListItem, indent: "\t", text: "four"}},
		{"bare dash", "-", lineClass{kind: kindPlain, text: "-"}},
		{"rule", "---", lineClass{kind: kindPlain, text: "---"}},
		{"plain", "just text", lineClass{kind: kindPlain, text: "just text"}},
		{"empty", "", lineClass{kind: kindPlain}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyLine(tt.line); got != tt.want {
				t.Errorf("classifyLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestRenderLine(t *testing.T) {
	tests := []struct {
		name string
		in   lineClass
		want string
	}{
		{"heading", lineClass{kind: kindHeading, level: 2, text: "T"}, "** T"},
		{"open task", lineClass{kind: kindTaskOpen, indent: "  ", text: "t"}, "  -- ( ) t"},
		{"done task", lineClass{kind: kindTaskDone, text: "t"}, "-- (x) t"},
		{"list", lineClass{kind: kindListItem, indent: "\t", text: "t"}, "\t-- t"},
		{"plain", lineClass{kind: kindPlain, text: "as is"}, "as is"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderLine(tt.in); got != tt.want {
				t.Errorf("renderLine(%+v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRewriteLines_EachLineTerminated(t *testing.T) {
	got := rewriteLines("a\nb")
	if got != "a\nb\n" {
		t.Errorf("rewriteLines(%q) = %q, want %q", "a\nb", got, "a\nb\n")
	}
}
