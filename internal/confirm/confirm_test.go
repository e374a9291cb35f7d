// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package confirm

import (
	"bytes"
	"strings"
	"testing"
)

func TestReplaceOriginals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase y", "Y\n", true},
		{"padded y", "  y  \n", true},
		{"no", "n\n", false},
		{"yes spelled out", "yes\n", false},
		{"empty line", "\n", false},
		{"eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := ReplaceOriginals(strings.NewReader(tt.input), &out)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ReplaceOriginals(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "replace the original") {
				t.Errorf("prompt missing warning, got %q", out.String())
			}
		})
	}
}
