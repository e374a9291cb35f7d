// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MarkdownExt is the source file extension the walker selects.
const MarkdownExt = ".md"

// NorgExt is the extension written for converted output files.
const NorgExt = ".norg"

// WalkConfig holds settings for source file enumeration.
type WalkConfig struct {
	// InputDir is the root directory scanned for Markdown files.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// Recursive controls whether subdirectories are scanned. When false
	// only the top level of InputDir is considered.
	Recursive bool `json:"recursive" yaml:"recursive"`
}

// ConvertConfig holds settings for the conversion stage.
type ConvertConfig struct {
	WalkConfig `yaml:",inline"`

	// OutputDir is an optional root that mirrors the input tree. When
	// empty, converted files are written next to their sources.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// Replace removes the original Markdown file after a successful
	// conversion. Requires confirmation unless Force is set.
	Replace bool `json:"replace" yaml:"replace"`

	// Force skips the interactive confirmation for Replace.
	Force bool `json:"force" yaml:"force"`

	// Incremental skips files whose content checksum matches the journal.
	Incremental bool `json:"incremental" yaml:"incremental"`

	// StateDir is the directory holding the conversion journal
	// (default ".md2norg" under the input directory).
	StateDir string `json:"state_dir,omitempty" yaml:"state_dir,omitempty"`
}

// JournalConfig holds settings for the conversion journal.
type JournalConfig struct {
	// StateDir is the directory containing journal.db.
	StateDir string `json:"state_dir" yaml:"state_dir"`
}
