// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines configuration and result types shared between the
// md2norg CLI and its internal stages.
package types

import "time"

// ConversionStatus indicates the outcome of a single file conversion.
type ConversionStatus string

const (
	ConversionDone    ConversionStatus = "converted"
	ConversionSkipped ConversionStatus = "skipped"
	ConversionFailed  ConversionStatus = "failed"
)

// JournalEntry records one converted file in the journal.
type JournalEntry struct {
	// SourcePath is the Markdown source file, as given to the converter.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// Checksum is the blake3-256 hex digest of the source contents at
	// conversion time.
	Checksum string `json:"checksum" yaml:"checksum"`

	// OutputPath is where the Neorg output was written.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// RunID identifies the batch run that produced this entry.
	RunID string `json:"run_id" yaml:"run_id"`

	// ConvertedAt is the UTC time the conversion completed.
	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`
}
