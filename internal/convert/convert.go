// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the batch Markdown-to-Neorg conversion
// pipeline: output path resolution, per-file read/transform/write, and
// batch accounting.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/md2norg/internal/journal"
	"github.com/pdiddy/md2norg/pkg/types"
)

// Transformer rewrites one document's text. The production
// implementation is transform.Transform; tests substitute fakes.
type Transformer func(doc string) string

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Pipeline converts files one at a time. Journal may be nil, in which
// case nothing is recorded and Incremental has no effect.
type Pipeline struct {
	Transform   Transformer
	Journal     *journal.Store
	RunID       string
	Incremental bool
	Replace     bool
}

// OutputPath computes where the converted file is written: a sibling
// with the Neorg extension, or the mirrored path under cfg.OutputDir
// when one is configured.
func OutputPath(srcPath string, cfg types.ConvertConfig) (string, error) {
	if cfg.OutputDir == "" {
		return replaceExt(srcPath), nil
	}
	rel, err := filepath.Rel(cfg.InputDir, srcPath)
	if err != nil {
		return "", fmt.Errorf("resolving %s under %s: %w", srcPath, cfg.InputDir, err)
	}
	return replaceExt(filepath.Join(cfg.OutputDir, rel)), nil
}

func replaceExt(p string) string {
	return strings.TrimSuffix(p, filepath.Ext(p)) + types.NorgExt
}

// ConvertFile converts a single file, writing the result to outPath and
// creating intermediate directories as needed. Per-file status goes to
// w; a failure is reported, not returned, so the batch can continue.
func (p *Pipeline) ConvertFile(srcPath, outPath string, w io.Writer) types.ConversionStatus {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", srcPath, err)
		return types.ConversionFailed
	}

	sum := journal.Checksum(data)
	if p.Incremental && p.Journal != nil {
		seen, err := p.Journal.Seen(srcPath, sum)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", srcPath, err)
			return types.ConversionFailed
		}
		if seen {
			fmt.Fprintf(w, "skipped: %s (unchanged)\n", srcPath)
			return types.ConversionSkipped
		}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", srcPath, err)
		return types.ConversionFailed
	}

	converted := p.Transform(string(data))
	if err := os.WriteFile(outPath, []byte(converted), 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", srcPath, err)
		return types.ConversionFailed
	}

	if p.Replace && srcPath != outPath {
		if err := os.Remove(srcPath); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", srcPath, err)
			return types.ConversionFailed
		}
	}

	if p.Journal != nil {
		err := p.Journal.Record(types.JournalEntry{
			SourcePath:  srcPath,
			Checksum:    sum,
			OutputPath:  outPath,
			RunID:       p.RunID,
			ConvertedAt: time.Now().UTC(),
		})
		if err != nil {
			fmt.Fprintf(w, "warning: %s (%v)\n", srcPath, err)
		}
	}

	fmt.Fprintf(w, "converted: %s -> %s\n", srcPath, outPath)
	return types.ConversionDone
}

// ConvertBatch processes files through the pipeline, printing per-file
// status to w and returning a summary.
func (p *Pipeline) ConvertBatch(cfg types.ConvertConfig, files []string, w io.Writer) BatchResult {
	var result BatchResult
	for _, f := range files {
		outPath, err := OutputPath(f, cfg)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", f, err)
			result.Failed++
			continue
		}
		switch p.ConvertFile(f, outPath, w) {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionSkipped:
			result.Skipped++
		case types.ConversionFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}
