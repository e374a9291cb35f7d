// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package walk enumerates Markdown source files under an input root.
package walk

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/pdiddy/md2norg/pkg/types"
)

// Markdown returns the paths of all regular files under cfg.InputDir
// with the Markdown extension, in lexical walk order. When cfg.Recursive
// is false, subdirectories are not descended into.
func Markdown(cfg types.WalkConfig) ([]string, error) {
	var files []string
	err := filepath.WalkDir(cfg.InputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !cfg.Recursive && path != cfg.InputDir {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if filepath.Ext(path) == types.MarkdownExt {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", cfg.InputDir, err)
	}
	return files, nil
}
