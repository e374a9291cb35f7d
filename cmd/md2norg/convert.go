// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/md2norg/internal/confirm"
	"github.com/pdiddy/md2norg/internal/convert"
	"github.com/pdiddy/md2norg/internal/journal"
	"github.com/pdiddy/md2norg/internal/transform"
	"github.com/pdiddy/md2norg/internal/walk"
	"github.com/pdiddy/md2norg/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a directory of Markdown files to Neorg",
	Long: `Convert walks the input directory for .md files and writes a .norg
file for each one, either next to the source or mirrored under --output.
With --replace the originals are deleted after conversion, which asks
for confirmation unless --force is given. With --incremental, files
whose content is unchanged since the last run are skipped.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("input", "i", "", "input directory containing markdown files")
	convertCmd.Flags().StringP("output", "o", "", "output directory for converted files (default: next to sources)")
	convertCmd.Flags().BoolP("recursive", "r", false, "process subdirectories recursively")
	convertCmd.Flags().Bool("replace", false, "replace original files (requires confirmation unless --force is used)")
	convertCmd.Flags().BoolP("force", "f", false, "force replacement without confirmation")
	convertCmd.Flags().Bool("incremental", false, "skip files unchanged since their last recorded conversion")
	convertCmd.Flags().String("state-dir", "", "conversion journal directory (default: <input>/.md2norg)")
	convertCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(convertCmd)
}

// convertConfig merges flags with config-file defaults; flags win.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	var cfg types.ConvertConfig
	cfg.InputDir, _ = cmd.Flags().GetString("input")
	cfg.OutputDir, _ = cmd.Flags().GetString("output")
	cfg.Recursive, _ = cmd.Flags().GetBool("recursive")
	cfg.Replace, _ = cmd.Flags().GetBool("replace")
	cfg.Force, _ = cmd.Flags().GetBool("force")
	cfg.Incremental, _ = cmd.Flags().GetBool("incremental")
	cfg.StateDir, _ = cmd.Flags().GetString("state-dir")

	if cfg.OutputDir == "" {
		cfg.OutputDir = viper.GetString("convert.output_dir")
	}
	if !cmd.Flags().Changed("recursive") && viper.IsSet("convert.recursive") {
		cfg.Recursive = viper.GetBool("convert.recursive")
	}
	if !cmd.Flags().Changed("incremental") && viper.IsSet("convert.incremental") {
		cfg.Incremental = viper.GetBool("convert.incremental")
	}
	if cfg.StateDir == "" {
		cfg.StateDir = viper.GetString("convert.state_dir")
	}
	if cfg.StateDir == "" {
		cfg.StateDir = filepath.Join(cfg.InputDir, ".md2norg")
	}
	return cfg
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := convertConfig(cmd)

	if cfg.Replace && !cfg.Force {
		ok, err := confirm.ReplaceOriginals(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Operation cancelled.")
			return nil
		}
	}

	files, err := walk.Markdown(cfg.WalkConfig)
	if err != nil {
		return err
	}

	p := &convert.Pipeline{
		Transform:   transform.Transform,
		RunID:       uuid.New().String(),
		Incremental: cfg.Incremental,
		Replace:     cfg.Replace,
	}
	if cfg.Incremental {
		store, err := journal.Open(types.JournalConfig{StateDir: cfg.StateDir})
		if err != nil {
			return err
		}
		defer store.Close()
		p.Journal = store
	}

	result := p.ConvertBatch(cfg, files, cmd.OutOrStdout())
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}
