// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/md2norg/internal/journal"
	"github.com/pdiddy/md2norg/pkg/types"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the conversion journal",
	Long: `Status lists every file recorded in the conversion journal with its
output path and conversion time. The journal is only written by
convert --incremental.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringP("input", "i", "", "input directory whose journal to read")
	statusCmd.Flags().String("state-dir", "", "conversion journal directory (default: <input>/.md2norg)")
	statusCmd.Flags().Bool("json", false, "output entries as JSON")

	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	stateDir, _ := cmd.Flags().GetString("state-dir")
	if stateDir == "" {
		input, _ := cmd.Flags().GetString("input")
		if input == "" {
			return fmt.Errorf("state directory unknown: provide --input or --state-dir")
		}
		stateDir = filepath.Join(input, ".md2norg")
	}

	store, err := journal.Open(types.JournalConfig{StateDir: stateDir})
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List()
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No conversions recorded.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%s)\n",
			e.SourcePath, e.OutputPath, e.ConvertedAt.Format(time.RFC3339))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) recorded.\n", len(entries))
	return nil
}
