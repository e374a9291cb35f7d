// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the md2norg CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the md2norg CLI.
var rootCmd = &cobra.Command{
	Use:   "md2norg",
	Short: "Convert Markdown notes to Neorg",
	Long: `md2norg converts directories of Markdown documents into Neorg documents.
It rewrites headings, links, images, list items, task checkboxes, and
fenced code blocks, and understands Obsidian-style [[wiki links]].

The convert subcommand walks an input directory, transforms each .md
file, and writes the result as .norg next to the source or mirrored
under an output directory.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./md2norg.yaml or ~/.config/md2norg/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("md2norg")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "md2norg"))
		}
	}

	viper.SetEnvPrefix("MD2NORG")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
