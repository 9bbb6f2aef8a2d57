package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sozercan/tour-guide/internal/catalog"
	"github.com/sozercan/tour-guide/internal/i18n"
	"github.com/sozercan/tour-guide/internal/logging"
)

var (
	langFlag    string
	catalogPath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "tourctl",
	Short: "Inspect the tour catalog and try out recommendations",
	Long: `tourctl works against the same catalog and model configuration as the server.

Example usage:
  tourctl tours --lang en                      # List every tour in English
  tourctl tours --category stay                # List overnight stays
  tourctl recommend "a calm day with my kids"  # Ask the model for one tour`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if verbose {
			level = "debug"
		}
		logging.New(os.Stderr, level, "text")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&langFlag, "lang", "l", string(i18n.Default), "display language (es or en)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog YAML file (default is the embedded catalog)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(toursCmd)
	rootCmd.AddCommand(recommendCmd)
}

func loadCatalog() (*catalog.Catalog, error) {
	if catalogPath == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(catalogPath)
}
