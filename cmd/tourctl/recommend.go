package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sozercan/tour-guide/internal/config"
	"github.com/sozercan/tour-guide/internal/i18n"
	"github.com/sozercan/tour-guide/internal/llm"
	"github.com/sozercan/tour-guide/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <prompt>",
	Short: "Ask the configured model to pick one tour",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := i18n.Parse(langFlag)
		if err != nil {
			return err
		}
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if catalogPath == "" {
			catalogPath = cfg.Catalog.Path
		}
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		provider, err := llm.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		r := recommend.New(provider, recommend.WithTimeout(cfg.LLM.Timeout), recommend.WithLogger(slog.Default()))

		tours := cat.Tours(lang)
		id, ok := r.Recommend(cmd.Context(), strings.Join(args, " "), tours, lang)
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "no recommendation")
			return nil
		}

		tour, err := cat.Tour(lang, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", tour.ID, tour.Title)
		return nil
	},
}
