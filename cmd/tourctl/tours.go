package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sozercan/tour-guide/internal/catalog"
	"github.com/sozercan/tour-guide/internal/i18n"
)

var categoryFlag string

var toursCmd = &cobra.Command{
	Use:   "tours",
	Short: "List tours in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := i18n.Parse(langFlag)
		if err != nil {
			return err
		}
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		tours, err := cat.Filter(lang, categoryFlag)
		if err != nil {
			return err
		}
		printTours(cmd.OutOrStdout(), tours)
		return nil
	},
}

func init() {
	toursCmd.Flags().StringVarP(&categoryFlag, "category", "c", catalog.CategoryAll, "category key (all, daytrip, booking, stay)")
}

func printTours(w io.Writer, tours []catalog.Tour) {
	for _, t := range tours {
		fmt.Fprintf(w, "%-10s %-10s %s\n", t.ID, t.Category, t.Title)
		if t.Legend != "" {
			fmt.Fprintf(w, "%-21s %s\n", "", t.Legend)
		}
		if len(t.Details.Includes) > 0 {
			fmt.Fprintf(w, "%-21s + %s\n", "", strings.Join(t.Details.Includes, ", "))
		}
	}
}
