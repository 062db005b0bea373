// Package cli provides the search command.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/promptlib/internal/models"
)

var (
	searchCategory string
	searchTag      string
)

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "filter by exact category")
	searchCmd.Flags().StringVarP(&searchTag, "tag", "t", "", "filter by exact tag")
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search templates",
	Long:  "Search templates by id, name, description, tags and content. Exact id matches rank first.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		if query == "" && searchCategory == "" && searchTag == "" {
			return errors.New("provide a query, --category or --tag")
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		var results []*models.Template
		switch {
		case searchCategory != "":
			results = store.ByCategory(searchCategory)
		case searchTag != "":
			results = store.ByTag(searchTag)
		default:
			results = store.Search(query)
		}

		if flagJSON {
			return writeJSON(cmd.OutOrStdout(), summarize(results))
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No templates matched.")
			return nil
		}
		fmt.Fprintf(out, "%d templates matched\n\n", len(results))
		return printTemplateList(out, results)
	},
}
