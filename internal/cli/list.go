// Package cli provides the list, get and tags commands.
package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/promptlib/internal/models"
	"github.com/opencode-ai/promptlib/internal/render"
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(tagsCmd)
}

// templateSummary is the JSON list/search row.
type templateSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		templates := store.List()
		if flagJSON {
			return writeJSON(cmd.OutOrStdout(), summarize(templates))
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", styled(styleHeader, "promptlib v"+version))
		fmt.Fprintf(out, "%d templates available\n\n", len(templates))
		return printTemplateList(out, templates)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		tmpl, err := store.Get(args[0])
		if err != nil {
			return err
		}

		if flagJSON {
			return writeJSON(cmd.OutOrStdout(), tmpl)
		}
		printTemplateDetail(cmd.OutOrStdout(), tmpl)
		return nil
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		tags := store.AllTags()
		if flagJSON {
			return writeJSON(cmd.OutOrStdout(), tags)
		}

		counts := store.TagCounts()
		rows := make([][]string, 0, len(tags))
		for _, tag := range tags {
			rows = append(rows, []string{styled(styleID, tag), strconv.Itoa(counts[tag])})
		}
		return writeTable(cmd.OutOrStdout(), []string{"TAG", "TEMPLATES"}, rows)
	},
}

func summarize(templates []*models.Template) []templateSummary {
	summaries := make([]templateSummary, 0, len(templates))
	for _, tmpl := range templates {
		summaries = append(summaries, templateSummary{
			ID:          tmpl.ID,
			Name:        tmpl.Name,
			Category:    tmpl.Category,
			Tags:        tmpl.Tags,
			Description: tmpl.Description,
		})
	}
	return summaries
}

// printTemplateList groups templates by category with a table per group.
func printTemplateList(out io.Writer, templates []*models.Template) error {
	byCategory := make(map[string][]*models.Template)
	for _, tmpl := range templates {
		byCategory[tmpl.Category] = append(byCategory[tmpl.Category], tmpl)
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		group := byCategory[category]
		sort.Slice(group, func(i, j int) bool { return group[i].ID < group[j].ID })

		fmt.Fprintln(out, styled(styleCategory, category))
		rows := make([][]string, 0, len(group))
		for _, tmpl := range group {
			rows = append(rows, []string{
				"  " + styled(styleID, tmpl.ID),
				tmpl.Name,
				styled(styleDim, truncateTags(tmpl.Tags, 3)),
			})
		}
		if err := writeTable(out, nil, rows); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	return nil
}

func printTemplateDetail(out io.Writer, tmpl *models.Template) {
	fmt.Fprintf(out, "%s (%s)\n", styled(styleHeader, tmpl.Name), styled(styleID, tmpl.ID))
	fmt.Fprintf(out, "Category: %s\n", tmpl.Category)
	if len(tmpl.Tags) > 0 {
		fmt.Fprintf(out, "Tags: %s\n", strings.Join(tmpl.Tags, ", "))
	}
	if tmpl.Description != "" {
		fmt.Fprintf(out, "Description: %s\n", tmpl.Description)
	}
	if vars := render.Variables(tmpl.Current()); len(vars) > 0 {
		fmt.Fprintf(out, "Variables: %s\n", styled(styleVars, strings.Join(vars, ", ")))
	}
	fmt.Fprintf(out, "Versions: %d (current: %d)\n", len(tmpl.Versions), tmpl.CurrentVersion+1)

	separator := styled(styleDim, strings.Repeat("-", 50))
	fmt.Fprintln(out, separator)
	fmt.Fprintln(out, tmpl.Current())
	fmt.Fprintln(out, separator)
}
