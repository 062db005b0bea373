// Package cli provides the add, update and remove commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	addName        string
	addCategory    string
	addTags        string
	addDescription string
	addTemplate    string

	updateTemplate string
)

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(removeCmd)

	addCmd.Flags().StringVarP(&addName, "name", "n", "", "display name (required)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "other", "category")
	addCmd.Flags().StringVarP(&addTags, "tags", "t", "", "comma-separated tags")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "short description")
	addCmd.Flags().StringVar(&addTemplate, "template", "", "template text (or pipe via stdin)")
	_ = addCmd.MarkFlagRequired("name")

	updateCmd.Flags().StringVar(&updateTemplate, "template", "", "new template text (or pipe via stdin)")
}

var addCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add a new template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readTemplateInput(addTemplate)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		tmpl, err := store.Create(args[0], addName, addCategory, splitTags(addTags), content, addDescription)
		if err != nil {
			return err
		}

		if flagJSON {
			return writeJSON(cmd.OutOrStdout(), tmpl)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Added %q\n", styled(styleOK, "ok"), tmpl.ID)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Append a new version to a template",
	Long:  "Append a new version with the given content and make it current. Earlier versions are kept.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readTemplateInput(updateTemplate)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		tmpl, err := store.Update(args[0], content)
		if err != nil {
			return err
		}

		if flagJSON {
			return writeJSON(cmd.OutOrStdout(), tmpl)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Updated %q (version %d)\n",
			styled(styleOK, "ok"), tmpl.ID, len(tmpl.Versions))
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a template",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		if err := store.Remove(args[0]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s Removed %q\n", styled(styleOK, "ok"), args[0])
		return nil
	},
}

// readTemplateInput returns the provided flag value, or reads piped stdin
// when the flag is empty and stdin is not a terminal.
func readTemplateInput(provided string) (string, error) {
	if provided != "" {
		return provided, nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("provide template content via --template or piped stdin")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	content := strings.TrimRight(string(data), "\n")
	if content == "" {
		return "", errors.New("template content is empty")
	}
	return content, nil
}

func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
