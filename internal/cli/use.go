// Package cli provides the use command: render a template with variable bindings.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/promptlib/internal/render"
)

var useVars []string

func init() {
	rootCmd.AddCommand(useCmd)
	useCmd.Flags().StringArrayVarP(&useVars, "var", "v", nil, "variable binding: key=value (repeatable)")
}

var useCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Render a template with variables",
	Long:  "Render a template's current version, substituting {{variable}} placeholders with --var bindings.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bindings, err := parseVars(useVars)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		tmpl, err := store.Get(args[0])
		if err != nil {
			return err
		}

		rendered, err := render.Render(tmpl.Current(), bindings)
		if err != nil {
			return err
		}

		if flagJSON {
			return writeJSON(cmd.OutOrStdout(), map[string]string{
				"id":       tmpl.ID,
				"rendered": rendered,
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	},
}

// parseVars converts repeated key=value flag values into a binding map.
func parseVars(pairs []string) (map[string]string, error) {
	bindings := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --var %q: expected key=value", pair)
		}
		bindings[key] = strings.TrimSpace(value)
	}
	return bindings, nil
}
