// Package cli provides the export, import and reset commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/promptlib/internal/library"
	"github.com/opencode-ai/promptlib/internal/models"
)

var (
	exportFile string
	importMode string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)

	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "output file (default: stdout)")
	importCmd.Flags().StringVarP(&importMode, "mode", "m", "merge", "import mode: merge or replace")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the library",
	Long:  "Export every template with its full version history. The document is usable directly as a library file.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		doc := store.Export()
		if exportFile == "" {
			return writeJSON(cmd.OutOrStdout(), doc)
		}

		f, err := os.Create(exportFile)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportFile, err)
		}
		defer f.Close()
		if err := writeJSON(f, doc); err != nil {
			return fmt.Errorf("write %s: %w", exportFile, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d templates to %s\n", len(doc.Templates), exportFile)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import templates from an exported document",
	Long: "Import an exported document. In merge mode unknown ids are inserted with their " +
		"history and colliding ids get the incoming latest version appended; replace mode " +
		"discards the current library first.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := library.ParseImportMode(importMode)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		doc, err := models.ParseDocument(data)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		stats, err := store.Import(doc, mode)
		if err != nil {
			return err
		}

		if flagJSON {
			return writeJSON(cmd.OutOrStdout(), stats)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Imported %d templates (%d merged)\n",
			styled(styleOK, "ok"), stats.Added, stats.Merged)
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the library to the builtin catalog",
	Long:  "Discard every template, including custom ones, and re-seed the builtin catalog. Irreversible.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		if err := store.Reset(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s Library reset to %d builtin templates\n",
			styled(styleOK, "ok"), store.Count())
		return nil
	},
}
