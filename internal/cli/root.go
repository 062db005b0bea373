// Package cli implements the promptlib command tree.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opencode-ai/promptlib/internal/config"
	"github.com/opencode-ai/promptlib/internal/library"
	"github.com/opencode-ai/promptlib/internal/models"
	"github.com/opencode-ai/promptlib/internal/render"
)

const version = "0.1.0"

// Exit codes, so scripts can distinguish error classes.
const (
	exitOK         = 0
	exitError      = 1
	exitValidation = 2
	exitNotFound   = 3
	exitIO         = 4
)

var (
	flagLibrary string
	flagJSON    bool
	flagVerbose bool
	flagNoColor bool

	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "promptlib",
	Short:         "Reusable prompt templates for AI agents",
	Long:          "Store, search, tag and render reusable prompt templates from a local library.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		if cmd.Flags().Changed("library") {
			v.Set("library", flagLibrary)
		}
		if flagVerbose {
			v.Set("verbose", true)
		}
		if flagNoColor {
			v.Set("no_color", true)
		}

		loaded, err := config.Load(v)
		if err != nil {
			return err
		}
		cfg = loaded

		level := zerolog.WarnLevel
		if cfg.Verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: cfg.NoColor}).
			Level(level).
			With().Timestamp().Logger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLibrary, "library", "", "path to the library file")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable styled output")
}

// Execute runs the promptlib CLI and returns the process exit code.
func Execute() int {
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}

func openStore() (*library.Store, error) {
	return library.Open(cfg.LibraryPath, logger)
}

// exitCode maps a core failure to the process exit code convention:
// 2 for validation failures, 3 for missing templates, 4 for I/O.
func exitCode(err error) int {
	var missing *render.MissingVariablesError
	var malformed *models.MalformedDocumentError
	var persistence *library.PersistenceError

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, library.ErrNotFound):
		return exitNotFound
	case errors.Is(err, library.ErrDuplicateID), errors.Is(err, library.ErrInvalidID):
		return exitValidation
	case errors.As(err, &missing), errors.As(err, &malformed):
		return exitValidation
	case errors.As(err, &persistence):
		return exitIO
	default:
		return exitError
	}
}
