package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/code198x/devenv/internal/config"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Main runs cmd with args and returns the process exit code.
// Errors are printed to the command's error stream as "Error: <message>".
func Main(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return GetExitCode(err)
	}
	return ExitSuccess
}

// newFormatter builds the formatter for a command run.
func newFormatter(cmd *cobra.Command, settings config.Settings, format string) *OutputFormatter {
	return &OutputFormatter{
		Format:    format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting output
		Verbose:   settings.Verbose,
	}
}

// loadSettings resolves settings from the command's flags and environment.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	settings, err := config.Load(cmd.Flags())
	if err != nil {
		return config.Settings{}, WrapExitError(ExitFailure, "loading settings", err)
	}
	return settings, nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
