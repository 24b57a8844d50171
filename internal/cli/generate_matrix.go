package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/code198x/devenv/internal/config"
	"github.com/code198x/devenv/internal/matrix"
	"github.com/code198x/devenv/internal/store"
)

// NewGenerateMatrixCommand creates the generate-matrix command.
func NewGenerateMatrixCommand() *cobra.Command {
	modes := make([]string, len(matrix.Modes))
	for i, m := range matrix.Modes {
		modes[i] = string(m)
	}

	cmd := &cobra.Command{
		Use:   "generate-matrix [build|verify|table|json|assemblers]",
		Short: "Generate CI matrices and documentation from the systems config",
		Long: `Generate GitHub Actions workflow matrices, documentation and command maps
from the systems config, keeping the CI pipeline consistent with it.

Modes:
  build       build matrix (YAML include list)
  verify      verification matrix (YAML include list)
  table       Markdown table of Docker images
  json        build matrix as JSON
  assemblers  assembler commands per system (JavaScript)`,
		Args:          cobra.MaximumNArgs(1),
		ValidArgs:     modes,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Main prints the error
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerateMatrix(cmd, args)
		},
	}

	config.AddFlags(cmd.Flags())

	return cmd
}

func runGenerateMatrix(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), matrix.Usage(cmd.Name()))
		return NewExitError(ExitFailure, "no mode given")
	}

	mode, err := matrix.ParseMode(args[0])
	if err != nil {
		return err
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	out := newFormatter(cmd, settings, "text")

	s, err := store.Load(settings.ConfigPath())
	if err != nil {
		return err
	}
	out.VerboseLog("Loaded %d system(s) from %s", len(s.Systems), settings.ConfigPath())
	out.VerboseLog("Mode: %s", mode)

	return matrix.Write(out.Writer, mode, s.Systems)
}
