package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/code198x/devenv/internal/config"
	"github.com/code198x/devenv/internal/store"
)

// Error codes for failures before any check runs.
const (
	ErrCodeLoadFailed = "E004" // Config could not be parsed
	ErrCodeNotFound   = "E005" // Config file not readable
)

// CheckResult is the JSON payload of a passing check.
type CheckResult struct {
	File    string `json:"file"`
	Systems int    `json:"systems"`
}

// NewCheckSystemsCommand creates the check-systems command.
func NewCheckSystemsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "check-systems",
		Short: "Check the systems config for schema and consistency problems",
		Long: `Check the systems config against its schema and invariants.

Every system must carry the required string fields, ids must be unique
kebab-case and sorted, and the test and verify command fields must match
the system's file extension.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Main prints the error
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(format) {
				return fmt.Errorf("invalid format %q: must be one of %v", format, ValidFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckSystems(cmd, format)
		},
	}

	config.AddFlags(cmd.Flags())
	cmd.Flags().StringVar(&format, "format", "text", "output format (json|text)")

	return cmd
}

func runCheckSystems(cmd *cobra.Command, format string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	out := newFormatter(cmd, settings, format)

	path := settings.ConfigPath()
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		_ = out.Error(ErrCodeNotFound, fmt.Sprintf("reading %s: %v", path, err), nil)
		return WrapExitError(ExitFailure, ErrCodeNotFound, err)
	}

	issues, err := store.Validate(data, name)
	if err != nil {
		return err
	}
	out.VerboseLog("Schema check: %d issue(s)", len(issues))

	s, parseErr := store.Parse(data)
	switch {
	case parseErr == nil:
		issues = append(issues, s.Check()...)
	case len(issues) == 0:
		issues = append(issues, store.Issue{Code: ErrCodeLoadFailed, Message: parseErr.Error()})
	}

	if len(issues) > 0 {
		return outputIssues(out, name, issues)
	}

	if out.Format == "json" {
		return out.Success(CheckResult{File: name, Systems: len(s.Systems)})
	}
	return out.Success(fmt.Sprintf("✓ %s: %d system(s) consistent", name, len(s.Systems)))
}

// outputIssues reports every issue and returns the failure exit error.
func outputIssues(out *OutputFormatter, name string, issues []store.Issue) error {
	summary := fmt.Sprintf("%s: %d issue(s) found", name, len(issues))

	if out.Format == "json" {
		if err := out.Error(issues[0].Code, summary, issues); err != nil {
			return err
		}
		return NewExitError(ExitFailure, summary)
	}

	fmt.Fprintf(out.Writer, "✗ %s\n\n", summary)
	for _, issue := range issues {
		fmt.Fprintf(out.Writer, "  %s\n", issue)
	}
	return NewExitError(ExitFailure, summary)
}
