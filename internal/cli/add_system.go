package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/code198x/devenv/internal/config"
	"github.com/code198x/devenv/internal/scaffold"
	"github.com/code198x/devenv/internal/store"
	"github.com/code198x/devenv/internal/system"
)

// NewAddSystemCommand creates the interactive add-system command.
func NewAddSystemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-system",
		Short: "Add a new system to the Code198x development environment",
		Long: `Add a new system to the Code198x development environment.

Asks for the system's details on standard input, creates <id>/Dockerfile,
<id>/test.asm and <id>/README.md under the repository root, and adds the
system to the systems config, keeping it sorted by id.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Main prints the error
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddSystem(cmd)
		},
	}

	config.AddFlags(cmd.Flags())

	return cmd
}

func runAddSystem(cmd *cobra.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	out := newFormatter(cmd, settings, "text")

	fmt.Fprintln(out.Writer, "🎮 Add New System to Code198x Development Environment")
	fmt.Fprintln(out.Writer)

	info, err := scaffold.CollectInfo(scaffold.NewPrompter(cmd.InOrStdin(), out.Writer))
	if err != nil {
		return err
	}

	// Nothing is written until the config loads and the id is known to be free.
	configPath := settings.ConfigPath()
	s, err := store.Load(configPath)
	if err != nil {
		return err
	}
	out.VerboseLog("Loaded %d system(s) from %s", len(s.Systems), configPath)

	if s.Contains(info.ID) {
		return fmt.Errorf("%w: %q", store.ErrDuplicateID, info.ID)
	}
	out.VerboseLog("CPU %q uses the %s templates", info.CPU, info.Family())

	fmt.Fprint(out.Writer, "\n📝 Creating system files...\n\n")

	if err := scaffold.Write(settings.Root, info, out.Step); err != nil {
		return err
	}

	if err := s.Add(system.New(info)); err != nil {
		return err
	}
	if err := s.Save(); err != nil {
		return err
	}
	out.Step("Updated " + filepath.Base(configPath))

	printNextSteps(out, info)
	return nil
}

func printNextSteps(out *OutputFormatter, info system.Info) {
	fmt.Fprintf(out.Writer, "\n✅ Successfully added %s!\n\n", info.Name)
	fmt.Fprintln(out.Writer, "Next steps:")
	fmt.Fprintf(out.Writer, "1. Complete the Dockerfile in %s/%s\n", info.ID, scaffold.DockerfileName)
	fmt.Fprintf(out.Writer, "2. Update the test program in %s/%s\n", info.ID, system.TestSource)
	fmt.Fprintf(out.Writer, "3. Build the Docker image: make build-%s\n", info.ID)
	fmt.Fprintf(out.Writer, "4. Test the assembler: make test-%s\n", info.ID)
	fmt.Fprintln(out.Writer, "5. Update the GitHub Actions workflow if needed")
}
