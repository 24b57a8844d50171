// Command add-system interactively adds a new system: it writes the system's Dockerfile,
// test.asm and README.md and registers it in systems-config.json.
package main

import (
	"os"

	"github.com/code198x/devenv/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.NewAddSystemCommand(), os.Args[1:]))
}
