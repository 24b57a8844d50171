// Command check-systems validates systems-config.json against its schema and
// the ordering and derived-field invariants.
package main

import (
	"os"

	"github.com/code198x/devenv/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.NewCheckSystemsCommand(), os.Args[1:]))
}
