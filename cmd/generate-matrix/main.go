// Command generate-matrix prints CI matrices, the Docker image table or the
// assembler command map derived from systems-config.json.
package main

import (
	"os"

	"github.com/code198x/devenv/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.NewGenerateMatrixCommand(), os.Args[1:]))
}
