package matrix

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the output shape.
type Mode string

const (
	ModeBuild      Mode = "build"
	ModeVerify     Mode = "verify"
	ModeTable      Mode = "table"
	ModeJSON       Mode = "json"
	ModeAssemblers Mode = "assemblers"
)

// Modes lists every mode in usage order.
var Modes = []Mode{ModeBuild, ModeVerify, ModeTable, ModeJSON, ModeAssemblers}

// ErrUnknownMode is returned by ParseMode for names outside Modes.
var ErrUnknownMode = errors.New("unknown mode")

// ParseMode resolves a command-line mode name. Names are case-sensitive.
func ParseMode(name string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Usage returns the one-line usage for program.
func Usage(program string) string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = string(m)
	}
	return fmt.Sprintf("Usage: %s [%s]", program, strings.Join(names, "|"))
}
