package scaffold

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/code198x/devenv/internal/system"
)

// ErrInputClosed is returned when input ends before a question is answered.
var ErrInputClosed = errors.New("input closed before all questions were answered")

// Prompter asks questions on w and reads one-line answers from r.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewPrompter creates a Prompter over the given streams.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// Ask prints question and returns the next line of input, NFC-normalized and
// without its line terminator. Empty answers are returned as-is.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.w, question)

	line, err := p.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading answer: %w", err)
		}
		// A final line without a newline still counts.
		if line == "" {
			return "", ErrInputClosed
		}
	}

	line = strings.TrimRight(line, "\r\n")
	return norm.NFC.String(line), nil
}

// CollectInfo asks for every field of a new system, in order.
func CollectInfo(p *Prompter) (system.Info, error) {
	var info system.Info

	questions := []struct {
		prompt string
		dst    *string
	}{
		{"System ID (e.g., atari-2600): ", &info.ID},
		{"Full Name (e.g., Atari 2600): ", &info.Name},
		{"Assembler (e.g., dasm): ", &info.Assembler},
		{"Assembler Name (e.g., DASM): ", &info.AssemblerName},
		{"CPU Type (e.g., 6502, Z80, 68000): ", &info.CPU},
		{"Output extension (e.g., .bin, .prg, .tap): ", &info.FileExtension},
		{"Description: ", &info.Description},
	}

	for _, q := range questions {
		answer, err := p.Ask(q.prompt)
		if err != nil {
			return system.Info{}, err
		}
		*q.dst = answer
	}

	return info, nil
}
