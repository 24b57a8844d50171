package matrix

import (
	"strings"

	"github.com/code198x/devenv/internal/system"
)

// ImageRegistry is the Docker Hub namespace the system images are published under.
const ImageRegistry = "code198x"

// DockerImage returns the published image reference for a system.
func DockerImage(id string) string {
	return ImageRegistry + "/" + id + ":latest"
}

// DockerRun returns the command that runs a system's assembler over the current directory.
func DockerRun(id string) string {
	return "docker run --rm -v $(pwd):/workspace " + DockerImage(id)
}

// Field is one key/value line of a matrix entry.
type Field struct {
	Key   string
	Value string
}

// BuildEntry parameterizes one build job.
type BuildEntry struct {
	System      string `json:"system" yaml:"system"`
	Assembler   string `json:"assembler" yaml:"assembler"`
	TestFile    string `json:"test-file" yaml:"test-file"`
	TestOutput  string `json:"test-output" yaml:"test-output"`
	TestCommand string `json:"test-command" yaml:"test-command"`
}

// Fields returns the entry's lines in output order.
func (e BuildEntry) Fields() []Field {
	return []Field{
		{"system", e.System},
		{"assembler", e.Assembler},
		{"test-file", e.TestFile},
		{"test-output", e.TestOutput},
		{"test-command", e.TestCommand},
	}
}

// VerifyEntry parameterizes one verification job.
type VerifyEntry struct {
	System      string `json:"system" yaml:"system"`
	TestCommand string `json:"test-command" yaml:"test-command"`
	TestOutput  string `json:"test-output" yaml:"test-output"`
}

// Fields returns the entry's lines in output order.
func (e VerifyEntry) Fields() []Field {
	return []Field{
		{"system", e.System},
		{"test-command", e.TestCommand},
		{"test-output", e.TestOutput},
	}
}

// AssemblerCommand describes how to invoke a system's assembler.
type AssemblerCommand struct {
	Command   string `json:"command"`
	Extension string `json:"extension"`
	Docker    string `json:"docker"`
}

// AssemblerEntry pairs a system id with its assembler invocation.
type AssemblerEntry struct {
	ID string
	AssemblerCommand
}

// Build projects the systems into build matrix entries.
func Build(records []system.Record) []BuildEntry {
	entries := make([]BuildEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, BuildEntry{
			System:      rec.ID,
			Assembler:   rec.Assembler,
			TestFile:    system.TestSource,
			TestOutput:  rec.TestOutput,
			TestCommand: rec.TestCommand,
		})
	}
	return entries
}

// Verify projects the systems into verify matrix entries.
func Verify(records []system.Record) []VerifyEntry {
	entries := make([]VerifyEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, VerifyEntry{
			System:      rec.ID,
			TestCommand: rec.VerifyCommand,
			TestOutput:  rec.VerifyOutput,
		})
	}
	return entries
}

// Assemblers projects the systems into per-id assembler invocations.
// A repeated id keeps its first position and takes the later record's values.
func Assemblers(records []system.Record) []AssemblerEntry {
	entries := make([]AssemblerEntry, 0, len(records))
	index := make(map[string]int, len(records))

	for _, rec := range records {
		cmd := AssemblerCommand{
			Command:   strings.Replace(rec.TestCommand, "test.", "", 1),
			Extension: rec.FileExtension,
			Docker:    DockerRun(rec.ID),
		}
		if i, ok := index[rec.ID]; ok {
			entries[i].AssemblerCommand = cmd
			continue
		}
		index[rec.ID] = len(entries)
		entries = append(entries, AssemblerEntry{ID: rec.ID, AssemblerCommand: cmd})
	}
	return entries
}
