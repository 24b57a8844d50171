package matrix

import (
	"bytes"
	"fmt"
	"io"

	"github.com/code198x/devenv/internal/ordered"
	"github.com/code198x/devenv/internal/system"
)

// Entry is a matrix row that can be written as a YAML list item.
type Entry interface {
	Fields() []Field
}

// Write renders records in the given mode and writes the result to w in a single call.
func Write(w io.Writer, mode Mode, records []system.Record) error {
	var buf bytes.Buffer

	var err error
	switch mode {
	case ModeBuild:
		writeList(&buf, "Build", entries(Build(records)))
	case ModeVerify:
		writeList(&buf, "Verify", entries(Verify(records)))
	case ModeTable:
		writeTable(&buf, records)
	case ModeJSON:
		err = writeJSON(&buf, Build(records))
	case ModeAssemblers:
		err = writeAssemblers(&buf, Assemblers(records))
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
	}
	if err != nil {
		return err
	}

	_, err = w.Write(buf.Bytes())
	return err
}

func entries[E Entry](in []E) []Entry {
	out := make([]Entry, len(in))
	for i, e := range in {
		out[i] = e
	}
	return out
}

// writeList writes entries as a matrix include list. The first field of each
// entry opens the list item; a blank line follows every entry.
func writeList(buf *bytes.Buffer, label string, list []Entry) {
	fmt.Fprintf(buf, "# %s matrix configuration\n", label)
	buf.WriteString("include:\n")

	for _, e := range list {
		fields := e.Fields()
		if len(fields) == 0 {
			continue
		}
		fmt.Fprintf(buf, "  - %s: %s\n", fields[0].Key, fields[0].Value)
		for _, f := range fields[1:] {
			fmt.Fprintf(buf, "    %s: %s\n", f.Key, f.Value)
		}
		buf.WriteByte('\n')
	}
}

func writeTable(buf *bytes.Buffer, records []system.Record) {
	buf.WriteString("| System | Docker Image | Pull Command |\n")
	buf.WriteString("|--------|--------------|--------------|\n")

	for _, rec := range records {
		image := DockerImage(rec.ID)
		fmt.Fprintf(buf, "| %s | `%s` | `docker pull %s` |\n", rec.Name, image, image)
	}
}

type buildMatrix struct {
	Include []BuildEntry `json:"include"`
}

func writeJSON(buf *bytes.Buffer, build []BuildEntry) error {
	if build == nil {
		build = []BuildEntry{}
	}
	data, err := ordered.MarshalIndent(buildMatrix{Include: build})
	if err != nil {
		return fmt.Errorf("encoding build matrix: %w", err)
	}
	buf.Write(data)
	buf.WriteByte('\n')
	return nil
}

func writeAssemblers(buf *bytes.Buffer, list []AssemblerEntry) error {
	obj := make(ordered.Object, 0, len(list))
	for _, e := range list {
		raw, err := ordered.Marshal(e.AssemblerCommand)
		if err != nil {
			return fmt.Errorf("encoding assembler %q: %w", e.ID, err)
		}
		obj.Set(e.ID, raw)
	}

	data, err := ordered.MarshalIndent(obj)
	if err != nil {
		return fmt.Errorf("encoding assemblers: %w", err)
	}

	buf.WriteString("// Assembly commands for each system\n")
	fmt.Fprintf(buf, "const assemblers = %s;\n", data)
	return nil
}
