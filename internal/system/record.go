package system

import (
	"encoding/json"
	"fmt"

	"github.com/code198x/devenv/internal/ordered"
)

// TestSource is the assembly file every system's image is tested against.
const TestSource = "test.asm"

// Info is the operator-supplied description of a new system.
type Info struct {
	ID            string
	Name          string
	Assembler     string
	AssemblerName string
	CPU           string
	FileExtension string
	Description   string
}

// Family returns the CPU family of the system.
func (i Info) Family() Family {
	return ClassifyCPU(i.CPU)
}

// Derived holds the command fields computed from a file extension.
type Derived struct {
	TestCommand   string
	TestOutput    string
	VerifyCommand string
	VerifyOutput  string
}

// Derive computes the test and verify fields for the given output extension.
func Derive(ext string) Derived {
	return Derived{
		TestCommand:   fmt.Sprintf("-o test%s %s", ext, TestSource),
		TestOutput:    "test" + ext,
		VerifyCommand: fmt.Sprintf("-o verify%s %s", ext, TestSource),
		VerifyOutput:  "verify" + ext,
	}
}

// Record is one entry of the systems list.
type Record struct {
	ID            string
	Name          string
	Assembler     string
	AssemblerName string
	CPU           string
	TestCommand   string
	TestOutput    string
	VerifyCommand string
	VerifyOutput  string
	FileExtension string
	Description   string

	// raw is the object as read from disk; nil for records built by New.
	raw ordered.Object
}

// Keys in the order new records are written.
var recordKeys = []string{
	"id",
	"name",
	"assembler",
	"assembler_name",
	"cpu",
	"test_command",
	"test_output",
	"verify_command",
	"verify_output",
	"file_extension",
	"description",
}

// New builds a record from operator input.
func New(info Info) Record {
	d := Derive(info.FileExtension)
	return Record{
		ID:            info.ID,
		Name:          info.Name,
		Assembler:     info.Assembler,
		AssemblerName: info.AssemblerName,
		CPU:           info.CPU,
		TestCommand:   d.TestCommand,
		TestOutput:    d.TestOutput,
		VerifyCommand: d.VerifyCommand,
		VerifyOutput:  d.VerifyOutput,
		FileExtension: info.FileExtension,
		Description:   info.Description,
	}
}

// Derived returns the record's command fields as stored.
func (r Record) Derived() Derived {
	return Derived{
		TestCommand:   r.TestCommand,
		TestOutput:    r.TestOutput,
		VerifyCommand: r.VerifyCommand,
		VerifyOutput:  r.VerifyOutput,
	}
}

// Family returns the CPU family recorded for the system.
func (r Record) Family() Family {
	return ClassifyCPU(r.CPU)
}

// Keys returns the record's JSON keys in the order they will be written.
func (r Record) Keys() []string {
	if r.raw == nil {
		return append([]string(nil), recordKeys...)
	}
	return r.raw.Keys()
}

func (r *Record) field(key string) *string {
	switch key {
	case "id":
		return &r.ID
	case "name":
		return &r.Name
	case "assembler":
		return &r.Assembler
	case "assembler_name":
		return &r.AssemblerName
	case "cpu":
		return &r.CPU
	case "test_command":
		return &r.TestCommand
	case "test_output":
		return &r.TestOutput
	case "verify_command":
		return &r.VerifyCommand
	case "verify_output":
		return &r.VerifyOutput
	case "file_extension":
		return &r.FileExtension
	case "description":
		return &r.Description
	default:
		return nil
	}
}

// UnmarshalJSON reads a record, remembering key order and unknown keys.
// A known key holding something other than a string is kept verbatim and
// leaves the typed field empty.
func (r *Record) UnmarshalJSON(data []byte) error {
	obj, err := ordered.Decode(data)
	if err != nil {
		return err
	}

	*r = Record{raw: obj}
	for _, m := range obj {
		p := r.field(m.Key)
		if p == nil || !isString(m.Value) {
			continue
		}
		if err := json.Unmarshal(m.Value, p); err != nil {
			return fmt.Errorf("field %q: %w", m.Key, err)
		}
	}
	return nil
}

// MarshalJSON writes the record as compact JSON.
// Records read from disk keep their key order; known fields set since then
// and missing from the source are appended when non-empty.
func (r Record) MarshalJSON() ([]byte, error) {
	var obj ordered.Object

	if r.raw == nil {
		for _, key := range recordKeys {
			if err := setString(&obj, key, *r.field(key)); err != nil {
				return nil, err
			}
		}
		return obj.MarshalJSON()
	}

	seen := make(map[string]bool, len(r.raw))
	for _, m := range r.raw {
		seen[m.Key] = true
		p := r.field(m.Key)
		if p == nil || !isString(m.Value) {
			obj = append(obj, m)
			continue
		}
		if err := setString(&obj, m.Key, *p); err != nil {
			return nil, err
		}
	}
	for _, key := range recordKeys {
		if v := *r.field(key); !seen[key] && v != "" {
			if err := setString(&obj, key, v); err != nil {
				return nil, err
			}
		}
	}
	return obj.MarshalJSON()
}

func setString(obj *ordered.Object, key, value string) error {
	b, err := ordered.Marshal(value)
	if err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	obj.Set(key, b)
	return nil
}

func isString(v json.RawMessage) bool {
	return len(v) > 0 && v[0] == '"'
}
