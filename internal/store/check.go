package store

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"

	"github.com/code198x/devenv/internal/system"
)

//go:embed schema.cue
var schemaCUE string

// Issue codes reported by Validate and Check.
const (
	IssueSchema    = "E201" // Config does not match schema.cue
	IssueDuplicate = "E202" // Same id used more than once
	IssueUnsorted  = "E203" // Systems not in id order
	IssueDerived   = "E204" // Command fields do not match the file extension
)

// Issue is a single problem found in a config.
type Issue struct {
	Code    string `json:"code"`
	System  string `json:"system,omitempty"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.System != "" {
		return fmt.Sprintf("%s: %s: %s", i.Code, i.System, i.Message)
	}
	return fmt.Sprintf("%s: %s", i.Code, i.Message)
}

// Validate checks raw config data against the embedded CUE schema.
// The error return is for schema compilation failures only.
func Validate(data []byte, filename string) ([]Issue, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	doc := ctx.CompileBytes(data, cue.Filename(filename))
	if err := doc.Err(); err != nil {
		return cueIssues(err), nil
	}

	if err := schema.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return cueIssues(err), nil
	}
	return nil, nil
}

func cueIssues(err error) []Issue {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return []Issue{{Code: IssueSchema, Message: err.Error()}}
	}

	issues := make([]Issue, 0, len(errs))
	for _, e := range errs {
		issues = append(issues, Issue{Code: IssueSchema, Message: e.Error()})
	}
	return issues
}

// Check verifies the invariants every config must hold:
// unique ids, id order, and command fields derived from the extension.
func (s *Store) Check() []Issue {
	var issues []Issue

	seen := make(map[string]bool, len(s.Systems))
	for _, rec := range s.Systems {
		if seen[rec.ID] {
			issues = append(issues, Issue{
				Code:    IssueDuplicate,
				System:  rec.ID,
				Message: "id is used by more than one system",
			})
		}
		seen[rec.ID] = true
	}

	for i := 1; i < len(s.Systems); i++ {
		prev, cur := s.Systems[i-1].ID, s.Systems[i].ID
		if CompareIDs(prev, cur) > 0 {
			issues = append(issues, Issue{
				Code:    IssueUnsorted,
				System:  cur,
				Message: fmt.Sprintf("listed after %q", prev),
			})
		}
	}

	for _, rec := range s.Systems {
		issues = append(issues, checkDerived(rec)...)
	}

	return issues
}

func checkDerived(rec system.Record) []Issue {
	want := system.Derive(rec.FileExtension)
	got := rec.Derived()

	var issues []Issue
	mismatch := func(field, have, expected string) {
		if have != expected {
			issues = append(issues, Issue{
				Code:    IssueDerived,
				System:  rec.ID,
				Message: fmt.Sprintf("%s is %q, want %q", field, have, expected),
			})
		}
	}
	mismatch("test_command", got.TestCommand, want.TestCommand)
	mismatch("test_output", got.TestOutput, want.TestOutput)
	mismatch("verify_command", got.VerifyCommand, want.VerifyCommand)
	mismatch("verify_output", got.VerifyOutput, want.VerifyOutput)
	return issues
}
