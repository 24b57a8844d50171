package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/code198x/devenv/internal/ordered"
	"github.com/code198x/devenv/internal/system"
)

// DefaultFile is the config file name at the repository root.
const DefaultFile = "systems-config.json"

// SystemsKey is the top-level member holding the systems list.
const SystemsKey = "systems"

var (
	// ErrNoSystems is returned when the config has no "systems" array.
	ErrNoSystems = errors.New(`config has no "systems" array`)
	// ErrDuplicateID is returned by Add when the id is already present.
	ErrDuplicateID = errors.New("system id already exists")
)

// Store is an in-memory copy of the systems config.
type Store struct {
	path    string
	doc     ordered.Object
	Systems []system.Record
}

// Load reads and parses the config at path.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	s.path = path
	return s, nil
}

// Parse decodes config data. The returned store has no path and cannot be saved.
func Parse(data []byte) (*Store, error) {
	doc, err := ordered.Decode(data)
	if err != nil {
		return nil, err
	}

	raw, ok := doc.Get(SystemsKey)
	if !ok || len(raw) == 0 || raw[0] != '[' {
		return nil, ErrNoSystems
	}

	systems := []system.Record{}
	if err := json.Unmarshal(raw, &systems); err != nil {
		return nil, fmt.Errorf("decoding systems: %w", err)
	}

	return &Store{doc: doc, Systems: systems}, nil
}

// Path returns the file the store was loaded from.
func (s *Store) Path() string {
	return s.path
}

// Contains reports whether a system with the given id exists.
func (s *Store) Contains(id string) bool {
	for _, rec := range s.Systems {
		if rec.ID == id {
			return true
		}
	}
	return false
}

// Add appends rec and re-sorts the list.
// Returns ErrDuplicateID if a system with the same id is already present.
func (s *Store) Add(rec system.Record) error {
	if s.Contains(rec.ID) {
		return fmt.Errorf("%w: %q", ErrDuplicateID, rec.ID)
	}
	s.Systems = append(s.Systems, rec)
	s.Sort()
	return nil
}

// Sort orders the systems by id.
func (s *Store) Sort() {
	c := newCollator()
	sort.SliceStable(s.Systems, func(i, j int) bool {
		return c.CompareString(s.Systems[i].ID, s.Systems[j].ID) < 0
	})
}

// IsSorted reports whether the systems are already in id order.
func (s *Store) IsSorted() bool {
	c := newCollator()
	return sort.SliceIsSorted(s.Systems, func(i, j int) bool {
		return c.CompareString(s.Systems[i].ID, s.Systems[j].ID) < 0
	})
}

// CompareIDs compares two ids in store order.
func CompareIDs(a, b string) int {
	return newCollator().CompareString(a, b)
}

func newCollator() *collate.Collator {
	return collate.New(language.Und)
}

// Marshal serializes the config with the current systems list.
func (s *Store) Marshal() ([]byte, error) {
	systems := s.Systems
	if systems == nil {
		systems = []system.Record{}
	}
	raw, err := ordered.Marshal(systems)
	if err != nil {
		return nil, fmt.Errorf("encoding systems: %w", err)
	}

	doc := append(ordered.Object(nil), s.doc...)
	doc.Set(SystemsKey, raw)

	out, err := ordered.MarshalIndent(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return append(out, '\n'), nil
}

// Save writes the config back to the file it was loaded from.
func (s *Store) Save() error {
	if s.path == "" {
		return errors.New("store has no path")
	}

	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
