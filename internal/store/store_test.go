package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code198x/devenv/internal/system"
)

const atariConfig = `{
  "systems": [
    {
      "id": "atari-2600",
      "name": "Atari 2600",
      "assembler": "dasm",
      "assembler_name": "DASM",
      "test_command": "-o test.bin test.asm",
      "test_output": "test.bin",
      "verify_command": "-o verify.bin test.asm",
      "verify_output": "verify.bin",
      "file_extension": ".bin",
      "description": "Atari 2600 VCS <NTSC & PAL>"
    }
  ],
  "docker": {
    "registry": "code198x"
  }
}
`

// writeConfig writes content to a systems-config.json in a temp directory.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func ids(s *Store) []string {
	out := make([]string, len(s.Systems))
	for i, rec := range s.Systems {
		out[i] = rec.ID
	}
	return out
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, atariConfig)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())
	require.Len(t, s.Systems, 1)
	assert.Equal(t, "atari-2600", s.Systems[0].ID)
	assert.Equal(t, "DASM", s.Systems[0].AssemblerName)
	assert.True(t, s.Contains("atari-2600"))
	assert.False(t, s.Contains("commodore-64"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"malformed", `{"systems": [`, nil},
		{"not an object", `[]`, nil},
		{"no systems", `{"version": 1}`, ErrNoSystems},
		{"systems not array", `{"systems": {}}`, ErrNoSystems},
		{"systems null", `{"systems": null}`, ErrNoSystems},
		{"system not object", `{"systems": ["atari-2600"]}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestMarshal_Idempotent(t *testing.T) {
	s, err := Parse([]byte(atariConfig))
	require.NoError(t, err)

	out, err := s.Marshal()
	require.NoError(t, err)
	assert.Equal(t, atariConfig, string(out), "unmodified config must re-serialize byte for byte")

	again, err := Parse(out)
	require.NoError(t, err)
	out2, err := again.Marshal()
	require.NoError(t, err)
	assert.Equal(t, out, out2)
}

func TestMarshal_ReindentsAndKeepsSiblings(t *testing.T) {
	s, err := Parse([]byte(`{"version":1,"systems":[],"notes":{"b":1,"a":2}}`))
	require.NoError(t, err)

	out, err := s.Marshal()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"version\": 1,\n  \"systems\": [],\n  \"notes\": {\n    \"b\": 1,\n    \"a\": 2\n  }\n}\n", string(out))
}

func TestAdd_SortsByID(t *testing.T) {
	s, err := Parse([]byte(atariConfig))
	require.NoError(t, err)

	require.NoError(t, s.Add(system.New(system.Info{ID: "zx-spectrum", FileExtension: ".tap"})))
	require.NoError(t, s.Add(system.New(system.Info{ID: "commodore-64", FileExtension: ".prg"})))
	require.NoError(t, s.Add(system.New(system.Info{ID: "amiga-500", FileExtension: ".adf"})))

	assert.Equal(t, []string{"amiga-500", "atari-2600", "commodore-64", "zx-spectrum"}, ids(s))
	assert.True(t, s.IsSorted())
}

func TestAdd_Duplicate(t *testing.T) {
	s, err := Parse([]byte(atariConfig))
	require.NoError(t, err)

	err = s.Add(system.New(system.Info{ID: "atari-2600"}))
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Len(t, s.Systems, 1)
}

func TestSort_LocaleAware(t *testing.T) {
	s := &Store{Systems: []system.Record{
		{ID: "zx-spectrum"},
		{ID: "éclair"},
		{ID: "amstrad-cpc"},
	}}
	assert.False(t, s.IsSorted())

	s.Sort()

	// Byte order would put "éclair" last.
	assert.Equal(t, []string{"amstrad-cpc", "éclair", "zx-spectrum"}, ids(s))
}

func TestSort_Stable(t *testing.T) {
	s := &Store{Systems: []system.Record{
		{ID: "nes", Name: "first"},
		{ID: "amiga"},
		{ID: "nes", Name: "second"},
	}}

	s.Sort()

	require.Len(t, s.Systems, 3)
	assert.Equal(t, "first", s.Systems[1].Name)
	assert.Equal(t, "second", s.Systems[2].Name)
}

func TestSave_RoundTrip(t *testing.T) {
	path := writeConfig(t, atariConfig)

	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.Add(system.New(system.Info{
		ID:            "commodore-64",
		Name:          "Commodore 64",
		Assembler:     "acme",
		AssemblerName: "ACME",
		CPU:           "6502",
		FileExtension: ".prg",
		Description:   "Commodore 64 home computer",
	})))
	require.NoError(t, s.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"atari-2600", "commodore-64"}, ids(reloaded))
	assert.Equal(t, "-o test.prg test.asm", reloaded.Systems[1].TestCommand)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"registry": "code198x"`)
	assert.Contains(t, string(data), "<NTSC & PAL>")
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestSave_NoPath(t *testing.T) {
	s, err := Parse([]byte(atariConfig))
	require.NoError(t, err)
	assert.Error(t, s.Save())
}
