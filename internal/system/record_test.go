package system

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code198x/devenv/internal/ordered"
)

func commodore64() Info {
	return Info{
		ID:            "commodore-64",
		Name:          "Commodore 64",
		Assembler:     "acme",
		AssemblerName: "ACME",
		CPU:           "6502",
		FileExtension: ".prg",
		Description:   "Commodore 64 home computer",
	}
}

func TestDerive(t *testing.T) {
	d := Derive(".prg")
	assert.Equal(t, "-o test.prg test.asm", d.TestCommand)
	assert.Equal(t, "test.prg", d.TestOutput)
	assert.Equal(t, "-o verify.prg test.asm", d.VerifyCommand)
	assert.Equal(t, "verify.prg", d.VerifyOutput)
}

func TestNew(t *testing.T) {
	rec := New(commodore64())

	assert.Equal(t, "commodore-64", rec.ID)
	assert.Equal(t, "Commodore 64", rec.Name)
	assert.Equal(t, "acme", rec.Assembler)
	assert.Equal(t, "ACME", rec.AssemblerName)
	assert.Equal(t, "6502", rec.CPU)
	assert.Equal(t, ".prg", rec.FileExtension)
	assert.Equal(t, Derive(".prg"), rec.Derived())
	assert.Equal(t, Family6502, rec.Family())
}

func TestNew_EmptyInputAccepted(t *testing.T) {
	rec := New(Info{})

	assert.Empty(t, rec.ID)
	assert.Equal(t, "-o test test.asm", rec.TestCommand)
	assert.Equal(t, "verify", rec.VerifyOutput)
}

func TestMarshal_NewRecordKeyOrder(t *testing.T) {
	rec := New(commodore64())

	data, err := ordered.Marshal(rec)
	require.NoError(t, err)

	obj, err := ordered.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"id", "name", "assembler", "assembler_name", "cpu",
		"test_command", "test_output", "verify_command", "verify_output",
		"file_extension", "description",
	}, obj.Keys())
	assert.Equal(t, rec.Keys(), obj.Keys())
}

func TestUnmarshal_PreservesOrderAndUnknownKeys(t *testing.T) {
	input := `{"name":"Atari 2600","id":"atari-2600","assembler":"dasm","notes":{"tv":"NTSC"},"file_extension":".bin"}`

	var rec Record
	require.NoError(t, json.Unmarshal([]byte(input), &rec))
	assert.Equal(t, "atari-2600", rec.ID)
	assert.Equal(t, "Atari 2600", rec.Name)
	assert.Equal(t, ".bin", rec.FileExtension)
	assert.Empty(t, rec.CPU)

	out, err := ordered.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestUnmarshal_NonStringKnownFieldKeptVerbatim(t *testing.T) {
	input := `{"id":"odd","test_output":null,"file_extension":7}`

	var rec Record
	require.NoError(t, json.Unmarshal([]byte(input), &rec))
	assert.Empty(t, rec.TestOutput)
	assert.Empty(t, rec.FileExtension)

	out, err := ordered.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestMarshal_EditedFieldsOnLoadedRecord(t *testing.T) {
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(`{"id":"nes","name":"NES"}`), &rec))

	rec.Name = "Nintendo Entertainment System"
	rec.CPU = "6502"

	out, err := ordered.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"nes","name":"Nintendo Entertainment System","cpu":"6502"}`, string(out))
}

func TestUnmarshal_NotAnObject(t *testing.T) {
	var rec Record
	assert.Error(t, json.Unmarshal([]byte(`"atari-2600"`), &rec))
}
