package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/code198x/devenv/internal/system"
)

// Generated file names inside a system directory.
const (
	DockerfileName = "Dockerfile"
	ReadmeName     = "README.md"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// File is a generated file relative to the system directory.
type File struct {
	Name    string
	Content []byte
}

type templateData struct {
	system.Info
	BuildTool string
}

// Dockerfile renders the assembler image definition for info.
func Dockerfile(info system.Info) ([]byte, error) {
	return render("Dockerfile.tmpl", info)
}

// TestProgram renders the assembly program used to smoke-test the assembler.
func TestProgram(info system.Info) ([]byte, error) {
	return render(testProgramTemplate(info.Family()), info)
}

// Readme renders the system directory's README.
func Readme(info system.Info) ([]byte, error) {
	return render("README.md.tmpl", info)
}

// Render produces every file of a system directory, in write order.
func Render(info system.Info) ([]File, error) {
	gens := []struct {
		name string
		fn   func(system.Info) ([]byte, error)
	}{
		{DockerfileName, Dockerfile},
		{system.TestSource, TestProgram},
		{ReadmeName, Readme},
	}

	files := make([]File, 0, len(gens))
	for _, g := range gens {
		content, err := g.fn(info)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", g.name, err)
		}
		files = append(files, File{Name: g.name, Content: content})
	}
	return files, nil
}

func render(name string, info system.Info) ([]byte, error) {
	data := templateData{
		Info:      info,
		BuildTool: buildTool(info.Family()),
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func testProgramTemplate(f system.Family) string {
	switch f {
	case system.Family6502:
		return "test.asm.6502.tmpl"
	case system.FamilyZ80:
		return "test.asm.z80.tmpl"
	case system.Family68000:
		return "test.asm.68000.tmpl"
	default:
		return "test.asm.generic.tmpl"
	}
}

// buildTool is the extra apt package the assembler build usually needs.
func buildTool(f system.Family) string {
	if f == system.FamilyZ80 {
		return "cmake"
	}
	return "curl"
}
