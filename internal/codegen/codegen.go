// Package codegen materializes a finalized target registry as a Go
// source unit that is compiled into every executable of the configured
// project.
package codegen

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/mason-build/mason/internal/filesystem"
	"github.com/mason-build/mason/internal/registry"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/mod/modfile"
)

// GeneratedDir is the directory of the generated package, relative to
// the project root.
const GeneratedDir = "internal/buildinfo"

// GeneratedFileName is the name of the generated source file.
const GeneratedFileName = "buildinfo_gen.go"

// sourceTemplate renders the registry as literal initialization of one
// targetinfo.Info value. Entries appear in declaration order, so the
// output is deterministic for an unchanged target set.
const sourceTemplate = `// Code generated by mason; DO NOT EDIT.

// Package buildinfo carries the executable target registry baked into
// this build of the {{ .Namespace }} project.
package buildinfo

import "github.com/mason-build/mason/targetinfo"

// Targets locates the executables of this project and its dependencies,
// from the build tree and the install tree alike.
var Targets = targetinfo.New({{ .Namespace | quote }}, []targetinfo.Entry{
{{- range .Entries }}
	{
		UID:            {{ .UID | quote }},
		ExecutableName: {{ .ExecutableName | quote }},
		BuildDir:       {{ .BuildDir | quote }},
		InstallDir:     {{ .InstallDir | quote }},
	},
{{- end }}
})
`

// Generator renders and writes the generated registry source.
type Generator struct {
	fs   filesystem.FileSystem
	tmpl *template.Template
}

// NewGenerator creates a Generator.
func NewGenerator(fs filesystem.FileSystem) *Generator {
	tmpl := template.Must(template.New(GeneratedFileName).
		Funcs(sprig.TxtFuncMap()).
		Parse(sourceTemplate))

	return &Generator{
		fs:   fs,
		tmpl: tmpl,
	}
}

// Render produces the generated source for a snapshot.
func (g *Generator) Render(snap *registry.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Namespace string
		Entries   []registryEntry
	}{
		Namespace: snap.Namespace,
	}

	for _, e := range snap.Entries() {
		data.Entries = append(data.Entries, registryEntry{
			UID:            e.UID,
			ExecutableName: e.ExecutableName,
			BuildDir:       e.BuildDir,
			InstallDir:     e.InstallDir,
		})
	}

	if err := g.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render registry source: %w", err)
	}
	return buf.Bytes(), nil
}

type registryEntry struct {
	UID            string
	ExecutableName string
	BuildDir       string
	InstallDir     string
}

// Write renders the snapshot into the project's generated package,
// replacing any previous generation. The file is written to a temporary
// sibling first and moved into place, so a crashed configure run never
// leaves a truncated source file behind.
func (g *Generator) Write(projectRoot string, snap *registry.Snapshot) (string, error) {
	content, err := g.Render(snap)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(projectRoot, GeneratedDir)
	if err := g.fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	suffix, err := gonanoid.Generate("0123456789abcdefghijklmnopqrstuvwxyz", 8)
	if err != nil {
		return "", fmt.Errorf("failed to generate temp file suffix: %w", err)
	}

	path := filepath.Join(dir, GeneratedFileName)
	tmpPath := path + "." + suffix + ".tmp"

	if err := g.fs.WriteFile(tmpPath, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := g.fs.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("failed to move generated source into place: %w", err)
	}

	return path, nil
}

// ImportPath resolves the import path of the generated package from the
// project's go.mod. It returns "" without error for projects that are
// not Go modules; those only get the exported YAML registry.
func ImportPath(fs filesystem.FileSystem, projectRoot string) (string, error) {
	goModPath := filepath.Join(projectRoot, "go.mod")
	if !fs.Exists(goModPath) {
		return "", nil
	}

	data, err := fs.ReadFile(goModPath)
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}

	modFile, err := modfile.Parse(goModPath, data, nil)
	if err != nil {
		return "", fmt.Errorf("failed to parse go.mod: %w", err)
	}

	return modFile.Module.Mod.Path + "/" + GeneratedDir, nil
}
