// Package scaffold creates the skeleton of a new project: a manifest
// plus the attendant files the normalizer expects to find.
package scaffold

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/adrg/frontmatter"
	"github.com/mason-build/mason/internal/filesystem"
	"github.com/mason-build/mason/internal/models"
)

// ProjectData parameterizes the generated skeleton.
type ProjectData struct {
	Name        string
	Version     string
	Description string
	Vendor      string
}

// Scaffolder renders the project skeleton templates.
type Scaffolder struct {
	fs filesystem.FileSystem
}

// NewScaffolder creates a new Scaffolder
func NewScaffolder(fs filesystem.FileSystem) *Scaffolder {
	return &Scaffolder{fs: fs}
}

// Generate writes the skeleton of a new project into dir. The directory
// must not already contain a manifest.
func (s *Scaffolder) Generate(dir string, data ProjectData) ([]string, error) {
	if err := s.validate(dir, &data); err != nil {
		return nil, err
	}

	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create project directory: %w", err)
	}

	var written []string
	for _, raw := range templates {
		relPath, content, err := render(raw, data)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(dir, relPath)
		if parent := filepath.Dir(path); parent != dir {
			if err := s.fs.MkdirAll(parent, 0755); err != nil {
				return nil, fmt.Errorf("failed to create %s: %w", parent, err)
			}
		}

		if err := s.fs.WriteFile(path, content, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}

	return written, nil
}

func (s *Scaffolder) validate(dir string, data *ProjectData) error {
	if strings.TrimSpace(data.Name) == "" {
		return fmt.Errorf("project name is required")
	}

	if data.Version == "" {
		data.Version = "0.0.0"
	}
	version, err := models.ParseVersion(data.Version)
	if err != nil {
		return fmt.Errorf("invalid project version: %w", err)
	}
	data.Version = version.String()

	manifestPath := filepath.Join(dir, "mason.yaml")
	if s.fs.Exists(manifestPath) {
		return fmt.Errorf("%s already contains a project", dir)
	}

	return nil
}

// render splits one raw template into its target path and rendered body.
func render(raw string, data ProjectData) (string, []byte, error) {
	var meta struct {
		Path string `yaml:"path"`
	}

	body, err := frontmatter.Parse(strings.NewReader(raw), &meta)
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse template frontmatter: %w", err)
	}
	if meta.Path == "" {
		return "", nil, fmt.Errorf("template declares no target path")
	}

	tmpl, err := template.New(meta.Path).Funcs(sprig.TxtFuncMap()).Parse(string(body))
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse template %s: %w", meta.Path, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", nil, fmt.Errorf("failed to render %s: %w", meta.Path, err)
	}

	return meta.Path, buf.Bytes(), nil
}
