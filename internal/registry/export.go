package registry

import (
	"fmt"
	"path/filepath"

	"github.com/mason-build/mason/internal/filesystem"
	"github.com/mason-build/mason/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportFileName is the registry document a configured project exports
// for its dependents.
const ExportFileName = "targets.yaml"

// exportDoc is the on-disk shape of an exported registry.
type exportDoc struct {
	Namespace string        `yaml:"namespace"`
	Targets   []exportEntry `yaml:"targets"`
}

type exportEntry struct {
	UID        string `yaml:"uid"`
	Name       string `yaml:"name"`
	InstallDir string `yaml:"install_dir"`
}

// Export writes the snapshot's public entries to path so that dependent
// projects can import this project's targets after installation.
func Export(fs filesystem.FileSystem, path string, snap *Snapshot) error {
	doc := exportDoc{Namespace: snap.Namespace}
	for _, e := range snap.entries {
		doc.Targets = append(doc.Targets, exportEntry{
			UID:        e.UID,
			Name:       e.ExecutableName,
			InstallDir: e.InstallDir,
		})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to encode target registry: %w", err)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create registry directory: %w", err)
	}
	if err := fs.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write target registry: %w", err)
	}

	return nil
}

// DefaultRegistryPath returns the conventional location of an installed
// project's exported registry.
func DefaultRegistryPath(installPrefix, projectName string) string {
	return filepath.Join(installPrefix, "share", projectName, ExportFileName)
}

// Import reads an installed dependency's exported registry and returns
// its targets ready for recording. Imported targets are located via their
// installed files, so build and install directory are identical.
func Import(fs filesystem.FileSystem, path string) ([]*models.Target, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read target registry %s: %w", path, err)
	}

	var doc exportDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid target registry %s: %w", path, err)
	}

	targets := make([]*models.Target, 0, len(doc.Targets))
	for _, e := range doc.Targets {
		if e.UID == "" {
			return nil, fmt.Errorf("invalid target registry %s: entry without uid", path)
		}
		targets = append(targets, &models.Target{
			Name:       e.UID,
			Kind:       models.KindExecutable,
			OutputName: e.Name,
			BuildDir:   e.InstallDir,
			InstallDir: e.InstallDir,
			Imported:   true,
		})
	}

	return targets, nil
}
