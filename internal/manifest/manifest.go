// Package manifest loads and validates mason.yaml project manifests.
package manifest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mason-build/mason/internal/filesystem"
	"gopkg.in/yaml.v3"
)

// FileName is the manifest file name probed for in project directories.
const FileName = "mason.yaml"

// Manifest is the raw, user-supplied project description. Validation and
// defaulting happen in the project normalizer; this package only enforces
// the document shape. Unrecognized keys are rejected.
type Manifest struct {
	Name        string   `yaml:"name"`
	Version     string   `yaml:"version"`
	Description TextAttr `yaml:"description"`
	Vendor      TextAttr `yaml:"vendor"`

	AuthorsFile        string   `yaml:"authors_file"`
	ReadmeFile         string   `yaml:"readme_file"`
	InstallFile        string   `yaml:"install_file"`
	LicenseFile        string   `yaml:"license_file"`
	RedistLicenseFiles []string `yaml:"redist_license_files"`

	InstallPrefix string `yaml:"install_prefix"`

	Targets []TargetDecl `yaml:"targets"`
	Use     []Dependency `yaml:"use"`
}

// TargetDecl declares one executable target.
type TargetDecl struct {
	// Name is the local target name.
	Name string `yaml:"name"`

	// Kind is one of executable, script, libexec, helper. Empty means
	// executable.
	Kind string `yaml:"kind"`

	// Output overrides the executable file name.
	Output string `yaml:"output"`

	// Path points at the target's sources, relative to the project root.
	// Informational for the underlying build tool; not interpreted here.
	Path string `yaml:"path"`
}

// Dependency references an already-installed project whose exported
// target registry is imported during configuration.
type Dependency struct {
	Name string `yaml:"name"`

	// Registry is the path to the dependency's exported registry file.
	// When empty, <prefix>/share/<name>/targets.yaml is probed.
	Registry string `yaml:"registry"`
}

// TextAttr is a free-text attribute that may be written as a single
// scalar or as a list of tokens; tokens are joined with a single space.
type TextAttr string

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *TextAttr) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*t = TextAttr(strings.TrimSpace(s))
		return nil
	case yaml.SequenceNode:
		var tokens []string
		if err := value.Decode(&tokens); err != nil {
			return err
		}
		for i, tok := range tokens {
			tokens[i] = strings.TrimSpace(tok)
		}
		*t = TextAttr(strings.Join(tokens, " "))
		return nil
	default:
		return fmt.Errorf("expected string or list of strings")
	}
}

// String returns the joined text.
func (t TextAttr) String() string {
	return string(t)
}

// Load reads and decodes a manifest file. Decoding is strict: a key the
// schema does not recognize is a configuration error.
func Load(fs filesystem.FileSystem, path string) (*Manifest, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return Parse(path, data)
}

// Parse decodes manifest data. The path is used in error messages only.
func Parse(path string, data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	return &m, nil
}
