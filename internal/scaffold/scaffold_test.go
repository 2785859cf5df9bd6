package scaffold

import (
	"path/filepath"
	"testing"

	"github.com/mason-build/mason/internal/filesystem"
	"github.com/mason-build/mason/internal/manifest"
	"github.com/mason-build/mason/internal/project"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	s := NewScaffolder(fs)

	written, err := s.Generate("/src/mytool", ProjectData{
		Name:        "mytool",
		Version:     "1.2",
		Description: "A tool.",
		Vendor:      "Example Corp",
	})
	require.NoError(t, err)
	require.Contains(t, written, "/src/mytool/mason.yaml")

	m, err := manifest.Load(fs, "/src/mytool/mason.yaml")
	require.NoError(t, err)
	require.Equal(t, "mytool", m.Name)
	require.Equal(t, "1.2.0", m.Version)
	require.Equal(t, "A tool.", m.Description.String())
	require.Equal(t, "Example Corp", m.Vendor.String())
}

func TestGenerate_SkeletonNormalizes(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	s := NewScaffolder(fs)

	_, err := s.Generate("/src/mytool", ProjectData{Name: "mytool"})
	require.NoError(t, err)

	m, err := manifest.Load(fs, "/src/mytool/mason.yaml")
	require.NoError(t, err)

	// The skeleton must satisfy the normalizer out of the box.
	attrs, err := project.Normalize(fs, "/src/mytool", m)
	require.NoError(t, err)
	require.Equal(t, "mytool", attrs.Name)
	require.Equal(t, filepath.Join("/src/mytool", "README.md"), attrs.ReadmeFile)
	require.Equal(t, filepath.Join("/src/mytool", "COPYING.txt"), attrs.LicenseFile)
	require.Equal(t, filepath.Join("/src/mytool", "AUTHORS.txt"), attrs.AuthorsFile)
}

func TestGenerate_RejectsExistingProject(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/src/mytool/mason.yaml", []byte("name: mytool\n"))

	_, err := NewScaffolder(fs).Generate("/src/mytool", ProjectData{Name: "mytool"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "already contains a project")
}

func TestGenerate_RejectsBadInput(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	s := NewScaffolder(fs)

	_, err := s.Generate("/src/x", ProjectData{Name: "  "})
	require.Error(t, err)

	_, err = s.Generate("/src/x", ProjectData{Name: "x", Version: "1.2.3.4"})
	require.Error(t, err)
}
