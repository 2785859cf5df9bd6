package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/mason-build/mason/internal/filesystem"
)

// WorkspaceBuilder helps create test workspaces
type WorkspaceBuilder struct {
	fs   *filesystem.MockFileSystem
	root string
}

// NewWorkspaceBuilder creates a new WorkspaceBuilder
func NewWorkspaceBuilder(root string) *WorkspaceBuilder {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(root)
	fs.SetCurrentDir(root)

	return &WorkspaceBuilder{
		fs:   fs,
		root: root,
	}
}

// WithManifest writes a raw manifest at the given path relative to the
// workspace root. An empty path targets the root project.
func (wb *WorkspaceBuilder) WithManifest(relPath, content string) *WorkspaceBuilder {
	manifestPath := filepath.Join(wb.root, relPath, "mason.yaml")
	wb.fs.AddFile(manifestPath, []byte(content))
	return wb
}

// WithProject writes a minimal manifest declaring just a project name.
func (wb *WorkspaceBuilder) WithProject(relPath, name string) *WorkspaceBuilder {
	return wb.WithManifest(relPath, fmt.Sprintf("name: %s\n", name))
}

// WithFile adds an arbitrary file below the workspace root.
func (wb *WorkspaceBuilder) WithFile(relPath, content string) *WorkspaceBuilder {
	wb.fs.AddFile(filepath.Join(wb.root, relPath), []byte(content))
	return wb
}

// WithGitIgnore writes the root .gitignore.
func (wb *WorkspaceBuilder) WithGitIgnore(content string) *WorkspaceBuilder {
	return wb.WithFile(".gitignore", content)
}

// ChdirTo moves the mock working directory to a subdirectory.
func (wb *WorkspaceBuilder) ChdirTo(relPath string) *WorkspaceBuilder {
	dir := filepath.Join(wb.root, relPath)
	wb.fs.AddDir(dir)
	wb.fs.SetCurrentDir(dir)
	return wb
}

// FileSystem returns the mock filesystem
func (wb *WorkspaceBuilder) FileSystem() *filesystem.MockFileSystem {
	return wb.fs
}
