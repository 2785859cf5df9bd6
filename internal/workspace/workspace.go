// Package workspace locates the project tree being configured: the root
// project and any nested module projects contributing targets.
package workspace

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/mason-build/mason/internal/filesystem"
	"github.com/mason-build/mason/internal/manifest"
	"github.com/mason-build/mason/internal/models"
)

// BuildDirName is the build-tree directory below the workspace root.
const BuildDirName = "build"

// Workspace represents a project tree rooted at the nearest mason.yaml.
type Workspace struct {
	fs       filesystem.FileSystem
	RootPath string

	// Projects holds the root project first, followed by nested module
	// projects in path order.
	Projects []*models.Project
}

// New creates a new Workspace instance.
func New(fs filesystem.FileSystem) *Workspace {
	return &Workspace{
		fs:       fs,
		Projects: []*models.Project{},
	}
}

// Detect finds the workspace root by walking up from the current
// directory and loads the root project plus its modules.
func (w *Workspace) Detect() error {
	root, err := w.findRoot()
	if err != nil {
		return err
	}
	w.RootPath = root

	if err := w.loadProjects(); err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	return nil
}

// BuildDir returns the build-tree root of the workspace.
func (w *Workspace) BuildDir() string {
	return filepath.Join(w.RootPath, BuildDirName)
}

// BuildBinDir returns the build-tree directory executables are placed in.
func (w *Workspace) BuildBinDir() string {
	return filepath.Join(w.BuildDir(), "bin")
}

// Root returns the root project.
func (w *Workspace) Root() *models.Project {
	return w.Projects[0]
}

// findRoot walks up the directory tree looking for a mason.yaml.
func (w *Workspace) findRoot() (string, error) {
	cwd, err := w.fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	dir := cwd
	for {
		if w.fs.Exists(filepath.Join(dir, manifest.FileName)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("workspace not found: no %s in %s or any parent", manifest.FileName, cwd)
		}
		dir = parent
	}
}

func (w *Workspace) loadProjects() error {
	rootProject, err := w.loadProject(w.RootPath, false)
	if err != nil {
		return err
	}

	modules, err := w.discoverModules()
	if err != nil {
		return err
	}

	w.Projects = append([]*models.Project{rootProject}, modules...)
	return nil
}

// loadProject reads just enough of a manifest to identify the project.
func (w *Workspace) loadProject(projectRoot string, isModule bool) (*models.Project, error) {
	manifestPath := filepath.Join(projectRoot, manifest.FileName)
	m, err := manifest.Load(w.fs, manifestPath)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(m.Name)
	if name == "" {
		// Keep the error close to the manifest; the normalizer reports
		// the same condition with its own taxonomy later.
		return nil, fmt.Errorf("manifest %s declares no project name", manifestPath)
	}

	return models.NewProject(name, projectRoot, manifestPath, isModule), nil
}

// discoverModules walks the tree below the root for nested manifests.
// The build tree is never descended into and .gitignore rules of the
// workspace root are honored.
func (w *Workspace) discoverModules() ([]*models.Project, error) {
	ignore, err := w.loadRootGitIgnore()
	if err != nil {
		return nil, err
	}

	buildDir := w.BuildDir()
	var moduleRoots []string

	err = w.fs.WalkDir(w.RootPath, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == w.RootPath {
			return nil
		}

		if entry.IsDir() && path == buildDir {
			return filepath.SkipDir
		}

		rel, relErr := filepath.Rel(w.RootPath, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if ignore != nil {
			if match := ignore.Relative(rel, entry.IsDir()); match != nil && match.Ignore() {
				if entry.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if entry.IsDir() || filepath.Base(path) != manifest.FileName {
			return nil
		}

		// The root's own manifest is not a module.
		if filepath.Dir(path) == w.RootPath {
			return nil
		}

		moduleRoots = append(moduleRoots, filepath.Dir(path))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(moduleRoots)

	var modules []*models.Project
	for _, root := range moduleRoots {
		module, err := w.loadProject(root, true)
		if err != nil {
			return nil, err
		}
		modules = append(modules, module)
	}

	return modules, nil
}

func (w *Workspace) loadRootGitIgnore() (gitignore.GitIgnore, error) {
	ignorePath := filepath.Join(w.RootPath, ".gitignore")
	if !w.fs.Exists(ignorePath) {
		return nil, nil
	}

	data, err := w.fs.ReadFile(ignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}

	return gitignore.New(bytes.NewReader(data), w.RootPath, nil), nil
}
