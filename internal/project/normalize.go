// Package project validates and defaults project manifests into the
// canonical attribute set consumed by the registry builder and the
// packaging collaborators.
package project

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/mason-build/mason/internal/filesystem"
	"github.com/mason-build/mason/internal/manifest"
	"github.com/mason-build/mason/internal/models"
)

// FileKind identifies one of the conventional project files.
type FileKind string

const (
	FileReadme  FileKind = "README"
	FileLicense FileKind = "LICENSE"
	FileAuthors FileKind = "AUTHORS"
	FileInstall FileKind = "INSTALL"
)

// defaultVersion is assumed when the manifest declares none.
const defaultVersion = "0.0.0"

// redistLicensePattern matches licenses of redistributed third-party
// parts in the project root.
const redistLicensePattern = "COPYING-*"

func candidatesFor(kind FileKind) []string {
	switch kind {
	case FileReadme:
		return []string{"README.txt", "README.md", "README"}
	case FileLicense:
		return []string{"COPYING.txt", "COPYING", "LICENSE.txt", "LICENSE.md", "LICENSE"}
	case FileAuthors:
		return []string{"AUTHORS.txt", "AUTHORS.md", "AUTHORS"}
	case FileInstall:
		return []string{"INSTALL.txt", "INSTALL.md", "INSTALL"}
	default:
		return nil
	}
}

// Normalize validates the raw manifest attributes of the project rooted
// at rootDir and returns the fully populated attribute set. It performs
// existence checks only; the filesystem is never mutated.
func Normalize(fs filesystem.FileSystem, rootDir string, m *manifest.Manifest) (*models.Attributes, error) {
	name := strings.TrimSpace(m.Name)
	if name == "" {
		return nil, ErrMissingName
	}

	versionStr := strings.TrimSpace(m.Version)
	if versionStr == "" {
		versionStr = defaultVersion
	}
	version, err := models.ParseVersion(versionStr)
	if err != nil {
		return nil, &InvalidVersionError{Value: versionStr}
	}

	readme, err := resolveFile(fs, rootDir, FileReadme, m.ReadmeFile, true)
	if err != nil {
		return nil, err
	}
	license, err := resolveFile(fs, rootDir, FileLicense, m.LicenseFile, true)
	if err != nil {
		return nil, err
	}
	authors, err := resolveFile(fs, rootDir, FileAuthors, m.AuthorsFile, false)
	if err != nil {
		return nil, err
	}
	install, err := resolveFile(fs, rootDir, FileInstall, m.InstallFile, false)
	if err != nil {
		return nil, err
	}

	redist, err := resolveRedistLicenses(fs, rootDir, m.RedistLicenseFiles)
	if err != nil {
		return nil, err
	}

	return &models.Attributes{
		Name:               name,
		Version:            version,
		Description:        m.Description.String(),
		Vendor:             m.Vendor.String(),
		ReadmeFile:         readme,
		LicenseFile:        license,
		AuthorsFile:        authors,
		InstallFile:        install,
		RedistLicenseFiles: redist,
	}, nil
}

// resolveFile resolves one conventional project file. An explicit path
// must exist; otherwise the conventional candidates are probed in order
// in the project root. Required kinds fail when nothing is found,
// optional kinds resolve to "".
func resolveFile(fs filesystem.FileSystem, rootDir string, kind FileKind, explicit string, required bool) (string, error) {
	if explicit != "" {
		path := explicit
		if !filepath.IsAbs(path) {
			path = filepath.Join(rootDir, path)
		}
		if !fs.Exists(path) {
			return "", &MissingFileError{Kind: kind, Path: path}
		}
		return path, nil
	}

	for _, candidate := range candidatesFor(kind) {
		path := filepath.Join(rootDir, candidate)
		if fs.Exists(path) {
			return path, nil
		}
	}

	if required {
		return "", &MissingRequiredFileError{Kind: kind}
	}
	return "", nil
}

// resolveRedistLicenses returns the explicitly listed redistribution
// license files, or discovers COPYING-* files in the project root when
// none are listed.
func resolveRedistLicenses(fs filesystem.FileSystem, rootDir string, explicit []string) ([]string, error) {
	if len(explicit) > 0 {
		resolved := make([]string, 0, len(explicit))
		for _, f := range explicit {
			path := f
			if !filepath.IsAbs(path) {
				path = filepath.Join(rootDir, path)
			}
			if !fs.Exists(path) {
				return nil, &MissingFileError{Kind: FileLicense, Path: path}
			}
			resolved = append(resolved, path)
		}
		return resolved, nil
	}

	matches, err := fs.Glob(filepath.Join(rootDir, redistLicensePattern))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}
