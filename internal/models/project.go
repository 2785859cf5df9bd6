package models

// Project represents one configured project: the workspace root or a
// nested module contributing targets under its own namespace.
type Project struct {
	// Name is the project name from its manifest.
	Name string

	// RootPath is the absolute path to the project root.
	RootPath string

	// ManifestPath is the path to the mason.yaml manifest.
	ManifestPath string

	// IsModule is true for nested module projects discovered below the
	// workspace root.
	IsModule bool
}

// NewProject creates a new Project instance
func NewProject(name, rootPath, manifestPath string, isModule bool) *Project {
	return &Project{
		Name:         name,
		RootPath:     rootPath,
		ManifestPath: manifestPath,
		IsModule:     isModule,
	}
}
