package models

import "strings"

// Attributes is the canonical, validated attribute set of a project.
// Produced once by the normalizer at configuration time and read-only
// afterwards.
type Attributes struct {
	// Name as declared in the manifest.
	Name string

	// Version, always fully expanded to major.minor.patch.
	Version *Version

	Description string
	Vendor      string

	// ReadmeFile and LicenseFile are absolute paths and always set.
	ReadmeFile  string
	LicenseFile string

	// AuthorsFile and InstallFile are absolute paths or empty when the
	// project does not ship them.
	AuthorsFile string
	InstallFile string

	// RedistLicenseFiles lists licenses of redistributed third-party
	// parts. May be empty.
	RedistLicenseFiles []string
}

// Namespace returns the lowercase project name used to scope target
// identifiers.
func (a *Attributes) Namespace() string {
	return strings.ToLower(a.Name)
}

// NameUpper returns the canonical uppercase form of the project name.
func (a *Attributes) NameUpper() string {
	return strings.ToUpper(a.Name)
}
