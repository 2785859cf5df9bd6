package models

import "fmt"

// TargetKind classifies a declared build target. The set is closed:
// manifest parsing rejects anything outside it, so downstream code can
// match exhaustively.
type TargetKind string

const (
	// KindExecutable is an ordinary compiled executable.
	KindExecutable TargetKind = "executable"

	// KindScript is a script-based executable. Its default output name
	// drops the interpreter extension.
	KindScript TargetKind = "script"

	// KindLibexec is a library-execution helper: an executable invoked by
	// other executables rather than users, installed under the library
	// directory instead of bin.
	KindLibexec TargetKind = "libexec"

	// KindHelper is a build-only helper tool. It is declared and built but
	// excluded from the public target registry.
	KindHelper TargetKind = "helper"
)

// ParseTargetKind validates a manifest kind string. An empty string
// defaults to KindExecutable.
func ParseTargetKind(s string) (TargetKind, error) {
	switch TargetKind(s) {
	case "":
		return KindExecutable, nil
	case KindExecutable, KindScript, KindLibexec, KindHelper:
		return TargetKind(s), nil
	default:
		return "", fmt.Errorf("unknown target kind: %q", s)
	}
}

// InRegistry reports whether targets of this kind appear in the public
// target registry.
func (k TargetKind) InRegistry() bool {
	switch k {
	case KindExecutable, KindScript, KindLibexec:
		return true
	case KindHelper:
		return false
	default:
		return false
	}
}

// Target describes one executable build target. Instances are mutable
// while configuration runs and fields are filled in progressively; they
// are copied into the immutable registry snapshot only at finalization.
type Target struct {
	// UID is the normalized "namespace::name" identifier. Assigned when
	// the target is recorded.
	UID string

	// Name is the local target name as declared in the manifest.
	Name string

	// Kind classifies the target.
	Kind TargetKind

	// OutputName is the executable file name. Empty until an explicit
	// override is declared or the default is resolved at finalization.
	OutputName string

	// BuildDir is the build-tree directory holding the executable.
	BuildDir string

	// InstallDir is the install-tree directory of the executable.
	InstallDir string

	// Imported marks targets taken from an already-installed dependency
	// project; for those, build and install directory are identical.
	Imported bool
}
