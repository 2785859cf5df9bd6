package project

import (
	"errors"
	"fmt"
)

// ErrMissingName is returned when a manifest declares no project name.
var ErrMissingName = errors.New("project name is required")

// InvalidVersionError is returned when the declared version does not
// match the numeric major[.minor[.patch]] pattern.
type InvalidVersionError struct {
	Value string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid project version %q: expected numeric major[.minor[.patch]]", e.Value)
}

// MissingFileError is returned when an explicitly declared project file
// does not exist on disk.
type MissingFileError struct {
	Kind FileKind
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("%s file %s does not exist", e.Kind, e.Path)
}

// MissingRequiredFileError is returned when a mandatory project file was
// not declared and none of the conventional candidates exists.
type MissingRequiredFileError struct {
	Kind FileKind
}

func (e *MissingRequiredFileError) Error() string {
	return fmt.Sprintf("project has no %s file (searched %v)", e.Kind, candidatesFor(e.Kind))
}
