// Package registry accumulates executable targets while projects are
// configured and finalizes them into the immutable snapshot that backs
// the generated runtime lookup code.
package registry

import (
	"errors"
	"fmt"

	"github.com/mason-build/mason/internal/models"
	"github.com/mason-build/mason/targetinfo"
)

// ErrFinalized is returned by mutating operations after Finalize ran.
var ErrFinalized = errors.New("target registry already finalized")

// Recorder is the mutable registration phase of the target registry.
// Targets are appended in declaration order while projects and their
// modules are configured; the order is preserved into the snapshot.
// Recorder deliberately offers no lookup API: queries are only possible
// against the finalized snapshot.
type Recorder struct {
	targets   []*models.Target
	byUID     map[string]*models.Target
	finalized bool
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		byUID: make(map[string]*models.Target),
	}
}

// Add records a declared target under the given project namespace. The
// target's UID is assigned here: bare names are qualified with the
// namespace, already-qualified names are kept verbatim.
func (r *Recorder) Add(namespace string, t *models.Target) error {
	if r.finalized {
		return ErrFinalized
	}
	if t.Name == "" {
		return errors.New("target name must not be empty")
	}

	uid := targetinfo.UID(namespace, t.Name)
	if _, exists := r.byUID[uid]; exists {
		return fmt.Errorf("duplicate target %s", uid)
	}

	t.UID = uid
	r.targets = append(r.targets, t)
	r.byUID[uid] = t
	return nil
}

// SetOutputName overrides the executable file name of a recorded target.
// The name is normalized against the namespace like everywhere else, so
// bare and qualified references are interchangeable.
func (r *Recorder) SetOutputName(namespace, name, output string) error {
	t, err := r.mutable(namespace, name)
	if err != nil {
		return err
	}
	t.OutputName = output
	return nil
}

// SetBuildDir overrides the build-tree directory of a recorded target.
func (r *Recorder) SetBuildDir(namespace, name, dir string) error {
	t, err := r.mutable(namespace, name)
	if err != nil {
		return err
	}
	t.BuildDir = dir
	return nil
}

// SetInstallDir overrides the install-tree directory of a recorded target.
func (r *Recorder) SetInstallDir(namespace, name, dir string) error {
	t, err := r.mutable(namespace, name)
	if err != nil {
		return err
	}
	t.InstallDir = dir
	return nil
}

// Len returns the number of recorded targets.
func (r *Recorder) Len() int {
	return len(r.targets)
}

func (r *Recorder) mutable(namespace, name string) (*models.Target, error) {
	if r.finalized {
		return nil, ErrFinalized
	}

	uid := targetinfo.UID(namespace, name)
	t, exists := r.byUID[uid]
	if !exists {
		return nil, fmt.Errorf("target %s is not recorded", uid)
	}
	return t, nil
}
