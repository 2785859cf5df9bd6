package registry

import (
	"path/filepath"
	"strings"

	"github.com/mason-build/mason/internal/models"
	"github.com/mason-build/mason/targetinfo"
)

// scriptExtensions are interpreter suffixes dropped from a script
// target's default output name.
var scriptExtensions = []string{".sh", ".py", ".pl"}

// Layout carries the directory scheme targets are resolved against.
type Layout struct {
	// BuildBin is the build-tree directory executables are placed in.
	BuildBin string

	// InstallPrefix is the install-tree root, e.g. /usr/local.
	InstallPrefix string
}

// BinDir returns the install directory for ordinary executables.
func (l Layout) BinDir() string {
	return filepath.Join(l.InstallPrefix, "bin")
}

// LibexecDir returns the install directory for library-execution helpers
// of the given namespace.
func (l Layout) LibexecDir(namespace string) string {
	return filepath.Join(l.InstallPrefix, "lib", namespace)
}

// Snapshot is the immutable result of finalizing the recorder: the
// public target entries in declaration order, under the root project's
// namespace.
type Snapshot struct {
	Namespace string
	entries   []targetinfo.Entry
}

// Finalize resolves all recorded targets against the layout and produces
// the registry snapshot. It runs exactly once, strictly after every
// target declaration: a second call (or any later mutation) fails.
//
// Build-only helper targets are dropped from the public entries; imported
// dependency targets keep the directories they were imported with.
func (r *Recorder) Finalize(namespace string, layout Layout) (*Snapshot, error) {
	if r.finalized {
		return nil, ErrFinalized
	}
	r.finalized = true

	entries := make([]targetinfo.Entry, 0, len(r.targets))
	for _, t := range r.targets {
		if !t.Kind.InRegistry() {
			continue
		}

		resolve(t, layout)
		entries = append(entries, targetinfo.Entry{
			UID:            t.UID,
			ExecutableName: t.OutputName,
			BuildDir:       t.BuildDir,
			InstallDir:     t.InstallDir,
		})
	}

	return &Snapshot{
		Namespace: namespace,
		entries:   entries,
	}, nil
}

// resolve fills the remaining location fields of a native target.
// Imported targets arrive fully resolved from the exporting project.
func resolve(t *models.Target, layout Layout) {
	if t.OutputName == "" {
		t.OutputName = defaultOutputName(t)
	}

	if t.Imported {
		return
	}

	if t.BuildDir == "" {
		t.BuildDir = layout.BuildBin
	}
	if t.InstallDir == "" {
		if t.Kind == models.KindLibexec {
			t.InstallDir = layout.LibexecDir(targetinfo.Namespace(t.UID))
		} else {
			t.InstallDir = layout.BinDir()
		}
	}
}

// defaultOutputName derives the executable file name from the local
// target name. Script targets drop a known interpreter extension.
func defaultOutputName(t *models.Target) string {
	name := targetinfo.LocalName(t.UID)
	if t.Kind != models.KindScript {
		return name
	}

	for _, ext := range scriptExtensions {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}

// Entries returns the public target entries in declaration order. The
// returned slice is a copy.
func (s *Snapshot) Entries() []targetinfo.Entry {
	out := make([]targetinfo.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of public entries.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Info builds the runtime lookup value for this snapshot, as the
// generated source unit does at compile time.
func (s *Snapshot) Info() *targetinfo.Info {
	return targetinfo.New(s.Namespace, s.entries)
}
