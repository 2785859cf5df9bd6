// Package targetinfo provides the read-only lookup table that locates the
// executables of a configured project and its dependencies.
//
// The table is materialized by `mason configure` into a generated source
// file which constructs one Info value from literal entries. Executables
// link that file and query the Info at runtime to find sibling programs,
// regardless of whether they run from the build tree or the install tree:
// the distinction lives entirely in the directory values baked into the
// entries, not in this API.
package targetinfo

import "strings"

// Separator separates the namespace from the local target name in a
// target identifier.
const Separator = "::"

// UID normalizes a target name into its full identifier. A name that
// already contains the separator is returned unchanged, even with an
// empty namespace part ("::tool" denotes the explicit global namespace).
// A bare name is qualified with the given namespace. The empty name maps
// to the empty identifier.
func UID(namespace, name string) string {
	if name == "" {
		return ""
	}
	if strings.Contains(name, Separator) {
		return name
	}
	return namespace + Separator + name
}

// Namespace returns the namespace part of an identifier, or "" for a
// bare or empty name.
func Namespace(uid string) string {
	idx := strings.Index(uid, Separator)
	if idx < 0 {
		return ""
	}
	return uid[:idx]
}

// LocalName returns the part of an identifier after the separator, or the
// input itself when no separator is present.
func LocalName(uid string) string {
	idx := strings.Index(uid, Separator)
	if idx < 0 {
		return uid
	}
	return uid[idx+len(Separator):]
}

// Entry is one target record: identifier plus the locations resolved at
// configuration time.
type Entry struct {
	UID            string
	ExecutableName string
	BuildDir       string
	InstallDir     string
}

// Info answers target lookups. It is immutable after construction, so
// concurrent queries from multiple goroutines need no locking.
type Info struct {
	namespace string
	entries   map[string]Entry
}

// New constructs an Info for a project namespace from the given entries.
// The entries slice is copied; later mutation of it does not affect the
// returned value.
func New(namespace string, entries []Entry) *Info {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[e.UID] = e
	}
	return &Info{
		namespace: namespace,
		entries:   m,
	}
}

// TargetUID applies identifier normalization for this project's
// namespace. It is purely syntactic and works for unknown targets too.
func (i *Info) TargetUID(name string) string {
	return UID(i.namespace, name)
}

// IsKnownTarget reports whether the name, after normalization, denotes a
// registered target. The empty name is never known.
func (i *Info) IsKnownTarget(name string) bool {
	uid := i.TargetUID(name)
	if uid == "" {
		return false
	}
	_, ok := i.entries[uid]
	return ok
}

// ExecutableName returns the output file name of the target, or "" if the
// target is unknown.
func (i *Info) ExecutableName(name string) string {
	return i.lookup(name).ExecutableName
}

// BuildDirectory returns the build-tree directory of the target's
// executable, or "" if the target is unknown.
func (i *Info) BuildDirectory(name string) string {
	return i.lookup(name).BuildDir
}

// InstallationDirectory returns the install-tree directory of the
// target's executable, or "" if the target is unknown. For targets of an
// already-installed dependency project this equals BuildDirectory.
func (i *Info) InstallationDirectory(name string) string {
	return i.lookup(name).InstallDir
}

func (i *Info) lookup(name string) Entry {
	uid := i.TargetUID(name)
	if uid == "" {
		return Entry{}
	}
	return i.entries[uid]
}
