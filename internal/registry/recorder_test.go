package registry

import (
	"testing"

	"github.com/mason-build/mason/internal/models"
	"github.com/stretchr/testify/require"
)

var testLayout = Layout{
	BuildBin:      "/workspace/utilities/build/bin",
	InstallPrefix: "/usr/local",
}

func TestRecorder_AddAssignsUID(t *testing.T) {
	r := NewRecorder()

	native := &models.Target{Name: "helloworld", Kind: models.KindExecutable}
	require.NoError(t, r.Add("utilitiestest", native))
	require.Equal(t, "utilitiestest::helloworld", native.UID)

	qualified := &models.Target{Name: "toolbelt::mkproject.sh", Kind: models.KindScript}
	require.NoError(t, r.Add("utilitiestest", qualified))
	require.Equal(t, "toolbelt::mkproject.sh", qualified.UID)

	global := &models.Target{Name: "::hammer", Kind: models.KindExecutable}
	require.NoError(t, r.Add("utilitiestest", global))
	require.Equal(t, "::hammer", global.UID)
}

func TestRecorder_DuplicateRejected(t *testing.T) {
	r := NewRecorder()

	require.NoError(t, r.Add("proj", &models.Target{Name: "tool", Kind: models.KindExecutable}))

	// Bare and qualified declarations collide on the same UID.
	err := r.Add("proj", &models.Target{Name: "proj::tool", Kind: models.KindExecutable})
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate target proj::tool")
}

func TestRecorder_EmptyNameRejected(t *testing.T) {
	r := NewRecorder()
	require.Error(t, r.Add("proj", &models.Target{Kind: models.KindExecutable}))
}

func TestRecorder_SettersNormalizeNames(t *testing.T) {
	r := NewRecorder()
	target := &models.Target{Name: "tool", Kind: models.KindExecutable}
	require.NoError(t, r.Add("proj", target))

	// Bare and qualified references address the same descriptor.
	require.NoError(t, r.SetOutputName("proj", "tool", "tool-cli"))
	require.NoError(t, r.SetBuildDir("proj", "proj::tool", "/elsewhere/bin"))

	require.Equal(t, "tool-cli", target.OutputName)
	require.Equal(t, "/elsewhere/bin", target.BuildDir)

	require.Error(t, r.SetOutputName("proj", "ghost", "x"))
}

func TestFinalize_FiltersAndResolves(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Add("utilitiestest", &models.Target{Name: "helloworld", Kind: models.KindExecutable}))
	require.NoError(t, r.Add("utilitiestest", &models.Target{Name: "fixup.sh", Kind: models.KindScript}))
	require.NoError(t, r.Add("utilitiestest", &models.Target{Name: "codegen", Kind: models.KindHelper}))
	require.NoError(t, r.Add("utilitiestest", &models.Target{Name: "worker", Kind: models.KindLibexec}))

	snap, err := r.Finalize("utilitiestest", testLayout)
	require.NoError(t, err)

	entries := snap.Entries()
	require.Len(t, entries, 3, "build-only helpers must not appear in the registry")

	// Declaration order is preserved.
	require.Equal(t, "utilitiestest::helloworld", entries[0].UID)
	require.Equal(t, "utilitiestest::fixup.sh", entries[1].UID)
	require.Equal(t, "utilitiestest::worker", entries[2].UID)

	// Ordinary executable.
	require.Equal(t, "helloworld", entries[0].ExecutableName)
	require.Equal(t, "/workspace/utilities/build/bin", entries[0].BuildDir)
	require.Equal(t, "/usr/local/bin", entries[0].InstallDir)

	// Script target drops the interpreter extension.
	require.Equal(t, "fixup", entries[1].ExecutableName)

	// Library-execution helpers install under lib/<namespace>.
	require.Equal(t, "/usr/local/lib/utilitiestest", entries[2].InstallDir)
}

func TestFinalize_OutputNameOverrideWins(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Add("proj", &models.Target{
		Name:       "launcher.sh",
		Kind:       models.KindScript,
		OutputName: "launch-tool",
	}))

	snap, err := r.Finalize("proj", testLayout)
	require.NoError(t, err)
	require.Equal(t, "launch-tool", snap.Entries()[0].ExecutableName)
}

func TestFinalize_ImportedTargetKeepsDirectories(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Add("utilitiestest", &models.Target{Name: "helloworld", Kind: models.KindExecutable}))
	require.NoError(t, r.Add("utilitiestest", &models.Target{
		Name:       "toolbelt::mkproject.sh",
		Kind:       models.KindExecutable,
		OutputName: "mkproject",
		BuildDir:   "/usr/local/bin",
		InstallDir: "/usr/local/bin",
		Imported:   true,
	}))

	snap, err := r.Finalize("utilitiestest", testLayout)
	require.NoError(t, err)

	info := snap.Info()

	// Native target: distinct build and install locations.
	require.NotEqual(t,
		info.BuildDirectory("helloworld"),
		info.InstallationDirectory("helloworld"))

	// Imported target: found at its installed location in both trees.
	require.Equal(t,
		info.BuildDirectory("toolbelt::mkproject.sh"),
		info.InstallationDirectory("toolbelt::mkproject.sh"))
}

func TestFinalize_RunsExactlyOnce(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Add("proj", &models.Target{Name: "tool", Kind: models.KindExecutable}))

	_, err := r.Finalize("proj", testLayout)
	require.NoError(t, err)

	_, err = r.Finalize("proj", testLayout)
	require.ErrorIs(t, err, ErrFinalized)

	// The mutable phase is closed too.
	require.ErrorIs(t, r.Add("proj", &models.Target{Name: "late", Kind: models.KindExecutable}), ErrFinalized)
	require.ErrorIs(t, r.SetOutputName("proj", "tool", "x"), ErrFinalized)
}
