package cli

import (
	"testing"

	"github.com/mason-build/mason/internal/filesystem"
	"github.com/mason-build/mason/internal/git"
	"github.com/mason-build/mason/internal/workspace"
	"github.com/stretchr/testify/require"
)

// fixtureWorkspace builds a configurable workspace: a root project with
// three target kinds, one module, and one installed dependency registry.
func fixtureWorkspace(t *testing.T) *filesystem.MockFileSystem {
	t.Helper()

	wb := workspace.NewWorkspaceBuilder("/src/utilities")
	wb.WithManifest("", `name: UtilitiesTest
version: "1.2"
description: Test utilities.

targets:
  - name: helloworld
  - name: fixup.sh
    kind: script
  - name: codegen
    kind: helper
  - name: worker
    kind: libexec

use:
  - name: toolbelt
`)
	wb.WithFile("README.md", "readme")
	wb.WithFile("COPYING.txt", "license")
	wb.WithManifest("modules/extras", `name: extras

targets:
  - name: extrathing
`)
	wb.WithFile("modules/extras/README.md", "readme")
	wb.WithFile("modules/extras/COPYING.txt", "license")

	fs := wb.FileSystem()
	fs.AddFile("/usr/local/share/toolbelt/targets.yaml", []byte(`namespace: toolbelt
targets:
  - uid: toolbelt::mkproject.sh
    name: mkproject
    install_dir: /usr/local/bin
`))

	return fs
}

func TestRunPipeline(t *testing.T) {
	fs := fixtureWorkspace(t)

	result, err := runPipeline(fs, "")
	require.NoError(t, err)

	require.Equal(t, "UtilitiesTest", result.Attributes.Name)
	require.Equal(t, "utilitiestest", result.Snapshot.Namespace)
	require.Equal(t, "1.2.0", result.Attributes.Version.String())
	require.Equal(t, "/usr/local", result.Prefix)

	// helper target is build-only; everything else is public.
	entries := result.Snapshot.Entries()
	require.Len(t, entries, 5)
	require.Equal(t, "utilitiestest::helloworld", entries[0].UID)
	require.Equal(t, "utilitiestest::fixup.sh", entries[1].UID)
	require.Equal(t, "fixup", entries[1].ExecutableName)
	require.Equal(t, "utilitiestest::worker", entries[2].UID)
	require.Equal(t, "/usr/local/lib/utilitiestest", entries[2].InstallDir)
	require.Equal(t, "extras::extrathing", entries[3].UID)
	require.Equal(t, "toolbelt::mkproject.sh", entries[4].UID)
	require.Equal(t, entries[4].BuildDir, entries[4].InstallDir)
}

func TestRunPipeline_PrefixPrecedence(t *testing.T) {
	fs := fixtureWorkspace(t)

	result, err := runPipeline(fs, "/opt/tools")
	require.NoError(t, err)
	require.Equal(t, "/opt/tools", result.Prefix)
	require.Equal(t, "/opt/tools/bin", result.Snapshot.Entries()[0].InstallDir)
}

func TestRunPipeline_MissingDependencyRegistry(t *testing.T) {
	wb := workspace.NewWorkspaceBuilder("/src/utilities")
	wb.WithManifest("", `name: utilitiestest

use:
  - name: ghostdep
`)
	wb.WithFile("README.md", "readme")
	wb.WithFile("COPYING.txt", "license")

	_, err := runPipeline(wb.FileSystem(), "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "ghostdep")
}

func TestRunPipeline_InvalidProjectFails(t *testing.T) {
	wb := workspace.NewWorkspaceBuilder("/src/broken")
	wb.WithManifest("", "name: broken\n")
	// No README or license anywhere.

	_, err := runPipeline(wb.FileSystem(), "")
	require.Error(t, err)
}

func TestConfigureCommand(t *testing.T) {
	fs := fixtureWorkspace(t)
	fs.AddFile("/src/utilities/go.mod", []byte("module example.com/utilities\n\ngo 1.24\n"))

	gitClient := git.NewMockGitClient()
	gitClient.SetRevision("abc1234def", "v1.2.0-2-gabc1234")

	cmd := NewRootCommand(fs, gitClient)
	cmd.SetArgs([]string{"configure"})
	require.NoError(t, cmd.Execute())

	// Generated source unit in the root project.
	generated, err := fs.ReadFile("/src/utilities/internal/buildinfo/buildinfo_gen.go")
	require.NoError(t, err)
	require.Contains(t, string(generated), `targetinfo.New("utilitiestest"`)
	require.Contains(t, string(generated), `"toolbelt::mkproject.sh"`)
	require.NotContains(t, string(generated), "codegen", "helper targets must not be exported")

	// Exported registry in the build tree.
	exported, err := fs.ReadFile("/src/utilities/build/targets.yaml")
	require.NoError(t, err)
	require.Contains(t, string(exported), "namespace: utilitiestest")
	require.Contains(t, string(exported), "uid: utilitiestest::helloworld")
}

func TestConfigureCommand_OutsideRepo(t *testing.T) {
	fs := fixtureWorkspace(t)

	gitClient := git.NewMockGitClient()
	gitClient.SetIsRepo(false)

	cmd := NewRootCommand(fs, gitClient)
	cmd.SetArgs([]string{"configure"})
	require.NoError(t, cmd.Execute(), "absence of version control must not fail configuration")
}

func TestTargetsCommand(t *testing.T) {
	fs := fixtureWorkspace(t)

	cmd := NewRootCommand(fs, git.NewMockGitClient())
	cmd.SetArgs([]string{"targets"})
	require.NoError(t, cmd.Execute())

	// Listing must not write anything.
	require.False(t, fs.Exists("/src/utilities/build/targets.yaml"))
	require.False(t, fs.Exists("/src/utilities/internal/buildinfo/buildinfo_gen.go"))
}
