package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mason-build/mason/internal/codegen"
	"github.com/mason-build/mason/internal/filesystem"
	"github.com/mason-build/mason/internal/git"
	"github.com/mason-build/mason/internal/registry"
	"github.com/spf13/cobra"
)

// ConfigureCommand handles the configure command
type ConfigureCommand struct {
	fs  filesystem.FileSystem
	git git.GitClient
}

// NewConfigureCommand creates a new configure command
func NewConfigureCommand(fs filesystem.FileSystem, gitClient git.GitClient) *cobra.Command {
	cmd := &ConfigureCommand{fs: fs, git: gitClient}

	cobraCmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure the project in the current workspace",
		Long: `Validates the project attributes, finalizes the executable target
registry, and writes the generated source unit plus the exported
registry file into the build tree.`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringP("prefix", "p", "", "Install prefix (default: manifest install_prefix, then /usr/local)")

	return cobraCmd
}

// Run executes the configure command
func (c *ConfigureCommand) Run(cmd *cobra.Command, args []string) error {
	prefixFlag, _ := cmd.Flags().GetString("prefix")

	result, err := runPipeline(c.fs, prefixFlag)
	if err != nil {
		return err
	}

	attrs := result.Attributes
	fmt.Printf("🔧 Configuring %s %s\n\n", attrs.Name, attrs.Version.String())
	fmt.Printf("Install prefix: %s\n", result.Prefix)
	fmt.Printf("Registered %d target(s)\n\n", result.Snapshot.Len())

	gen := codegen.NewGenerator(c.fs)
	generatedPath, err := gen.Write(result.Workspace.Root().RootPath, result.Snapshot)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Wrote %s\n", generatedPath)

	if importPath, err := codegen.ImportPath(c.fs, result.Workspace.Root().RootPath); err != nil {
		return err
	} else if importPath != "" {
		fmt.Printf("  Import it as %q\n", importPath)
	}

	exportPath := filepath.Join(result.Workspace.BuildDir(), registry.ExportFileName)
	if err := registry.Export(c.fs, exportPath, result.Snapshot); err != nil {
		return err
	}
	fmt.Printf("✓ Wrote %s\n", exportPath)
	fmt.Printf("  Install it to %s\n\n", registry.DefaultRegistryPath(result.Prefix, attrs.Name))

	c.printRevision()

	fmt.Printf("🎉 Configured %s\n", attrs.Name)
	return nil
}

// printRevision stamps the source revision when the workspace is a git
// repository. A workspace outside version control is normal.
func (c *ConfigureCommand) printRevision() {
	isRepo, err := c.git.IsGitRepo()
	if err != nil || !isRepo {
		return
	}

	description, err := c.git.Describe()
	if err != nil {
		fmt.Printf("⚠️  Warning: failed to determine source revision: %v\n", err)
		return
	}

	fmt.Printf("Source revision: %s\n\n", description)
}
