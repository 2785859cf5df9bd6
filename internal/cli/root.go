package cli

import (
	"fmt"

	"github.com/mason-build/mason/internal/filesystem"
	"github.com/mason-build/mason/internal/git"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, gitClient git.GitClient) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mason",
		Short: "Configure projects and their executable target registries",
		Long: `A CLI tool that configures mason.yaml projects.

Configuration validates the project attributes, collects the executable
targets of the project and its modules, and bakes the resulting registry
into the build as generated source and an exported registry file.`,
		SilenceUsage: true,
	}

	// Add subcommands
	rootCmd.AddCommand(NewConfigureCommand(fs, gitClient))
	rootCmd.AddCommand(NewTargetsCommand(fs))
	rootCmd.AddCommand(NewDescribeCommand(fs, gitClient))
	rootCmd.AddCommand(NewNewCommand(fs))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	gitClient := git.NewOSGitClient()

	rootCmd := NewRootCommand(fs, gitClient)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
