package cli

import (
	"fmt"
	"strings"

	"github.com/mason-build/mason/internal/filesystem"
	"github.com/mason-build/mason/internal/git"
	"github.com/mason-build/mason/internal/manifest"
	"github.com/mason-build/mason/internal/project"
	"github.com/mason-build/mason/internal/workspace"
	"github.com/spf13/cobra"
)

// DescribeCommand handles the describe command
type DescribeCommand struct {
	fs  filesystem.FileSystem
	git git.GitClient
}

// NewDescribeCommand creates a new describe command
func NewDescribeCommand(fs filesystem.FileSystem, gitClient git.GitClient) *cobra.Command {
	cmd := &DescribeCommand{fs: fs, git: gitClient}

	cobraCmd := &cobra.Command{
		Use:   "describe",
		Short: "Show the normalized attributes of the root project",
		RunE:  cmd.Run,
	}

	return cobraCmd
}

// Run executes the describe command
func (c *DescribeCommand) Run(cmd *cobra.Command, args []string) error {
	ws := workspace.New(c.fs)
	if err := ws.Detect(); err != nil {
		return fmt.Errorf("failed to detect workspace: %w", err)
	}

	root := ws.Root()
	m, err := manifest.Load(c.fs, root.ManifestPath)
	if err != nil {
		return err
	}

	attrs, err := project.Normalize(c.fs, root.RootPath, m)
	if err != nil {
		return fmt.Errorf("invalid project %s: %w", root.Name, err)
	}

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Name:        %s (%s)\n", attrs.Name, attrs.NameUpper())
	fmt.Fprintf(out, "Namespace:   %s\n", attrs.Namespace())
	fmt.Fprintf(out, "Version:     %s (soversion %s)\n", attrs.Version.String(), attrs.Version.SOVersion())
	if attrs.Description != "" {
		fmt.Fprintf(out, "Description: %s\n", attrs.Description)
	}
	if attrs.Vendor != "" {
		fmt.Fprintf(out, "Vendor:      %s\n", attrs.Vendor)
	}

	fmt.Fprintf(out, "README:      %s\n", attrs.ReadmeFile)
	fmt.Fprintf(out, "License:     %s\n", attrs.LicenseFile)
	if attrs.AuthorsFile != "" {
		fmt.Fprintf(out, "Authors:     %s\n", attrs.AuthorsFile)
	}
	if attrs.InstallFile != "" {
		fmt.Fprintf(out, "Install:     %s\n", attrs.InstallFile)
	}
	if len(attrs.RedistLicenseFiles) > 0 {
		fmt.Fprintf(out, "Redist:      %s\n", strings.Join(attrs.RedistLicenseFiles, ", "))
	}

	if len(ws.Projects) > 1 {
		fmt.Fprintf(out, "Modules:     %d\n", len(ws.Projects)-1)
	}

	if isRepo, err := c.git.IsGitRepo(); err == nil && isRepo {
		if description, err := c.git.Describe(); err == nil {
			fmt.Fprintf(out, "Revision:    %s\n", description)
		}
	}

	return nil
}
