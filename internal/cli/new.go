package cli

import (
	"fmt"

	"github.com/mason-build/mason/internal/filesystem"
	"github.com/mason-build/mason/internal/scaffold"
	"github.com/mason-build/mason/internal/tui/newproject"
	"github.com/spf13/cobra"
)

// NewProjectCommand handles the new command
type NewProjectCommand struct {
	fs filesystem.FileSystem
}

// NewNewCommand creates a new new command
func NewNewCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &NewProjectCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "new [dir]",
		Short: "Scaffold a new project",
		Long: `Creates the skeleton of a new project: a manifest plus the README,
license, and authors files configuration expects. Without --name an
interactive form collects the project attributes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringP("name", "n", "", "Project name (skips the interactive form)")
	cobraCmd.Flags().String("version", "0.0.0", "Initial project version")
	cobraCmd.Flags().StringP("description", "d", "", "Project description")
	cobraCmd.Flags().String("vendor", "", "Project vendor")

	return cobraCmd
}

// Run executes the new command
func (c *NewProjectCommand) Run(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	version, _ := cmd.Flags().GetString("version")
	description, _ := cmd.Flags().GetString("description")
	vendor, _ := cmd.Flags().GetString("vendor")

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	var created []string
	var projectName string

	if name == "" {
		flow := newproject.NewFlow(c.fs, dir)
		result, err := flow.Run()
		if err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		if result == nil {
			return nil
		}
		created = result.CreatedFiles
		projectName = result.Data.Name
	} else {
		files, err := scaffold.NewScaffolder(c.fs).Generate(dir, scaffold.ProjectData{
			Name:        name,
			Version:     version,
			Description: description,
			Vendor:      vendor,
		})
		if err != nil {
			return err
		}
		created = files
		projectName = name
	}

	for _, f := range created {
		fmt.Printf("  ✓ Created %s\n", f)
	}
	fmt.Printf("\n🎉 Scaffolded %s\n", projectName)

	return nil
}
