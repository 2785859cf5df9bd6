package cli

import (
	"fmt"

	"github.com/mason-build/mason/internal/filesystem"
	"github.com/spf13/cobra"
)

// TargetsCommand handles the targets command
type TargetsCommand struct {
	fs filesystem.FileSystem
}

// NewTargetsCommand creates a new targets command
func NewTargetsCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &TargetsCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "targets",
		Short: "List the executable targets of the workspace",
		Long: `Runs the configure pipeline in memory and lists the resulting public
target registry without writing anything.`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringP("prefix", "p", "", "Install prefix (default: manifest install_prefix, then /usr/local)")

	return cobraCmd
}

// Run executes the targets command
func (c *TargetsCommand) Run(cmd *cobra.Command, args []string) error {
	prefixFlag, _ := cmd.Flags().GetString("prefix")

	result, err := runPipeline(c.fs, prefixFlag)
	if err != nil {
		return err
	}

	entries := result.Snapshot.Entries()
	if len(entries) == 0 {
		fmt.Println("⚠️  No public targets declared")
		return nil
	}

	fmt.Printf("Targets of %s:\n\n", result.Attributes.Name)
	for _, e := range entries {
		fmt.Printf("  %s\n", e.UID)
		fmt.Printf("    executable:  %s\n", e.ExecutableName)
		fmt.Printf("    build tree:  %s\n", e.BuildDir)
		fmt.Printf("    installed:   %s\n", e.InstallDir)
	}

	return nil
}
