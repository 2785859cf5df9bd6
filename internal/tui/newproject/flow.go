package newproject

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/mason-build/mason/internal/filesystem"
	"github.com/mason-build/mason/internal/models"
	"github.com/mason-build/mason/internal/scaffold"
	"github.com/mason-build/mason/internal/tui"
)

// Flow orchestrates the new-project command using huh forms.
type Flow struct {
	fs    filesystem.FileSystem
	dir   string
	theme *huh.Theme
}

// Result captures the successful output of the flow.
type Result struct {
	Data         scaffold.ProjectData
	CreatedFiles []string
}

// NewFlow constructs a Flow scaffolding into dir.
func NewFlow(fs filesystem.FileSystem, dir string) *Flow {
	return &Flow{
		fs:    fs,
		dir:   dir,
		theme: tui.NewHuhTheme(),
	}
}

// Run executes the form; returns nil result on user abort.
func (f *Flow) Run() (*Result, error) {
	data, err := f.inputAttributes()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	created, err := scaffold.NewScaffolder(f.fs).Generate(f.dir, *data)
	if err != nil {
		return nil, err
	}

	return &Result{
		Data:         *data,
		CreatedFiles: created,
	}, nil
}

func (f *Flow) inputAttributes() (*scaffold.ProjectData, error) {
	data := scaffold.ProjectData{
		Version: "0.0.0",
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Value(&data.Name).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Version").
				Description("Up to three numeric components, e.g. 1.0 or 1.2.3.").
				Value(&data.Version).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return nil
					}
					_, err := models.ParseVersion(v)
					return err
				}),
			huh.NewInput().
				Title("Description").
				Value(&data.Description),
			huh.NewInput().
				Title("Vendor").
				Value(&data.Vendor),
		).
			Title("New Project").
			Description("Describe the project to scaffold."),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		return nil, err
	}

	data.Name = strings.TrimSpace(data.Name)
	data.Version = strings.TrimSpace(data.Version)
	data.Description = strings.TrimSpace(data.Description)
	data.Vendor = strings.TrimSpace(data.Vendor)

	return &data, nil
}
