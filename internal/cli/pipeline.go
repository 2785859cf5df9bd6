package cli

import (
	"fmt"
	"strings"

	"github.com/mason-build/mason/internal/filesystem"
	"github.com/mason-build/mason/internal/manifest"
	"github.com/mason-build/mason/internal/models"
	"github.com/mason-build/mason/internal/project"
	"github.com/mason-build/mason/internal/registry"
	"github.com/mason-build/mason/internal/workspace"
)

// defaultInstallPrefix is assumed when neither the --prefix flag nor the
// manifest names one.
const defaultInstallPrefix = "/usr/local"

// pipelineResult carries everything a configuration run produced.
type pipelineResult struct {
	Workspace  *workspace.Workspace
	Manifest   *manifest.Manifest
	Attributes *models.Attributes
	Snapshot   *registry.Snapshot
	Prefix     string
}

// runPipeline performs the configure pipeline up to the finalized
// registry snapshot: detect the workspace, normalize the root project,
// declare every project's targets, import dependency registries, then
// finalize. prefixFlag overrides the manifest's install_prefix.
func runPipeline(fs filesystem.FileSystem, prefixFlag string) (*pipelineResult, error) {
	ws := workspace.New(fs)
	if err := ws.Detect(); err != nil {
		return nil, fmt.Errorf("failed to detect workspace: %w", err)
	}

	root := ws.Root()
	rootManifest, err := manifest.Load(fs, root.ManifestPath)
	if err != nil {
		return nil, err
	}

	attrs, err := project.Normalize(fs, root.RootPath, rootManifest)
	if err != nil {
		return nil, fmt.Errorf("invalid project %s: %w", root.Name, err)
	}

	prefix := resolvePrefix(prefixFlag, rootManifest.InstallPrefix)

	manifests := make([]*manifest.Manifest, len(ws.Projects))
	manifests[0] = rootManifest
	for i, p := range ws.Projects[1:] {
		m, err := manifest.Load(fs, p.ManifestPath)
		if err != nil {
			return nil, err
		}
		manifests[i+1] = m
	}

	// Native targets of every project come first, dependency imports
	// after, so the registry lists the workspace's own targets up front.
	recorder := registry.NewRecorder()
	for i, p := range ws.Projects {
		namespace := strings.ToLower(p.Name)
		if err := declareTargets(recorder, namespace, manifests[i]); err != nil {
			return nil, fmt.Errorf("invalid targets in %s: %w", p.ManifestPath, err)
		}
	}
	for i, p := range ws.Projects {
		namespace := strings.ToLower(p.Name)
		if err := importDependencies(fs, recorder, namespace, manifests[i], prefix); err != nil {
			return nil, err
		}
	}

	snap, err := recorder.Finalize(attrs.Namespace(), registry.Layout{
		BuildBin:      ws.BuildBinDir(),
		InstallPrefix: prefix,
	})
	if err != nil {
		return nil, err
	}

	return &pipelineResult{
		Workspace:  ws,
		Manifest:   rootManifest,
		Attributes: attrs,
		Snapshot:   snap,
		Prefix:     prefix,
	}, nil
}

func resolvePrefix(flag, fromManifest string) string {
	if flag != "" {
		return flag
	}
	if fromManifest != "" {
		return fromManifest
	}
	return defaultInstallPrefix
}

// declareTargets records a project's declared targets under its
// namespace.
func declareTargets(r *registry.Recorder, namespace string, m *manifest.Manifest) error {
	for _, decl := range m.Targets {
		kind, err := models.ParseTargetKind(decl.Kind)
		if err != nil {
			return fmt.Errorf("target %s: %w", decl.Name, err)
		}

		if err := r.Add(namespace, &models.Target{
			Name:       decl.Name,
			Kind:       kind,
			OutputName: decl.Output,
		}); err != nil {
			return err
		}
	}
	return nil
}

// importDependencies pulls the exported registries of the manifest's
// use-declarations into the recorder.
func importDependencies(fs filesystem.FileSystem, r *registry.Recorder, namespace string, m *manifest.Manifest, prefix string) error {
	for _, dep := range m.Use {
		path := dep.Registry
		if path == "" {
			path = registry.DefaultRegistryPath(prefix, dep.Name)
		}

		targets, err := registry.Import(fs, path)
		if err != nil {
			return fmt.Errorf("failed to import dependency %s: %w", dep.Name, err)
		}

		for _, t := range targets {
			if err := r.Add(namespace, t); err != nil {
				return fmt.Errorf("failed to import dependency %s: %w", dep.Name, err)
			}
		}
	}
	return nil
}
