package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// OSGitClient implements GitClient using real git commands
type OSGitClient struct {
	ctx context.Context
}

// NewOSGitClient creates a new OSGitClient
func NewOSGitClient() *OSGitClient {
	return &OSGitClient{
		ctx: context.Background(),
	}
}

// WithContext returns a new client with the given context
func (g *OSGitClient) WithContext(ctx context.Context) GitClient {
	return &OSGitClient{
		ctx: ctx,
	}
}

// IsGitRepo checks if the current directory is a git repository
func (g *OSGitClient) IsGitRepo() (bool, error) {
	cmd := exec.CommandContext(g.ctx, "git", "rev-parse", "--git-dir")

	if err := cmd.Run(); err != nil {
		// Not a git repo
		return false, nil
	}

	return true, nil
}

// GetRevision returns the full commit hash of HEAD
func (g *OSGitClient) GetRevision() (string, error) {
	cmd := exec.CommandContext(g.ctx, "git", "rev-parse", "HEAD")

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	return strings.TrimSpace(out.String()), nil
}

// Describe returns a human-readable description of HEAD, preferring the
// nearest reachable tag and marking uncommitted changes
func (g *OSGitClient) Describe() (string, error) {
	cmd := exec.CommandContext(g.ctx, "git", "describe", "--tags", "--always", "--dirty")

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to describe HEAD: %w", err)
	}

	return strings.TrimSpace(out.String()), nil
}
