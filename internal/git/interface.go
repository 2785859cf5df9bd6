package git

import (
	"context"
)

// GitClient provides an abstraction over git operations for testability.
//
// Configuration uses it to stamp the source revision the project was
// configured from. A workspace that is not a git repository is normal;
// callers must treat an absent revision as empty, never as an error.
type GitClient interface {
	// Repository operations
	IsGitRepo() (bool, error)
	GetRevision() (string, error)
	Describe() (string, error)

	// Context support
	WithContext(ctx context.Context) GitClient
}
