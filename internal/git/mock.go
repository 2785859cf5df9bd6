package git

import (
	"context"
	"fmt"
	"sync"
)

// MockGitClient implements GitClient for testing
type MockGitClient struct {
	mu          sync.RWMutex
	isRepo      bool
	revision    string
	description string
	ctx         context.Context

	// Hooks for testing error scenarios
	GetRevisionError error
	DescribeError    error
}

// NewMockGitClient creates a new MockGitClient simulating a repository
// with a single commit
func NewMockGitClient() *MockGitClient {
	return &MockGitClient{
		isRepo:      true,
		revision:    "0000000000000000000000000000000000000001",
		description: "0000000",
		ctx:         context.Background(),
	}
}

// WithContext returns a new client with the given context
func (m *MockGitClient) WithContext(ctx context.Context) GitClient {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return &MockGitClient{
		isRepo:      m.isRepo,
		revision:    m.revision,
		description: m.description,
		ctx:         ctx,

		GetRevisionError: m.GetRevisionError,
		DescribeError:    m.DescribeError,
	}
}

// SetIsRepo sets whether this is a git repository
func (m *MockGitClient) SetIsRepo(isRepo bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isRepo = isRepo
}

// SetRevision sets the HEAD revision and its description
func (m *MockGitClient) SetRevision(revision, description string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revision = revision
	m.description = description
}

func (m *MockGitClient) IsGitRepo() (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.isRepo, nil
}

func (m *MockGitClient) GetRevision() (string, error) {
	if m.GetRevisionError != nil {
		return "", m.GetRevisionError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.isRepo {
		return "", fmt.Errorf("failed to resolve HEAD: not a repository")
	}
	return m.revision, nil
}

func (m *MockGitClient) Describe() (string, error) {
	if m.DescribeError != nil {
		return "", m.DescribeError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.isRepo {
		return "", fmt.Errorf("failed to describe HEAD: not a repository")
	}
	return m.description, nil
}
