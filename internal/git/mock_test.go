package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockGitClient_Defaults(t *testing.T) {
	m := NewMockGitClient()

	isRepo, err := m.IsGitRepo()
	require.NoError(t, err)
	require.True(t, isRepo)

	rev, err := m.GetRevision()
	require.NoError(t, err)
	require.NotEmpty(t, rev)
}

func TestMockGitClient_NotARepo(t *testing.T) {
	m := NewMockGitClient()
	m.SetIsRepo(false)

	isRepo, err := m.IsGitRepo()
	require.NoError(t, err)
	require.False(t, isRepo)

	_, err = m.GetRevision()
	require.Error(t, err)
	_, err = m.Describe()
	require.Error(t, err)
}

func TestMockGitClient_SetRevision(t *testing.T) {
	m := NewMockGitClient()
	m.SetRevision("abcdef1234567890", "v1.2.0-3-gabcdef1")

	rev, err := m.GetRevision()
	require.NoError(t, err)
	require.Equal(t, "abcdef1234567890", rev)

	desc, err := m.Describe()
	require.NoError(t, err)
	require.Equal(t, "v1.2.0-3-gabcdef1", desc)
}

func TestMockGitClient_ErrorHooks(t *testing.T) {
	m := NewMockGitClient()
	m.GetRevisionError = errors.New("boom")

	_, err := m.GetRevision()
	require.EqualError(t, err, "boom")
}
