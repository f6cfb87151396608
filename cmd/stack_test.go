// Package cmd provides the CLI commands for gx.
package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gx-cli/gx/internal/domain"
)

// Test mocks for dependency injection testing.

// mockLogger implements the Logger interface for testing.
type mockLogger struct{}

func (m *mockLogger) Info(_ context.Context, _ string, _ map[string]interface{})           {}
func (m *mockLogger) Debug(_ context.Context, _ string, _ map[string]interface{})          {}
func (m *mockLogger) Warn(_ context.Context, _ string, _ map[string]interface{})           {}
func (m *mockLogger) Error(_ context.Context, _ string, _ error, _ map[string]interface{}) {}

// mockRepo implements domain.LocalGitRepository for testing.
type mockRepo struct {
	closeCalled bool
}

func (m *mockRepo) HeadStatus(_ context.Context) (*domain.HeadStatus, error) {
	return &domain.HeadStatus{}, nil
}
func (m *mockRepo) LocalBranches(_ context.Context) ([]domain.Branch, error) { return nil, nil }
func (m *mockRepo) BranchUpstream(_ context.Context, _ string) (string, error) {
	return "", domain.ErrNoUpstream
}
func (m *mockRepo) CommitByHash(_ context.Context, _ string) (*domain.Commit, error) {
	return nil, domain.ErrCommitRead
}
func (m *mockRepo) Close() error {
	m.closeCalled = true
	return nil
}

// mockPresenter records notices for assertion.
type mockPresenter struct {
	notices []string
}

func (m *mockPresenter) Notice(line string)                 { m.notices = append(m.notices, line) }
func (m *mockPresenter) StackEntry(_ domain.StackEntry)     {}
func (m *mockPresenter) UpstreamPair(_ domain.UpstreamPair) {}

// mockLister implements domain.StackLister for testing.
type mockLister struct {
	err    error
	called bool
}

func (m *mockLister) List(_ context.Context) error {
	m.called = true
	return m.err
}

// testDeps builds a Dependencies value whose factories hand out the given mocks.
func testDeps(repo domain.LocalGitRepository, repoErr error, presenter domain.Presenter, lister domain.StackLister) *Dependencies {
	return &Dependencies{
		LoggerFactory: func() Logger { return &mockLogger{} },
		ConfigLoader: func() (*AppConfig, error) {
			return &AppConfig{LogLevel: "info", LogAppName: "gx", NoColor: true}, nil
		},
		GitRepoFactory: func(_ string, _ Logger) (domain.LocalGitRepository, error) {
			return repo, repoErr
		},
		PresenterFactory: func(_ *AppConfig) domain.Presenter { return presenter },
		ListerFactory: func(_ domain.LocalGitRepository, _ domain.Presenter, _ Logger) domain.StackLister {
			return lister
		},
		Stdout: io.Discard,
		Stderr: io.Discard,
	}
}

func execute(t *testing.T, deps *Dependencies, args ...string) error {
	t.Helper()
	root := NewRootCmdWithDeps(deps)
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.Execute()
}

func TestNewRootCmd_Tree(t *testing.T) {
	SetDefaultDependencies(&Dependencies{})
	root := NewRootCmd()

	require.NotNil(t, root)
	assert.Equal(t, "gx", root.Use)
	assert.True(t, root.SilenceUsage)

	verboseFlag := root.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)

	stack, _, err := root.Find([]string{"stack"})
	require.NoError(t, err)
	assert.Equal(t, "stack", stack.Use)

	list, _, err := root.Find([]string{"stack", "list"})
	require.NoError(t, err)
	assert.Equal(t, "list", list.Use)
	assert.NotNil(t, list.Args)
}

func TestStackList_Success(t *testing.T) {
	repo := &mockRepo{}
	lister := &mockLister{}
	deps := testDeps(repo, nil, &mockPresenter{}, lister)

	err := execute(t, deps, "stack", "list")

	require.NoError(t, err)
	assert.True(t, lister.called)
	assert.True(t, repo.closeCalled)
}

func TestStackList_NotARepositoryIsInformational(t *testing.T) {
	presenter := &mockPresenter{}
	lister := &mockLister{}
	deps := testDeps(nil, domain.ErrRepositoryNotFound, presenter, lister)

	err := execute(t, deps, "stack", "list")

	// Diagnostics are informational: the process still exits successfully.
	require.NoError(t, err)
	require.Len(t, presenter.notices, 1)
	assert.Equal(t, "Error: not a git repository.", presenter.notices[0])
	assert.False(t, lister.called)
}

func TestStackList_OtherRepoOpenErrorFails(t *testing.T) {
	deps := testDeps(nil, errors.New("permission denied"), &mockPresenter{}, &mockLister{})

	err := execute(t, deps, "stack", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestStackList_ListerErrorFails(t *testing.T) {
	repo := &mockRepo{}
	lister := &mockLister{err: domain.ErrCommitRead}
	deps := testDeps(repo, nil, &mockPresenter{}, lister)

	err := execute(t, deps, "stack", "list")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCommitRead)
	assert.True(t, repo.closeCalled)
}

func TestStackList_ConfigErrorFails(t *testing.T) {
	deps := testDeps(&mockRepo{}, nil, &mockPresenter{}, &mockLister{})
	deps.ConfigLoader = func() (*AppConfig, error) {
		return nil, errors.New("bad level")
	}

	err := execute(t, deps, "stack", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration error")
}

func TestStackList_RejectsArguments(t *testing.T) {
	deps := testDeps(&mockRepo{}, nil, &mockPresenter{}, &mockLister{})

	err := execute(t, deps, "stack", "list", "extra")

	require.Error(t, err)
}

func TestStackList_NilDependencies(t *testing.T) {
	err := execute(t, nil, "stack", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dependencies not configured")
}
