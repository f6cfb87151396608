// Package git provides adapters for interacting with local Git repositories.
// This package implements the domain.LocalGitRepository interface using go-git/v5.
package git

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/gx-cli/gx/internal/domain"
)

// Logger defines the logging interface for the git adapter.
// This interface enables dependency injection and testability.
type Logger interface {
	Debug(ctx context.Context, msg string, fields map[string]interface{})
	Warn(ctx context.Context, msg string, fields map[string]interface{})
}

// GoGitRepository implements domain.LocalGitRepository using go-git/v5.
// It provides the read-only commit, branch and tracking-config access the
// stack listing is built on.
type GoGitRepository struct {
	repo   *git.Repository
	path   string
	logger Logger
}

// NewGoGitRepository creates a new GoGitRepository for the given path.
// The path can be either a working directory or a bare repository.
// Returns domain.ErrRepositoryNotFound if the path is not a valid Git repository.
func NewGoGitRepository(path string, log Logger) (*GoGitRepository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRepositoryNotFound, path)
	}

	return &GoGitRepository{
		repo:   repo,
		path:   path,
		logger: log,
	}, nil
}

// HeadStatus resolves the repository's current position.
// A detached HEAD is reported via the IsDetached flag, not as an error.
func (r *GoGitRepository) HeadStatus(ctx context.Context) (*domain.HeadStatus, error) {
	head, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	status := &domain.HeadStatus{
		Hash:       head.Hash().String(),
		IsDetached: !head.Name().IsBranch(),
	}

	if head.Name().IsBranch() {
		status.Branch = head.Name().Short()
	} else {
		r.logger.Warn(ctx, "HEAD is detached", map[string]interface{}{
			"head_sha": status.Hash,
			"path":     r.path,
		})
	}

	return status, nil
}

// LocalBranches enumerates all local branches with their target hashes.
// A branch whose reference carries a zero hash is returned with an empty
// Target; the caller decides how to report it.
func (r *GoGitRepository) LocalBranches(ctx context.Context) ([]domain.Branch, error) {
	iter, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate branches: %w", err)
	}

	var branches []domain.Branch
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		b := domain.Branch{Name: ref.Name().Short()}
		if !ref.Hash().IsZero() {
			b.Target = ref.Hash().String()
		}
		branches = append(branches, b)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate branches: %w", err)
	}

	r.logger.Debug(ctx, "enumerated local branches", map[string]interface{}{
		"count": len(branches),
	})

	return branches, nil
}

// BranchUpstream resolves the display name of a branch's configured upstream
// from the repository config (branch.<name>.remote + branch.<name>.merge).
// Returns domain.ErrNoUpstream when no tracking is configured.
func (r *GoGitRepository) BranchUpstream(ctx context.Context, name string) (string, error) {
	cfg, err := r.repo.Config()
	if err != nil {
		return "", fmt.Errorf("failed to read repository config: %w", err)
	}

	bc, ok := cfg.Branches[name]
	if !ok || bc.Merge == "" || bc.Remote == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrNoUpstream, name)
	}

	upstream := upstreamDisplayName(bc)

	r.logger.Debug(ctx, "resolved branch upstream", map[string]interface{}{
		"branch":   name,
		"upstream": upstream,
	})

	return upstream, nil
}

// CommitByHash reads a single commit object and normalizes it into the
// domain representation. Placeholders for missing summary and author are
// applied at this boundary.
func (r *GoGitRepository) CommitByHash(ctx context.Context, hash string) (*domain.Commit, error) {
	commit, err := r.repo.CommitObject(plumbing.NewHash(hash))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrCommitRead, hash, err)
	}

	author := commit.Author.Name
	if author == "" {
		author = domain.UnknownAuthorPlaceholder
	}

	parents := make([]string, 0, len(commit.ParentHashes))
	for _, p := range commit.ParentHashes {
		parents = append(parents, p.String())
	}

	return &domain.Commit{
		Hash:      commit.Hash.String(),
		Summary:   domain.Summarize(commit.Message),
		Author:    author,
		Timestamp: commit.Author.When.Unix(),
		Parents:   parents,
	}, nil
}

// Close releases any resources held by the repository.
// For go-git, this is a no-op as the repository doesn't hold persistent resources.
func (r *GoGitRepository) Close() error {
	return nil
}

// upstreamDisplayName renders a branch's tracking config the way git
// displays it: "remote/branch", or just the branch for the local remote ".".
func upstreamDisplayName(bc *gitconfig.Branch) string {
	short := bc.Merge.Short()
	if bc.Remote == "." {
		return short
	}
	return bc.Remote + "/" + short
}
