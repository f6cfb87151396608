// Package domain defines the core business entities and interfaces for gx.
// This package contains no external dependencies and represents the
// innermost layer of the application.
package domain

import (
	"context"
	"errors"
)

// Domain errors for repository access and stack listing.
var (
	// ErrRepositoryNotFound indicates the specified path is not a valid Git repository.
	ErrRepositoryNotFound = errors.New("git repository not found at specified path")

	// ErrNoUpstream indicates a branch has no upstream tracking configured.
	// This is a normal, non-error state for the stack listing; it only
	// excludes the branch from the upstream-chain diagram.
	ErrNoUpstream = errors.New("branch has no upstream configured")

	// ErrCommitRead indicates a commit object could not be read during the
	// stack walk. This is fatal to the whole listing; there is no
	// partial-result recovery for object-read failures.
	ErrCommitRead = errors.New("failed to read commit object")
)

// LocalGitRepository provides read-only access to a local repository's
// commits, branches, and tracking configuration. Every accessor
// distinguishes three outcomes: a value, explicit absence (a sentinel error
// or an empty field), and a read error.
type LocalGitRepository interface {
	// HeadStatus resolves the repository's current position.
	// A detached HEAD is reported via HeadStatus.IsDetached, not an error.
	HeadStatus(ctx context.Context) (*HeadStatus, error)

	// LocalBranches enumerates all local branches with their target hashes.
	// A branch with no resolvable target has an empty Target field.
	LocalBranches(ctx context.Context) ([]Branch, error)

	// BranchUpstream resolves the display name of the branch's configured
	// upstream. Returns ErrNoUpstream when no tracking is configured.
	// "Upstream" is only the locally recorded relationship; no network.
	BranchUpstream(ctx context.Context, name string) (string, error)

	// CommitByHash reads a single commit object.
	// Errors wrap ErrCommitRead.
	CommitByHash(ctx context.Context, hash string) (*Commit, error)

	// Close releases any resources held by the repository.
	Close() error
}

// Presenter renders listing output for the user. Implementations own all
// formatting and colorization; the core hands over plain data.
type Presenter interface {
	// Notice prints a single human-readable diagnostic line.
	Notice(line string)

	// StackEntry prints one line of the stack listing.
	StackEntry(entry StackEntry)

	// UpstreamPair prints the three-tier chain diagram for one pair.
	UpstreamPair(pair UpstreamPair)
}

// StackLister lists the current stack and upstream chains.
type StackLister interface {
	// List walks the stack from HEAD, annotates it with branch names and
	// renders it together with the upstream-chain diagrams.
	List(ctx context.Context) error
}
