// Package usecases contains the application business logic.
// This package orchestrates domain entities and interfaces to fulfill use cases.
package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/gx-cli/gx/internal/domain"
)

// Logger defines the logging interface required by the lister.
// This abstracts the logger dependency to avoid coupling to a specific implementation.
type Logger interface {
	Info(ctx context.Context, msg string, fields map[string]interface{})
	Debug(ctx context.Context, msg string, fields map[string]interface{})
	Warn(ctx context.Context, msg string, fields map[string]interface{})
	Error(ctx context.Context, msg string, err error, fields map[string]interface{})
}

// StackLister lists the linear stack of commits from HEAD backward together
// with each tracked branch's upstream chain. All repository access goes
// through the injected domain.LocalGitRepository; all rendering goes through
// the injected domain.Presenter.
type StackLister struct {
	repo      domain.LocalGitRepository
	presenter domain.Presenter
	logger    Logger
}

// NewStackLister creates a new StackLister with the given dependencies.
func NewStackLister(
	repo domain.LocalGitRepository,
	presenter domain.Presenter,
	log Logger,
) *StackLister {
	return &StackLister{
		repo:      repo,
		presenter: presenter,
		logger:    log,
	}
}

// List renders the current stack and the upstream-chain diagrams.
//
// Preconditions that fail (detached HEAD) produce a single diagnostic line
// and a nil error: diagnostics are informational, not process failures.
// Object-read failures during the walk are fatal and propagate; read
// failures during upstream resolution are reported and skipped.
func (l *StackLister) List(ctx context.Context) error {
	l.logger.Info(ctx, "starting stack listing", map[string]interface{}{
		"max_depth": domain.MaxStackDepth,
	})

	head, err := l.repo.HeadStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	if head.IsDetached {
		l.presenter.Notice("Error: HEAD is not currently pointing to a local branch. Switch to a local branch to list the stack.")
		return nil
	}

	branches, err := l.repo.LocalBranches(ctx)
	if err != nil {
		return fmt.Errorf("failed to enumerate branches: %w", err)
	}

	index := l.buildBranchIndex(branches)

	commits, stop, err := l.walkStack(ctx, head.Hash)
	if err != nil {
		return err
	}

	for _, entry := range annotateStack(commits, index) {
		l.presenter.StackEntry(entry)
	}

	if stop == domain.StopMerge {
		merge := commits[len(commits)-1]
		l.presenter.Notice(fmt.Sprintf(
			"Error: commit %s has more than one parent. Stacked history is not supported.",
			merge.ShortHash(),
		))
	}

	l.logger.Debug(ctx, "stack walk finished", map[string]interface{}{
		"entries":     len(commits),
		"stop_reason": stop.String(),
		"branch":      head.Branch,
	})

	l.resolveUpstreams(ctx, branches)
	return nil
}

// buildBranchIndex maps each branch's target hash to the branch itself.
// Branches with no target are reported and excluded; this can never fail
// outright. When several branches target the same commit the last one in
// enumeration order wins.
func (l *StackLister) buildBranchIndex(branches []domain.Branch) domain.BranchIndex {
	index := make(domain.BranchIndex, len(branches))
	for _, b := range branches {
		if b.Target == "" {
			l.presenter.Notice(fmt.Sprintf("Error: branch %s has no target.", b.DisplayName()))
			continue
		}
		index[b.Target] = b
	}
	return index
}

// walkStack walks first-parent ancestry from the given hash, emitting at
// most domain.MaxStackDepth commits. A merge commit is included in the
// result and then terminates the walk. Any object-read failure aborts the
// walk with an error wrapping domain.ErrCommitRead.
func (l *StackLister) walkStack(ctx context.Context, head string) ([]domain.Commit, domain.StopReason, error) {
	var stack []domain.Commit
	hash := head
	for {
		commit, err := l.repo.CommitByHash(ctx, hash)
		if err != nil {
			l.logger.Error(ctx, "failed to read commit during walk", err, map[string]interface{}{
				"hash":    hash,
				"emitted": len(stack),
			})
			return nil, 0, err
		}

		stack = append(stack, *commit)
		if len(stack) == domain.MaxStackDepth {
			return stack, domain.StopBounded, nil
		}
		if commit.IsMerge() {
			return stack, domain.StopMerge, nil
		}
		if len(commit.Parents) == 0 {
			return stack, domain.StopRoot, nil
		}
		hash = commit.Parents[0]
	}
}

// annotateStack joins walked commits with the branch index. Pure function:
// entries without a matching branch stay unannotated, nothing can fail.
func annotateStack(commits []domain.Commit, index domain.BranchIndex) []domain.StackEntry {
	entries := make([]domain.StackEntry, 0, len(commits))
	for _, c := range commits {
		entries = append(entries, domain.StackEntry{
			Commit: c,
			Branch: index[c.Hash].Name,
		})
	}
	return entries
}

// resolveUpstreams renders the upstream-chain diagram for every branch whose
// own name and upstream name both resolve. Everything else is reported and
// skipped; upstream read errors are local to the branch, never fatal.
func (l *StackLister) resolveUpstreams(ctx context.Context, branches []domain.Branch) []domain.UpstreamPair {
	var pairs []domain.UpstreamPair
	for _, b := range branches {
		if b.Name == "" {
			l.presenter.Notice("Found a branch with no name.")
			l.presenter.Notice("Skipping branch with no name.")
			continue
		}

		upstream, err := l.repo.BranchUpstream(ctx, b.Name)
		switch {
		case errors.Is(err, domain.ErrNoUpstream):
			l.presenter.Notice(fmt.Sprintf("Skipping branch %s: no upstream configured.", b.Name))
			continue
		case err != nil:
			l.presenter.Notice(fmt.Sprintf("Error: %v", err))
			l.presenter.Notice(fmt.Sprintf("Skipping branch %s.", b.Name))
			continue
		case upstream == "":
			l.presenter.Notice("Found an upstream branch with no name.")
			l.presenter.Notice(fmt.Sprintf("Skipping branch %s.", b.Name))
			continue
		}

		pair := domain.UpstreamPair{Branch: b.Name, Upstream: upstream}
		l.presenter.UpstreamPair(pair)
		pairs = append(pairs, pair)
	}
	return pairs
}
