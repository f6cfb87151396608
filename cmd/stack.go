package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gx-cli/gx/internal/domain"
)

// newStackCmd creates the "stack" command family.
func newStackCmd(deps *Dependencies) *cobra.Command {
	stackCmd := &cobra.Command{
		Use:   "stack",
		Short: "Inspect stacked commits and branches",
	}

	stackCmd.AddCommand(newStackListCmd(deps))

	return stackCmd
}

// newStackListCmd creates the "stack list" command.
func newStackListCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all commits in the current stack",
		Long: `List the commits of the current stack, newest first, annotated with the
local branch pointing at each commit, followed by a sync-pipeline diagram
for every branch with a configured upstream.

The listing is read-only and walks at most 10 commits. Merge commits are
not part of the stack model: the walk stops when it meets one.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStackList(cmd, deps)
		},
	}
}

// runStackList executes the stack listing with injected dependencies.
//
// Precondition diagnostics (not a repository, detached HEAD) are printed as
// a single line and the command still exits successfully; only unrecoverable
// read errors produce a non-zero exit.
func runStackList(cmd *cobra.Command, deps *Dependencies) error {
	if deps == nil {
		return errors.New("dependencies not configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get stderr for warnings
	stderr := deps.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	// Set log level based on verbose flag (best-effort)
	if verbose {
		if err := os.Setenv("LOG_LEVEL", "debug"); err != nil {
			writeWarningf(stderr, "warning: could not set log level: %v\n", err)
		}
	}

	log := deps.LoggerFactory()

	cfg, err := deps.ConfigLoader()
	if err != nil {
		log.Error(ctx, "failed to load configuration", err, nil)
		return fmt.Errorf("configuration error: %w", err)
	}

	presenter := deps.PresenterFactory(cfg)

	repo, err := deps.GitRepoFactory(".", log)
	if err != nil {
		if errors.Is(err, domain.ErrRepositoryNotFound) {
			presenter.Notice("Error: not a git repository.")
			return nil
		}
		log.Error(ctx, "failed to open git repository", err, nil)
		return err
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			log.Warn(ctx, "failed to close git repository", map[string]interface{}{
				"error": closeErr.Error(),
			})
		}
	}()

	lister := deps.ListerFactory(repo, presenter, log)
	if err := lister.List(ctx); err != nil {
		log.Error(ctx, "stack listing failed", err, nil)
		return err
	}

	return nil
}

// writeWarningf writes a warning message to the given writer.
// This is a best-effort operation; errors are intentionally ignored
// because there is no recovery action if stderr writes fail.
func writeWarningf(w io.Writer, format string, args ...any) {
	_, err := fmt.Fprintf(w, format, args...)
	if err != nil {
		return
	}
}
