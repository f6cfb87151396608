// Package domain defines the core business entities and interfaces for gx.
package domain

import "strings"

// MaxStackDepth is the maximum number of commits a stack listing walks.
// Stacks deeper than this are not supported by design: the output stays
// scannable and the worst-case amount of object reads stays bounded.
const MaxStackDepth = 10

// ShortHashLen is the number of leading hex characters shown for a commit.
// Collisions at this width are accepted and not disambiguated.
const ShortHashLen = 7

// Placeholder values used when repository metadata is absent.
const (
	// NoSummaryPlaceholder is shown for commits with an empty message.
	NoSummaryPlaceholder = "<no summary>"

	// UnknownAuthorPlaceholder is shown for commits with no author name.
	UnknownAuthorPlaceholder = "Unknown"

	// UnknownBranchPlaceholder names a branch whose own name is unreadable.
	UnknownBranchPlaceholder = "<unknown branch>"
)

// Commit is a single commit read from the repository.
// Constructed fresh for each walk step, immutable, discarded after rendering.
type Commit struct {
	// Hash is the full hex-encoded commit identity.
	Hash string

	// Summary is the first line of the commit message,
	// or NoSummaryPlaceholder if the message is empty.
	Summary string

	// Author is the author display name,
	// or UnknownAuthorPlaceholder if absent.
	Author string

	// Timestamp is the authoring time in seconds since epoch.
	Timestamp int64

	// Parents holds the parent commit hashes. More than one parent
	// signals a merge commit, which breaks the linear-stack model.
	Parents []string
}

// ShortHash returns the first ShortHashLen hex characters of the commit hash.
func (c Commit) ShortHash() string {
	if len(c.Hash) <= ShortHashLen {
		return c.Hash
	}
	return c.Hash[:ShortHashLen]
}

// IsMerge reports whether the commit has more than one parent.
func (c Commit) IsMerge() bool {
	return len(c.Parents) > 1
}

// Branch is a local branch reference.
type Branch struct {
	// Name is the branch short name. Empty means the name could not be
	// resolved, which is itself a reportable condition.
	Name string

	// Target is the hex-encoded commit hash the branch points at.
	// Empty means the branch has no resolvable target.
	Target string
}

// DisplayName returns the branch name, or UnknownBranchPlaceholder when
// the branch has no resolvable name.
func (b Branch) DisplayName() string {
	if b.Name == "" {
		return UnknownBranchPlaceholder
	}
	return b.Name
}

// BranchIndex maps a commit hash to the local branch pointing at it.
// If multiple branches target the same commit, the last one inserted wins;
// this follows the branch enumeration order and is a documented
// non-determinism of the listing.
type BranchIndex map[string]Branch

// HeadStatus describes the repository's current position.
type HeadStatus struct {
	// Hash is the full commit hash HEAD resolves to.
	Hash string

	// Branch is the current branch short name (empty when detached).
	Branch string

	// IsDetached indicates HEAD does not point at a local branch.
	IsDetached bool
}

// StackEntry is one line of the stack listing: a walked commit joined with
// the branch pointing at it, if any.
type StackEntry struct {
	Commit Commit

	// Branch is the name of the local branch targeting this commit.
	// Empty means no branch points here.
	Branch string
}

// UpstreamPair is a validated (branch, upstream) tracking relationship.
// Pairs are unordered relative to each other; within a pair the branch
// always precedes the upstream in the rendered diagram.
type UpstreamPair struct {
	Branch   string
	Upstream string
}

// StopReason records why a stack walk terminated.
type StopReason int

const (
	// StopRoot means the walk reached a commit with no parent.
	StopRoot StopReason = iota

	// StopBounded means the walk emitted MaxStackDepth entries.
	StopBounded

	// StopMerge means the walk hit a commit with more than one parent.
	// The merge commit itself is included in the emitted stack.
	StopMerge
)

// String returns a human-readable name for the stop reason.
func (r StopReason) String() string {
	switch r {
	case StopRoot:
		return "root"
	case StopBounded:
		return "bounded"
	case StopMerge:
		return "merge"
	default:
		return "unknown"
	}
}

// Summarize extracts the first line of a commit message, trimmed.
// Returns NoSummaryPlaceholder for an empty message.
func Summarize(message string) string {
	line := message
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return NoSummaryPlaceholder
	}
	return line
}
