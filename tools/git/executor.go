// Package git wraps the git CLI for base-ref resolution and change-set
// retrieval.
package git

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/specward/specward/tracking"
)

// baseRefCandidates are probed in order when resolving what to diff against.
// The parent-commit fallback covers branches with no remote tracking ref.
var baseRefCandidates = []string{"origin/main", "origin/master", "HEAD~1"}

// Executor runs git commands against a repository root.
type Executor struct {
	repoRoot string
	logger   *slog.Logger
}

// NewExecutor creates a git executor for the given repository root.
func NewExecutor(repoRoot string, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{repoRoot: repoRoot, logger: logger}
}

// IsGitRepo checks if the repo root is a git repository.
func (e *Executor) IsGitRepo() bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = e.repoRoot
	return cmd.Run() == nil
}

// ResolveBaseRef selects the ref the change set is diffed against. It probes
// origin/main, then origin/master, then falls back to the parent commit;
// the first existing ref wins, with no retries.
func (e *Executor) ResolveBaseRef(ctx context.Context) (string, error) {
	for _, ref := range baseRefCandidates {
		if e.refExists(ctx, ref) {
			return ref, nil
		}
	}
	return "", fmt.Errorf("no base ref available (tried %s)", strings.Join(baseRefCandidates, ", "))
}

// NameStatus returns raw `git diff --name-status` output between baseRef
// and HEAD.
func (e *Executor) NameStatus(ctx context.Context, baseRef string) (string, error) {
	return e.runGit(ctx, "diff", "--name-status", baseRef+"...HEAD")
}

// ChangedEntries resolves the base ref, retrieves the name-status diff and
// parses it. Any external failure collapses to an empty entry set: the guard
// is advisory when history is unavailable (shallow clones), so
// under-reporting beats crashing the pipeline.
func (e *Executor) ChangedEntries(ctx context.Context) []tracking.DiffEntry {
	baseRef, err := e.ResolveBaseRef(ctx)
	if err != nil {
		e.logger.Warn("base ref resolution failed, skipping diff-based checks", "error", err)
		return nil
	}

	output, err := e.NameStatus(ctx, baseRef)
	if err != nil {
		e.logger.Warn("diff retrieval failed, skipping diff-based checks",
			"base_ref", baseRef, "error", err)
		return nil
	}

	return tracking.ParseNameStatus(output)
}

// refExists checks if a ref resolves in the repository.
func (e *Executor) refExists(ctx context.Context, ref string) bool {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--verify", "--quiet", ref)
	cmd.Dir = e.repoRoot
	return cmd.Run() == nil
}

// runGit executes a git command in the repo directory.
func (e *Executor) runGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = e.repoRoot

	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("%w: %s", err, string(output))
	}
	return string(output), nil
}
