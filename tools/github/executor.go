// Package github wraps the GitHub CLI for progress signaling via issue and
// comment reactions.
package github

import (
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// validReactions is the fixed set of reaction content values the GitHub API
// accepts.
var validReactions = map[string]bool{
	"+1":       true,
	"-1":       true,
	"laugh":    true,
	"confused": true,
	"heart":    true,
	"hooray":   true,
	"rocket":   true,
	"eyes":     true,
}

// IsValidReaction reports whether content is an accepted reaction value.
func IsValidReaction(content string) bool {
	return validReactions[content]
}

// ReactionValues returns the accepted reaction content values, sorted.
func ReactionValues() []string {
	values := make([]string, 0, len(validReactions))
	for v := range validReactions {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// IsGHAvailable checks whether the gh CLI is installed and authenticated.
func IsGHAvailable() bool {
	if _, err := exec.LookPath("gh"); err != nil {
		return false
	}
	cmd := exec.Command("gh", "auth", "status")
	return cmd.Run() == nil
}

// Executor signals progress through the gh CLI.
type Executor struct {
	repoRoot string
}

// NewExecutor creates a GitHub executor with the given repository root.
func NewExecutor(repoRoot string) *Executor {
	return &Executor{repoRoot: repoRoot}
}

// AddReaction posts a reaction to the target resolved from a GitHub event.
// repo is the owner/name pair as reported by GITHUB_REPOSITORY.
func (e *Executor) AddReaction(ctx context.Context, repo string, target Target, content string) error {
	if repo == "" {
		return fmt.Errorf("repository is required")
	}
	if !IsValidReaction(content) {
		return fmt.Errorf("invalid reaction %q (allowed: %s)", content, strings.Join(ReactionValues(), ", "))
	}

	var endpoint string
	switch target.Kind {
	case TargetIssue:
		endpoint = fmt.Sprintf("repos/%s/issues/%d/reactions", repo, target.ID)
	case TargetComment:
		endpoint = fmt.Sprintf("repos/%s/issues/comments/%d/reactions", repo, target.ID)
	default:
		return fmt.Errorf("unsupported reaction target: %s", target.Kind)
	}

	return e.runGH(ctx, "api", endpoint, "-f", "content="+content, "--silent")
}

// runGH executes a gh command in the repo directory.
func (e *Executor) runGH(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "gh", args...)
	cmd.Dir = e.repoRoot

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("gh %s: %w: %s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}
