package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specward/specward/tools/github"
)

// NewReactCommand creates the react command, used by workflow steps to
// signal progress on the triggering issue or comment.
func NewReactCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "react [reaction]",
		Short: "React to the GitHub issue or comment that triggered this run",
		Long: `React posts a reaction to the issue or comment carried by the current
GitHub Actions event. The target is resolved from GITHUB_EVENT_NAME,
GITHUB_EVENT_PATH and GITHUB_REPOSITORY; supported events are issues and
issue_comment.

Without an argument the configured default reaction is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := opts.Config.Signal.Reaction
			if len(args) > 0 {
				content = strings.TrimSpace(args[0])
			}
			if !github.IsValidReaction(content) {
				return fmt.Errorf("invalid reaction %q (allowed: %s)",
					content, strings.Join(github.ReactionValues(), ", "))
			}

			env := github.EnvironmentFromProcess()
			target, err := env.ResolveTarget()
			if err != nil {
				return err
			}

			if !github.IsGHAvailable() {
				return fmt.Errorf("GitHub CLI (gh) is not installed or not authenticated; run `gh auth login`")
			}

			executor := github.NewExecutor(opts.Config.Repo.Path)
			if err := executor.AddReaction(cmd.Context(), env.Repository, target, content); err != nil {
				return err
			}

			opts.Logger.Info("reaction posted",
				"target", target.Kind.String(),
				"id", target.ID,
				"content", content)

			fmt.Fprintf(opts.Stdout, "Reacted with %s to %s %d\n", content, target.Kind, target.ID)
			return nil
		},
	}
}
