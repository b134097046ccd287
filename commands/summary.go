package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSummaryCommand creates the summary command, a standalone spelling of
// `check --summary`.
func NewSummaryCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the capability scoreboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(opts)
		},
	}
}

func runSummary(opts *Options) error {
	board, err := opts.loadScoreboard()
	if err != nil {
		return err
	}

	fmt.Fprint(opts.Stdout, board.Summarize().Markdown())
	return nil
}
