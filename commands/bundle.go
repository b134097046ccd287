package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/specward/specward/bundle"
)

// NewBundleCommand creates the bundle command.
func NewBundleCommand(opts *Options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Assemble planning documents into a distributable zip",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.Config
			manifest := bundle.Manifest{
				Include: cfg.Bundle.Include,
				Exclude: cfg.Bundle.Exclude,
				Output:  cfg.Bundle.Output,
			}
			if output != "" {
				manifest.Output = output
			}

			result, err := manifest.Build(cfg.Repo.Path)
			if err != nil {
				return err
			}

			opts.Logger.Info("bundle written",
				"output", result.Output,
				"files", len(result.Files))

			fmt.Fprintf(opts.Stdout, "Bundled %d file(s) into %s\n", len(result.Files), result.Output)
			for _, f := range result.Files {
				fmt.Fprintf(opts.Stdout, "  %s\n", f)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Archive path (overrides config)")
	return cmd
}
