// Package commands provides the specward CLI subcommands.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/specward/specward/config"
	"github.com/specward/specward/scoreboard"
)

// Options carries shared dependencies into subcommands. The root command
// populates it during persistent pre-run, after flags and config files
// resolve.
type Options struct {
	Config *config.Config
	Logger *slog.Logger
	Stdout io.Writer
}

// scoreboardPath returns the absolute path of the scoreboard file.
func (o *Options) scoreboardPath() string {
	return filepath.Join(o.Config.Repo.Path, filepath.FromSlash(o.Config.Planning.Scoreboard))
}

// loadScoreboard loads and validates the scoreboard. Both steps are fatal
// on failure: an absent or inconsistent registry aborts every command that
// needs one.
func (o *Options) loadScoreboard() (*scoreboard.Scoreboard, error) {
	path := o.scoreboardPath()

	board, err := scoreboard.Load(path)
	if err != nil {
		return nil, err
	}
	if err := board.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoreboard %s: %w", path, err)
	}
	return board, nil
}
