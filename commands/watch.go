package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchDebounce is how long to wait for more changes before revalidating.
// Editors tend to emit bursts of events per save.
const watchDebounce = 500 * time.Millisecond

// debouncer coalesces bursts of triggers into a single firing on C once the
// quiet period elapses.
type debouncer struct {
	delay time.Duration
	timer *time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	timer := time.NewTimer(delay)
	if !timer.Stop() {
		<-timer.C
	}
	return &debouncer{delay: delay, timer: timer}
}

// Trigger arms (or re-arms) the quiet period, discarding any undelivered
// firing first so repeated triggers cannot queue more than one.
func (d *debouncer) Trigger() {
	if !d.timer.Stop() {
		select {
		case <-d.timer.C:
		default:
		}
	}
	d.timer.Reset(d.delay)
}

// C delivers at most one firing per quiet period.
func (d *debouncer) C() <-chan time.Time {
	return d.timer.C
}

// NewWatchCommand creates the watch command, a development convenience that
// revalidates the scoreboard whenever planning files change. It is not part
// of the CI gate.
func NewWatchCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Revalidate the scoreboard whenever planning files change",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts)
		},
	}
}

func runWatch(cmd *cobra.Command, opts *Options) error {
	cfg := opts.Config
	planningDir := filepath.Join(cfg.Repo.Path, filepath.FromSlash(cfg.Planning.Dir))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(planningDir); err != nil {
		return fmt.Errorf("watch %s: %w", planningDir, err)
	}

	// The scoreboard may live outside the planning directory.
	scoreboardDir := filepath.Dir(opts.scoreboardPath())
	if scoreboardDir != planningDir {
		if err := watcher.Add(scoreboardDir); err != nil {
			opts.Logger.Warn("cannot watch scoreboard directory",
				"dir", scoreboardDir, "error", err)
		}
	}

	revalidate := func() {
		if err := runSummary(opts); err != nil {
			opts.Logger.Error("scoreboard invalid", "error", err)
			return
		}
		opts.Logger.Info("scoreboard valid")
	}

	opts.Logger.Info("watching planning files", "dir", planningDir)
	revalidate()

	debounce := newDebouncer(watchDebounce)

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !opts.isWatchRelevant(event.Name) {
				continue
			}
			debounce.Trigger()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			opts.Logger.Warn("watch error", "error", err)

		case <-debounce.C():
			revalidate()
		}
	}
}

// isWatchRelevant reports whether a changed path should trigger
// revalidation: the scoreboard itself, or any planning document.
func (o *Options) isWatchRelevant(path string) bool {
	if path == o.scoreboardPath() {
		return true
	}
	return strings.HasSuffix(path, o.Config.Planning.DocExtension)
}
