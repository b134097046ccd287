package tracking

import (
	"fmt"
	"strings"
)

// PolicyError reports new spec artifacts that landed without a matching
// scoreboard update. It is the one author-recoverable failure of the guard:
// the fix is to touch the scoreboard in the same change set.
type PolicyError struct {
	Added          []string
	ScoreboardPath string
}

func (e *PolicyError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d new spec artifact(s) added without updating %s:\n", len(e.Added), e.ScoreboardPath)
	for _, p := range e.Added {
		fmt.Fprintf(&b, "  - %s\n", p)
	}
	fmt.Fprintf(&b, "Update %s in the same change set to register the new capabilities.", e.ScoreboardPath)
	return b.String()
}

// EnforceTracking applies the tracking policy to a parsed change set.
// No new spec artifacts means nothing to enforce. Otherwise the scoreboard
// must have been touched in the same range, or a *PolicyError naming every
// offending path is returned.
func (c Convention) EnforceTracking(entries []DiffEntry) error {
	added := c.AddedSpecArtifacts(entries)
	if len(added) == 0 {
		return nil
	}
	if c.HasScoreboardUpdate(entries) {
		return nil
	}
	return &PolicyError{Added: added, ScoreboardPath: c.ScoreboardPath}
}
