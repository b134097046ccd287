package tracking

import (
	"sort"
	"strings"
)

// Convention fixes the repository paths the guard operates on.
type Convention struct {
	// PlanningDir is the directory holding planning/spec documents.
	PlanningDir string
	// DocExtension is the documentation file extension, including the dot.
	DocExtension string
	// IndexFile is the planning area's own index file, excluded from the
	// spec-artifact set.
	IndexFile string
	// ScoreboardPath is the repository-relative path of the capability
	// scoreboard.
	ScoreboardPath string
}

// DefaultConvention returns the standard repository layout.
func DefaultConvention() Convention {
	return Convention{
		PlanningDir:    "docs/planning",
		DocExtension:   ".md",
		IndexFile:      "README.md",
		ScoreboardPath: "docs/planning/scoreboard.json",
	}
}

// IsSpecArtifact reports whether path names a planning document: under the
// planning directory, carrying the documentation extension, and not the
// area's index file. Pure string predicate, no filesystem access.
func (c Convention) IsSpecArtifact(path string) bool {
	prefix := strings.TrimSuffix(c.PlanningDir, "/") + "/"
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	if !strings.HasSuffix(path, c.DocExtension) {
		return false
	}
	return !strings.HasSuffix(path, "/"+c.IndexFile)
}

// AddedSpecArtifacts returns the paths of newly added spec artifacts,
// deduplicated and in ascending lexical order. Only status "A" counts:
// renames and modifications of existing documents are not new artifacts.
func (c Convention) AddedSpecArtifacts(entries []DiffEntry) []string {
	seen := make(map[string]bool)
	var added []string

	for _, e := range entries {
		if e.Status != "A" || !c.IsSpecArtifact(e.Path) {
			continue
		}
		if seen[e.Path] {
			continue
		}
		seen[e.Path] = true
		added = append(added, e.Path)
	}

	sort.Strings(added)
	return added
}

// HasScoreboardUpdate reports whether the change set touches the scoreboard
// file. A pure deletion does not count: removing the scoreboard while adding
// new specs must still fail the guard. Addition, modification, or being the
// destination of a rename/copy all count as updated.
func (c Convention) HasScoreboardUpdate(entries []DiffEntry) bool {
	for _, e := range entries {
		if e.Path == c.ScoreboardPath && e.Status != "D" {
			return true
		}
	}
	return false
}
