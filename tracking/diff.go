// Package tracking enforces the spec-to-implementation tracking policy:
// a change set that introduces new planning documents must also touch the
// capability scoreboard in the same range.
package tracking

import "strings"

// DiffEntry is one row of `git diff --name-status` output.
type DiffEntry struct {
	Status string
	Path   string
}

// ParseNameStatus parses raw `git diff --name-status` output into entries.
// Blank lines and lines with fewer than two tab-separated fields are skipped
// silently; trailing blanks are a normal artifact of command output.
//
// Rename and copy lines (status R or C, with an optional similarity score
// such as R100) carry two paths. Both sides are emitted with the same status
// string so callers can match either end of the rename.
func ParseNameStatus(diffText string) []DiffEntry {
	var entries []DiffEntry

	for _, line := range strings.Split(diffText, "\n") {
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}

		status := strings.TrimSpace(fields[0])
		if status == "" {
			continue
		}

		if strings.HasPrefix(status, "R") || strings.HasPrefix(status, "C") {
			for _, p := range fields[1:] {
				p = strings.TrimSpace(p)
				if p == "" {
					continue
				}
				entries = append(entries, DiffEntry{Status: status, Path: p})
			}
			continue
		}

		entries = append(entries, DiffEntry{Status: status, Path: strings.TrimSpace(fields[1])})
	}

	return entries
}
