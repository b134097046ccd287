package scoreboard

import (
	"fmt"
	"strings"
)

// Summary holds capability counts grouped by maturity state.
type Summary struct {
	Total       int `json:"total"`
	SpecOnly    int `json:"spec_only"`
	Scaffold    int `json:"scaffold"`
	Operational int `json:"operational"`
}

// Summarize tallies capabilities by state.
func (s *Scoreboard) Summarize() Summary {
	sum := Summary{Total: len(s.Capabilities)}
	for _, c := range s.Capabilities {
		switch c.State {
		case StateSpecOnly:
			sum.SpecOnly++
		case StateScaffold:
			sum.Scaffold++
		case StateOperational:
			sum.Operational++
		}
	}
	return sum
}

// Markdown renders the summary as a human-readable block for CI logs and
// pull request comments.
func (sum Summary) Markdown() string {
	var b strings.Builder
	b.WriteString("## Capability scoreboard\n\n")
	fmt.Fprintf(&b, "- spec-only: %d\n", sum.SpecOnly)
	fmt.Fprintf(&b, "- scaffold: %d\n", sum.Scaffold)
	fmt.Fprintf(&b, "- operational: %d\n\n", sum.Operational)
	fmt.Fprintf(&b, "**%d/%d operational**\n", sum.Operational, sum.Total)
	return b.String()
}
