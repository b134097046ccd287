package scoreboard

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Capability is one trackable unit of functionality.
type Capability struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	State       State    `json:"state"`
	Evidence    []string `json:"evidence,omitempty"`
}

// Scoreboard is the declarative capability registry. It is read-only to
// this tool: the tracking policy requires that an author touched it in the
// same change set, never that the tool rewrites it.
type Scoreboard struct {
	Version      int          `json:"version"`
	Capabilities []Capability `json:"capabilities"`
}

// Load reads and parses the scoreboard file. A missing or unparsable file is
// fatal for the whole check; errors propagate to the caller.
func Load(path string) (*Scoreboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scoreboard: %w", err)
	}

	var board Scoreboard
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, fmt.Errorf("parse scoreboard %s: %w", path, err)
	}
	return &board, nil
}

// Validate enforces the scoreboard invariants, failing fast on the first
// violation. It runs on every invocation, independent of the diff-based
// policy, so the registry's internal consistency is always checked.
func (s *Scoreboard) Validate() error {
	if len(s.Capabilities) == 0 {
		return fmt.Errorf("scoreboard must contain at least one capability")
	}

	for _, c := range s.Capabilities {
		if c.ID == "" {
			return fmt.Errorf("every capability requires a non-empty id")
		}
		if c.Description == "" {
			return fmt.Errorf("capability %s requires a non-empty description", c.ID)
		}
	}

	seen := make(map[string]bool, len(s.Capabilities))
	for _, c := range s.Capabilities {
		if seen[c.ID] {
			return fmt.Errorf("duplicate capability id: %s", c.ID)
		}
		seen[c.ID] = true
	}

	for _, c := range s.Capabilities {
		if !c.State.IsValid() {
			return fmt.Errorf("capability %s has invalid state %q (allowed: %s)",
				c.ID, string(c.State), strings.Join(stateNames(), ", "))
		}
	}

	return nil
}

func stateNames() []string {
	names := make([]string, len(States))
	for i, s := range States {
		names[i] = s.String()
	}
	return names
}
