// Package scoreboard loads and validates the capability scoreboard, the
// JSON registry mapping capability identifiers to an implementation
// maturity state.
package scoreboard

// State represents the implementation maturity of a capability.
// The expected direction of travel is spec-only -> scaffold -> operational,
// but regression is not forbidden.
type State string

const (
	// StateSpecOnly means the capability exists only as a planning document.
	StateSpecOnly State = "spec-only"

	// StateScaffold means entry points and wiring exist without the full
	// behavior behind them.
	StateScaffold State = "scaffold"

	// StateOperational means the capability is implemented and exercised.
	StateOperational State = "operational"
)

// States lists the allowed maturity states in progression order.
var States = []State{StateSpecOnly, StateScaffold, StateOperational}

// IsValid checks if a state is a known maturity state.
func (s State) IsValid() bool {
	switch s {
	case StateSpecOnly, StateScaffold, StateOperational:
		return true
	}
	return false
}

// String returns the string representation of the state.
func (s State) String() string {
	return string(s)
}

// ParseState converts a string to a State, returning empty for invalid values.
func ParseState(v string) State {
	s := State(v)
	if s.IsValid() {
		return s
	}
	return ""
}
