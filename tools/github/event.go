package github

import (
	"encoding/json"
	"fmt"
	"os"
)

// TargetKind distinguishes what a reaction attaches to.
type TargetKind string

// TargetIssue and TargetComment enumerate the supported reaction targets.
const (
	TargetIssue   TargetKind = "issue"
	TargetComment TargetKind = "comment"
)

// String returns the string representation of the target kind.
func (k TargetKind) String() string {
	return string(k)
}

// Target identifies the issue or comment a reaction is posted to.
type Target struct {
	Kind TargetKind
	ID   int64
}

// eventPayload models the slice of the GitHub event document the resolver
// needs.
type eventPayload struct {
	Issue struct {
		Number int64 `json:"number"`
	} `json:"issue"`
	Comment struct {
		ID int64 `json:"id"`
	} `json:"comment"`
}

// ResolveTarget derives the reaction target from an event name and the raw
// event payload. It is a pure function: all environment and filesystem
// access lives in Environment.
func ResolveTarget(eventName string, payload []byte) (Target, error) {
	var event eventPayload
	if err := json.Unmarshal(payload, &event); err != nil {
		return Target{}, fmt.Errorf("parse event payload: %w", err)
	}

	switch eventName {
	case "issues":
		if event.Issue.Number == 0 {
			return Target{}, fmt.Errorf("issues event carries no issue number")
		}
		return Target{Kind: TargetIssue, ID: event.Issue.Number}, nil
	case "issue_comment":
		if event.Comment.ID == 0 {
			return Target{}, fmt.Errorf("issue_comment event carries no comment id")
		}
		return Target{Kind: TargetComment, ID: event.Comment.ID}, nil
	default:
		return Target{}, fmt.Errorf("unsupported event %q (expected issues or issue_comment)", eventName)
	}
}

// Environment carries the GitHub Actions context a reaction needs.
type Environment struct {
	EventName  string
	EventPath  string
	Repository string
}

// EnvironmentFromProcess reads the GitHub Actions variables. This is the
// only place the package touches the process environment.
func EnvironmentFromProcess() Environment {
	return Environment{
		EventName:  os.Getenv("GITHUB_EVENT_NAME"),
		EventPath:  os.Getenv("GITHUB_EVENT_PATH"),
		Repository: os.Getenv("GITHUB_REPOSITORY"),
	}
}

// Validate checks that the environment carries everything target resolution
// needs.
func (env Environment) Validate() error {
	if env.EventName == "" {
		return fmt.Errorf("GITHUB_EVENT_NAME is not set")
	}
	if env.EventPath == "" {
		return fmt.Errorf("GITHUB_EVENT_PATH is not set")
	}
	if env.Repository == "" {
		return fmt.Errorf("GITHUB_REPOSITORY is not set")
	}
	return nil
}

// ResolveTarget reads the event document and resolves the reaction target
// for the current run.
func (env Environment) ResolveTarget() (Target, error) {
	if err := env.Validate(); err != nil {
		return Target{}, err
	}

	payload, err := os.ReadFile(env.EventPath)
	if err != nil {
		return Target{}, fmt.Errorf("read event payload: %w", err)
	}
	return ResolveTarget(env.EventName, payload)
}
