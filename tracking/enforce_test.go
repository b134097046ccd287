package tracking

import (
	"errors"
	"strings"
	"testing"
)

func TestEnforceTracking(t *testing.T) {
	conv := DefaultConvention()

	t.Run("no new specs succeeds silently", func(t *testing.T) {
		entries := []DiffEntry{
			{Status: "M", Path: "src/main.go"},
			{Status: "M", Path: "docs/planning/existing.md"},
		}
		if err := conv.EnforceTracking(entries); err != nil {
			t.Errorf("EnforceTracking = %v, want nil", err)
		}
	})

	t.Run("new spec without scoreboard touch fails", func(t *testing.T) {
		entries := []DiffEntry{
			{Status: "A", Path: "docs/planning/x.md"},
		}
		err := conv.EnforceTracking(entries)
		if err == nil {
			t.Fatal("expected policy error")
		}

		var policyErr *PolicyError
		if !errors.As(err, &policyErr) {
			t.Fatalf("expected *PolicyError, got %T", err)
		}
		if len(policyErr.Added) != 1 || policyErr.Added[0] != "docs/planning/x.md" {
			t.Errorf("Added = %v, want [docs/planning/x.md]", policyErr.Added)
		}
		if !strings.Contains(err.Error(), "docs/planning/x.md") {
			t.Errorf("error message should name the offending path: %s", err.Error())
		}
		if !strings.Contains(err.Error(), conv.ScoreboardPath) {
			t.Errorf("error message should name the scoreboard path: %s", err.Error())
		}
	})

	t.Run("new spec with scoreboard modification succeeds", func(t *testing.T) {
		entries := []DiffEntry{
			{Status: "A", Path: "docs/planning/x.md"},
			{Status: "M", Path: conv.ScoreboardPath},
		}
		if err := conv.EnforceTracking(entries); err != nil {
			t.Errorf("EnforceTracking = %v, want nil", err)
		}
	})

	t.Run("scoreboard deletion does not satisfy the guard", func(t *testing.T) {
		entries := []DiffEntry{
			{Status: "A", Path: "docs/planning/x.md"},
			{Status: "D", Path: conv.ScoreboardPath},
		}
		if err := conv.EnforceTracking(entries); err == nil {
			t.Error("expected policy error when scoreboard is deleted")
		}
	})

	t.Run("violation lists every added artifact", func(t *testing.T) {
		entries := []DiffEntry{
			{Status: "A", Path: "docs/planning/b.md"},
			{Status: "A", Path: "docs/planning/a.md"},
		}
		err := conv.EnforceTracking(entries)
		if err == nil {
			t.Fatal("expected policy error")
		}
		var policyErr *PolicyError
		if !errors.As(err, &policyErr) {
			t.Fatalf("expected *PolicyError, got %T", err)
		}
		if len(policyErr.Added) != 2 {
			t.Errorf("Added = %v, want two paths", policyErr.Added)
		}
		if policyErr.Added[0] != "docs/planning/a.md" {
			t.Errorf("Added paths should be sorted, got %v", policyErr.Added)
		}
	})
}
