package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Planning.Dir != "docs/planning" {
		t.Errorf("expected default planning dir docs/planning, got %s", cfg.Planning.Dir)
	}
	if cfg.Planning.Scoreboard != "docs/planning/scoreboard.json" {
		t.Errorf("expected default scoreboard path, got %s", cfg.Planning.Scoreboard)
	}
	if cfg.Planning.DocExtension != ".md" {
		t.Errorf("expected default doc extension .md, got %s", cfg.Planning.DocExtension)
	}
	if cfg.Signal.Reaction != "eyes" {
		t.Errorf("expected default reaction eyes, got %s", cfg.Signal.Reaction)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing planning dir",
			modify:  func(c *Config) { c.Planning.Dir = "" },
			wantErr: true,
		},
		{
			name:    "doc extension without dot",
			modify:  func(c *Config) { c.Planning.DocExtension = "md" },
			wantErr: true,
		},
		{
			name:    "missing index file",
			modify:  func(c *Config) { c.Planning.IndexFile = "" },
			wantErr: true,
		},
		{
			name:    "missing scoreboard path",
			modify:  func(c *Config) { c.Planning.Scoreboard = "" },
			wantErr: true,
		},
		{
			name:    "missing bundle output",
			modify:  func(c *Config) { c.Bundle.Output = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	other := &Config{}
	other.Planning.Dir = "planning"
	other.Planning.Scoreboard = "planning/board.json"
	other.Bundle.Include = []string{"planning/**"}
	other.Signal.Reaction = "rocket"

	base.Merge(other)

	if base.Planning.Dir != "planning" {
		t.Errorf("Merge should override planning dir, got %s", base.Planning.Dir)
	}
	if base.Planning.Scoreboard != "planning/board.json" {
		t.Errorf("Merge should override scoreboard path, got %s", base.Planning.Scoreboard)
	}
	if base.Planning.DocExtension != ".md" {
		t.Errorf("Merge should keep unset fields, got %s", base.Planning.DocExtension)
	}
	if len(base.Bundle.Include) != 1 || base.Bundle.Include[0] != "planning/**" {
		t.Errorf("Merge should override bundle include, got %v", base.Bundle.Include)
	}
	if base.Signal.Reaction != "rocket" {
		t.Errorf("Merge should override reaction, got %s", base.Signal.Reaction)
	}

	// Merging nil is a no-op
	base.Merge(nil)
	if base.Planning.Dir != "planning" {
		t.Error("Merge(nil) should not modify config")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "specward.yaml")
	data := `
planning:
  dir: plans
  scoreboard: plans/scoreboard.json
signal:
  reaction: rocket
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Planning.Dir != "plans" {
		t.Errorf("Planning.Dir = %s, want plans", cfg.Planning.Dir)
	}
	if cfg.Planning.Scoreboard != "plans/scoreboard.json" {
		t.Errorf("Planning.Scoreboard = %s, want plans/scoreboard.json", cfg.Planning.Scoreboard)
	}
	// Unset fields keep defaults
	if cfg.Planning.DocExtension != ".md" {
		t.Errorf("Planning.DocExtension = %s, want .md", cfg.Planning.DocExtension)
	}
	if cfg.Signal.Reaction != "rocket" {
		t.Errorf("Signal.Reaction = %s, want rocket", cfg.Signal.Reaction)
	}
}

func TestConvention(t *testing.T) {
	conv := DefaultConfig().Planning.Convention()

	if !conv.IsSpecArtifact("docs/planning/foo.md") {
		t.Error("default convention should classify docs/planning/foo.md as a spec artifact")
	}
	if conv.ScoreboardPath != "docs/planning/scoreboard.json" {
		t.Errorf("ScoreboardPath = %s", conv.ScoreboardPath)
	}
}
