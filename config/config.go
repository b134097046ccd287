// Package config provides configuration loading and management for specward.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/specward/specward/tracking"
)

// Config represents the complete specward configuration
type Config struct {
	Repo     RepoConfig     `yaml:"repo"`
	Planning PlanningConfig `yaml:"planning"`
	Bundle   BundleConfig   `yaml:"bundle"`
	Signal   SignalConfig   `yaml:"signal"`
}

// RepoConfig configures the repository settings
type RepoConfig struct {
	// Path is the repository root path (auto-detected from git if empty)
	Path string `yaml:"path"`
}

// PlanningConfig fixes the spec-artifact path convention
type PlanningConfig struct {
	// Dir is the directory holding planning/spec documents
	Dir string `yaml:"dir"`
	// DocExtension is the documentation file extension, including the dot
	DocExtension string `yaml:"doc_extension"`
	// IndexFile is the planning directory's own index file
	IndexFile string `yaml:"index_file"`
	// Scoreboard is the repository-relative path of the capability scoreboard
	Scoreboard string `yaml:"scoreboard"`
}

// BundleConfig configures the distributable bundle
type BundleConfig struct {
	// Include lists doublestar glob patterns selecting bundle contents
	Include []string `yaml:"include"`
	// Exclude lists patterns removed from the selection (wins over include)
	Exclude []string `yaml:"exclude"`
	// Output is the zip path, relative to the repository root
	Output string `yaml:"output"`
}

// SignalConfig configures progress signaling on GitHub
type SignalConfig struct {
	// Reaction is the default reaction content posted by `specward react`
	Reaction string `yaml:"reaction"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Repo: RepoConfig{
			Path: "", // Auto-detect
		},
		Planning: PlanningConfig{
			Dir:          "docs/planning",
			DocExtension: ".md",
			IndexFile:    "README.md",
			Scoreboard:   "docs/planning/scoreboard.json",
		},
		Bundle: BundleConfig{
			Include: []string{
				"docs/planning/**/*.md",
				"docs/planning/scoreboard.json",
			},
			Exclude: nil,
			Output:  "dist/specward-bundle.zip",
		},
		Signal: SignalConfig{
			Reaction: "eyes",
		},
	}
}

// Convention returns the tracking path convention derived from the planning
// configuration.
func (p PlanningConfig) Convention() tracking.Convention {
	return tracking.Convention{
		PlanningDir:    p.Dir,
		DocExtension:   p.DocExtension,
		IndexFile:      p.IndexFile,
		ScoreboardPath: p.Scoreboard,
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Planning.Dir == "" {
		return fmt.Errorf("planning.dir is required")
	}
	if !strings.HasPrefix(c.Planning.DocExtension, ".") {
		return fmt.Errorf("planning.doc_extension must start with a dot")
	}
	if c.Planning.IndexFile == "" {
		return fmt.Errorf("planning.index_file is required")
	}
	if c.Planning.Scoreboard == "" {
		return fmt.Errorf("planning.scoreboard is required")
	}
	if c.Bundle.Output == "" {
		return fmt.Errorf("bundle.output is required")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Repo
	if other.Repo.Path != "" {
		c.Repo.Path = other.Repo.Path
	}

	// Planning
	if other.Planning.Dir != "" {
		c.Planning.Dir = other.Planning.Dir
	}
	if other.Planning.DocExtension != "" {
		c.Planning.DocExtension = other.Planning.DocExtension
	}
	if other.Planning.IndexFile != "" {
		c.Planning.IndexFile = other.Planning.IndexFile
	}
	if other.Planning.Scoreboard != "" {
		c.Planning.Scoreboard = other.Planning.Scoreboard
	}

	// Bundle
	if len(other.Bundle.Include) > 0 {
		c.Bundle.Include = other.Bundle.Include
	}
	if len(other.Bundle.Exclude) > 0 {
		c.Bundle.Exclude = other.Bundle.Exclude
	}
	if other.Bundle.Output != "" {
		c.Bundle.Output = other.Bundle.Output
	}

	// Signal
	if other.Signal.Reaction != "" {
		c.Signal.Reaction = other.Signal.Reaction
	}
}
