package tracking

import (
	"reflect"
	"testing"
)

func TestParseNameStatus(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []DiffEntry
	}{
		{
			name:     "single addition",
			input:    "A\tfoo/bar.md",
			expected: []DiffEntry{{Status: "A", Path: "foo/bar.md"}},
		},
		{
			name:  "mixed statuses preserve order",
			input: "A\tdocs/planning/a.md\nM\tmain.go\nD\told.txt",
			expected: []DiffEntry{
				{Status: "A", Path: "docs/planning/a.md"},
				{Status: "M", Path: "main.go"},
				{Status: "D", Path: "old.txt"},
			},
		},
		{
			name:  "rename emits both sides",
			input: "R100\told/a.md\tnew/a.md",
			expected: []DiffEntry{
				{Status: "R100", Path: "old/a.md"},
				{Status: "R100", Path: "new/a.md"},
			},
		},
		{
			name:  "copy emits both sides",
			input: "C75\tsrc/a.md\tsrc/b.md",
			expected: []DiffEntry{
				{Status: "C75", Path: "src/a.md"},
				{Status: "C75", Path: "src/b.md"},
			},
		},
		{
			name:     "blank lines produce no entries",
			input:    "\n\n\n",
			expected: nil,
		},
		{
			name:     "malformed line without tab is skipped",
			input:    "not a diff line",
			expected: nil,
		},
		{
			name:  "trailing newline ignored",
			input: "M\tREADME.md\n",
			expected: []DiffEntry{
				{Status: "M", Path: "README.md"},
			},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseNameStatus(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("ParseNameStatus(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
