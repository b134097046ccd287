// Package bundle assembles planning documents and the scoreboard into a
// distributable zip archive.
package bundle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/klauspost/compress/zip"
)

// Manifest selects the files that make up a bundle.
type Manifest struct {
	// Include lists doublestar glob patterns, relative to the repo root.
	Include []string
	// Exclude lists patterns removed from the selection; excludes win.
	Exclude []string
	// Output is the archive path, relative to the repo root unless absolute.
	Output string
}

// Result describes a written bundle.
type Result struct {
	// Output is the absolute path of the written archive.
	Output string
	// Files lists the bundled repository-relative paths in archive order.
	Files []string
}

// Select resolves the manifest patterns against repoRoot and returns the
// matching repository-relative paths, deduplicated and lexically sorted so
// repeated runs over the same tree bundle identically. Directories and the
// output archive itself are never selected.
func (m Manifest) Select(repoRoot string) ([]string, error) {
	rootFS := os.DirFS(repoRoot)
	relOutput := filepath.ToSlash(m.Output)

	seen := make(map[string]bool)
	var files []string

	for _, pattern := range m.Include {
		matches, err := doublestar.Glob(rootFS, pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] || match == relOutput {
				continue
			}

			info, err := os.Stat(filepath.Join(repoRoot, filepath.FromSlash(match)))
			if err != nil || info.IsDir() {
				continue
			}

			excluded, err := m.isExcluded(match)
			if err != nil {
				return nil, err
			}
			if excluded {
				continue
			}

			seen[match] = true
			files = append(files, match)
		}
	}

	sort.Strings(files)
	return files, nil
}

func (m Manifest) isExcluded(path string) (bool, error) {
	for _, pattern := range m.Exclude {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// Build writes the bundle archive. Entry metadata is fixed (zeroed
// timestamps) so repeated builds of the same tree produce identical
// archives. An empty selection is an error: a bundle with nothing in it
// indicates a misconfigured manifest, not a valid distributable.
func (m Manifest) Build(repoRoot string) (*Result, error) {
	if m.Output == "" {
		return nil, fmt.Errorf("bundle output path is required")
	}

	files, err := m.Select(repoRoot)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("bundle selects no files (include: %s)", strings.Join(m.Include, ", "))
	}

	outPath := m.Output
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(repoRoot, outPath)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("create archive: %w", err)
	}
	if err := writeArchive(out, repoRoot, files); err != nil {
		return nil, err
	}

	return &Result{Output: outPath, Files: files}, nil
}

// writeArchive writes the selected files to out as a zip and closes out. A
// close failure can mean a truncated archive, so it is propagated rather
// than ignored.
func writeArchive(out io.WriteCloser, repoRoot string, files []string) error {
	zw := zip.NewWriter(out)
	for _, rel := range files {
		if err := addEntry(zw, repoRoot, rel); err != nil {
			zw.Close()
			out.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		out.Close()
		return fmt.Errorf("finalize archive: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}
	return nil
}

func addEntry(zw *zip.Writer, repoRoot, rel string) error {
	header := &zip.FileHeader{
		Name:   rel,
		Method: zip.Deflate,
	}

	w, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("create entry %s: %w", rel, err)
	}

	f, err := os.Open(filepath.Join(repoRoot, filepath.FromSlash(rel)))
	if err != nil {
		return fmt.Errorf("open %s: %w", rel, err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("write entry %s: %w", rel, err)
	}
	return nil
}
