// Package fileutil provides the filesystem scanning used to discover target
// directories and the files to be sorted into them. Output is sorted and
// deterministic; non-fatal errors are collected so a single unreadable
// subdirectory doesn't abort a scan.
package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListTargets returns the names of the immediate subdirectories of root,
// sorted alphabetically. Hidden directories (starting with ".") are skipped;
// they are bookkeeping, not sorting destinations.
func ListTargets(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list target root: %w", err)
	}

	targets := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		targets = append(targets, entry.Name())
	}
	sort.Strings(targets)
	return targets, nil
}

// ScanOptions configures source file scanning.
type ScanOptions struct {
	// Recursive walks subdirectories; otherwise only top-level files are
	// returned.
	Recursive bool

	// ExcludeDirs is a list of directory names to skip during recursive
	// walks, in addition to hidden directories.
	ExcludeDirs []string
}

// ScanResult contains the outcome of a source scan.
type ScanResult struct {
	// Files contains paths relative to the scanned root, sorted
	// alphabetically. In recursive scans the relative path includes parent
	// directories, so their names participate in matching too.
	Files []string

	// Errors contains non-fatal errors encountered while scanning.
	Errors []error
}

// ScanFiles walks a source root for files to sort.
func ScanFiles(root string, opts ScanOptions) (*ScanResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access source root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source root is not a directory: %s", root)
	}

	excluded := make(map[string]bool, len(opts.ExcludeDirs))
	for _, name := range opts.ExcludeDirs {
		excluded[name] = true
	}

	result := &ScanResult{Files: []string{}, Errors: []error{}}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			return nil
		}
		if path == root {
			return nil
		}

		if d.IsDir() {
			if excluded[d.Name()] || strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if !opts.Recursive {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to resolve path %s: %w", path, err))
			return nil
		}
		result.Files = append(result.Files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk source root: %w", err)
	}

	sort.Strings(result.Files)
	return result, nil
}
