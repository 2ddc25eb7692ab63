package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Scanner scans for Java test files in a directory
type Scanner struct {
	skipDirs map[string]bool
	glob     string
}

// NewScanner creates a new Scanner with the given directories to skip and the
// glob test file names must match
func NewScanner(skipDirs []string, glob string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	if glob == "" {
		glob = "*Test.java"
	}
	return &Scanner{skipDirs: skipMap, glob: glob}
}

// Scan finds all test files in the given root directory
func (s *Scanner) Scan(root string) ([]string, error) {
	var testfiles []string

	// Clean and validate the root path
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if path != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}

			if s.skipDirs[name] {
				return filepath.SkipDir
			}

			return nil
		}

		if ok, _ := doublestar.Match(s.glob, d.Name()); ok {
			testfiles = append(testfiles, path)
		}

		return nil
	})

	return testfiles, err
}
