// Package fileutil provides recursive file-system traversal with glob
// matching for candidate discovery.
package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Candidate is a file-system entry discovered during a scan. The
// modification time is captured at discovery time so later pipeline stages
// never touch the file system again.
type Candidate struct {
	// Path is the entry's path as encountered during traversal.
	Path string
	// ModTime is the entry's modification time at scan time.
	ModTime time.Time
}

// Name returns the base name of the candidate path.
func (c Candidate) Name() string {
	return filepath.Base(c.Path)
}

// Scan recursively enumerates every entry under root whose base name
// matches the glob pattern. Directories count as entries too, as do hidden
// files and directories; only the root itself is excluded. Results follow
// traversal order and are not sorted.
func Scan(root, pattern string) ([]Candidate, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access root directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	// Validate the glob up front so a malformed pattern fails loudly
	// instead of silently matching nothing.
	if _, err := filepath.Match(pattern, "probe"); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	var candidates []Candidate
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if ok, _ := filepath.Match(pattern, d.Name()); !ok {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		candidates = append(candidates, Candidate{Path: path, ModTime: fi.ModTime()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return candidates, nil
}
