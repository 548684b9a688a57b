// Package linker computes and applies symbolic-link plans for resolved
// candidates.
package linker

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schlerp/find-mshr/internal/fileutil"
)

// Link pairs an absolute source path with the absolute destination at which
// the symlink will be created.
type Link struct {
	Source string `yaml:"source"`
	Dest   string `yaml:"dest"`
}

// Plan computes one link per candidate: target/<base name of source>
// pointing at the absolute source. It does not touch the file system beyond
// resolving absolute paths; in particular it does not check whether target
// exists.
func Plan(candidates []fileutil.Candidate, target string) ([]Link, error) {
	links := make([]Link, 0, len(candidates))
	for _, c := range candidates {
		source, err := filepath.Abs(c.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve source %s: %w", c.Path, err)
		}
		dest, err := filepath.Abs(filepath.Join(target, c.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve destination for %s: %w", c.Path, err)
		}
		links = append(links, Link{Source: source, Dest: dest})
	}
	return links, nil
}

// Apply creates the planned symlinks in order. The first failure propagates
// untouched; links created before it stay in place. Existing destinations
// are never overwritten.
func Apply(links []Link) error {
	for _, l := range links {
		if err := os.Symlink(l.Source, l.Dest); err != nil {
			return err
		}
	}
	return nil
}

// Render writes the dry-run form of the plan, one "dest -> source" line per
// link. The lines are a bijection with what Apply would create.
func Render(w io.Writer, links []Link) {
	for _, l := range links {
		fmt.Fprintf(w, "%s -> %s\n", l.Dest, l.Source)
	}
}
