// Package finder orchestrates the discovery of MSHR candidate paths:
// recursive traversal, accession allow-list filtering, and the substring
// allow/deny filters.
package finder

import (
	"path/filepath"
	"strings"

	"github.com/schlerp/find-mshr/internal/fileutil"
	"github.com/schlerp/find-mshr/internal/logger"
	"github.com/schlerp/find-mshr/internal/mshr"
)

// Default substring filters applied to the lower-cased path text. The deny
// list exists because MIXED isolates share naming with plain samples but
// must not be linked alongside them.
var (
	DefaultAllowTerms = []string{"mshr"}
	DefaultDenyTerms  = []string{"mixed"}
)

// Options configure a search.
type Options struct {
	// Root is the directory traversal starts from. Defaults to ".".
	Root string
	// Pattern is the glob matched against every entry's base name.
	// Defaults to "*", which matches files and directories alike.
	Pattern string
	// IDListFile optionally names a file holding whitespace-separated
	// accession numbers; when set, only candidates whose extracted
	// accession is in the list survive.
	IDListFile string
	// AllowTerms and DenyTerms are case-insensitive substring filters over
	// the path text. A candidate is kept only if at least one allow term
	// matches and no deny term matches; deny takes precedence. Nil means
	// the defaults above.
	AllowTerms []string
	DenyTerms  []string
	// Log receives diagnostic output. May be nil.
	Log *logger.ConsoleLogger
}

func (o *Options) applyDefaults() {
	if o.Root == "" {
		o.Root = "."
	}
	if o.Pattern == "" {
		o.Pattern = "*"
	}
	if o.AllowTerms == nil {
		o.AllowTerms = DefaultAllowTerms
	}
	if o.DenyTerms == nil {
		o.DenyTerms = DefaultDenyTerms
	}
}

// Find runs the search pipeline and returns the surviving candidates in
// traversal order. The accession allow-list, when configured, is loaded
// before any traversal happens so a missing list file fails without
// touching the tree.
func Find(opts Options) ([]fileutil.Candidate, error) {
	opts.applyDefaults()

	var idList map[int]struct{}
	if opts.IDListFile != "" {
		var err error
		idList, err = mshr.LoadIDList(opts.IDListFile)
		if err != nil {
			return nil, err
		}
		opts.Log.Debugf("loaded %d accessions from %s", len(idList), opts.IDListFile)
	}

	candidates, err := fileutil.Scan(opts.Root, opts.Pattern)
	if err != nil {
		return nil, err
	}
	opts.Log.Debugf("scanned %d entries under %s matching %q", len(candidates), opts.Root, opts.Pattern)

	if idList != nil {
		candidates = filterByAccession(candidates, idList)
		opts.Log.Debugf("%d candidates remain after accession filter", len(candidates))
	}

	candidates = filterByTerms(candidates, opts.AllowTerms, opts.DenyTerms)
	opts.Log.Debugf("%d candidates remain after allow/deny filters", len(candidates))

	return candidates, nil
}

// filterByAccession keeps candidates whose extracted accession appears in
// the allow-list. Candidates yielding no identifier are dropped here; only
// the accession component is consulted, never the suffix.
func filterByAccession(candidates []fileutil.Candidate, idList map[int]struct{}) []fileutil.Candidate {
	kept := candidates[:0]
	for _, c := range candidates {
		id, ok := mshr.Extract(c.Path)
		if !ok {
			continue
		}
		if _, ok := idList[id.Accession]; ok {
			kept = append(kept, c)
		}
	}
	return kept
}

// filterByTerms applies the substring allow/deny predicate to the
// lower-cased slash form of each candidate path. Deny wins: a path matching
// both an allow and a deny term is excluded.
func filterByTerms(candidates []fileutil.Candidate, allow, deny []string) []fileutil.Candidate {
	kept := candidates[:0]
	for _, c := range candidates {
		if keepPath(c.Path, allow, deny) {
			kept = append(kept, c)
		}
	}
	return kept
}

func keepPath(path string, allow, deny []string) bool {
	lowered := strings.ToLower(filepath.ToSlash(path))
	for _, d := range deny {
		if strings.Contains(lowered, d) {
			return false
		}
	}
	for _, a := range allow {
		if strings.Contains(lowered, a) {
			return true
		}
	}
	return false
}
