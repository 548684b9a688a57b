// Package mshr implements extraction and handling of MSHR sample
// identifiers embedded in file names, plus the duplicate-resolution policy
// that collapses multiple files carrying the same identifier.
package mshr

import (
	"path/filepath"
	"regexp"
	"strconv"
)

// idPattern captures the accession number following the literal MSHR marker
// and the run/replicate number following the next underscore. An optional
// MIXED marker and a run of word/hyphen characters may sit between the two;
// the optional R before the second number marks a replicate.
var idPattern = regexp.MustCompile(`(?:[a-zA-Z_/\\]*)MSHR([0-9]+)[MIXED]?[\w-]*_R?([0-9]+)`)

// ID is the composite sample identifier used as the deduplication key. An
// accession identifies a biological isolate; the suffix distinguishes
// sequencing runs or replicates of the same accession.
type ID struct {
	Accession int
	Suffix    int
}

// String renders the identifier in its conventional "<accession>-<suffix>"
// form.
func (id ID) String() string {
	return strconv.Itoa(id.Accession) + "-" + strconv.Itoa(id.Suffix)
}

// Extract parses the MSHR identifier embedded in path. The boolean is false
// when the path does not encode an identifier; callers must treat that as
// "not an MSHR file" and skip the path, never as an error. Leading zeros in
// either numeric component are normalized away by integer conversion.
func Extract(path string) (ID, bool) {
	m := idPattern.FindStringSubmatch(filepath.ToSlash(path))
	if m == nil {
		return ID{}, false
	}
	accession, err := strconv.Atoi(m[1])
	if err != nil {
		return ID{}, false
	}
	suffix, err := strconv.Atoi(m[2])
	if err != nil {
		return ID{}, false
	}
	return ID{Accession: accession, Suffix: suffix}, true
}
