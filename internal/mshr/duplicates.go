package mshr

import (
	"fmt"

	"github.com/schlerp/find-mshr/internal/fileutil"
)

// ResolutionPolicy selects how a group of candidates sharing one identifier
// collapses to a single winner.
type ResolutionPolicy string

// PolicyNewest keeps the candidate with the greatest modification time.
// It is currently the only defined policy.
const PolicyNewest ResolutionPolicy = "newest"

// SolveDuplicates collapses candidates that share an identifier down to
// exactly one winner per distinct identifier. Candidates whose paths yield
// no identifier are dropped, even when earlier filtering let them through.
//
// Under PolicyNewest the winner of a multi-member group is the candidate
// with the greatest modification time; the comparison is strict
// greater-than, so ties keep the first candidate scanned. Any other policy
// value is an error as soon as a multi-member group needs resolving.
func SolveDuplicates(candidates []fileutil.Candidate, policy ResolutionPolicy) ([]fileutil.Candidate, error) {
	groups := make(map[ID][]fileutil.Candidate)
	var order []ID
	for _, c := range candidates {
		id, ok := Extract(c.Path)
		if !ok {
			continue
		}
		if _, seen := groups[id]; !seen {
			order = append(order, id)
		}
		groups[id] = append(groups[id], c)
	}

	resolved := make([]fileutil.Candidate, 0, len(order))
	for _, id := range order {
		group := groups[id]
		if len(group) == 1 {
			resolved = append(resolved, group[0])
			continue
		}
		if policy != PolicyNewest {
			return nil, fmt.Errorf("unsupported resolution policy %q", policy)
		}
		newest := group[0]
		for _, c := range group[1:] {
			if c.ModTime.After(newest.ModTime) {
				newest = c
			}
		}
		resolved = append(resolved, newest)
	}

	return resolved, nil
}
