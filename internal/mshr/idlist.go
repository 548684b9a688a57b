package mshr

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadIDList reads an accession allow-list from path. The file format is
// plain text holding whitespace-separated integers; line structure is
// irrelevant. Only the accession component of an identifier is matched
// against the list, never the suffix.
func LoadIDList(path string) (map[int]struct{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ID list %s: %w", path, err)
	}

	ids := make(map[int]struct{})
	for _, tok := range strings.Fields(string(data)) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid accession %q in %s: %w", tok, path, err)
		}
		ids[n] = struct{}{}
	}
	return ids, nil
}
