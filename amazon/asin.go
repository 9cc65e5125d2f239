package amazon

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	asinBare = regexp.MustCompile(`^[A-Za-z0-9]{10}$`)
	asinPath = regexp.MustCompile(`(?i)/(?:dp/product|gp/product|gp/aw/d|dp)/([A-Za-z0-9]{10})(?:[/?]|$)`)
)

// ExtractASIN normalizes a user-supplied product identifier. It accepts
// either a bare 10-character alphanumeric ASIN or a product URL
// containing a /dp/, /dp/product/, /gp/product/ or /gp/aw/d/ segment.
// The result is always upper-cased.
func ExtractASIN(s string) (string, error) {
	s = strings.TrimSpace(s)
	if asinBare.MatchString(s) {
		return strings.ToUpper(s), nil
	}
	if m := asinPath.FindStringSubmatch(s); m != nil {
		return strings.ToUpper(m[1]), nil
	}
	return "", fmt.Errorf("%w: no ASIN found in %q", ErrInvalidArgument, s)
}

// NormalizeItemIDs extracts and upper-cases every identifier, dropping
// duplicates while preserving first-seen order. An empty input is an
// invalid-argument error; length limits are enforced by the assembler.
func NormalizeItemIDs(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: item id list is empty", ErrInvalidArgument)
	}

	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		asin, err := ExtractASIN(id)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[asin]; ok {
			continue
		}
		seen[asin] = struct{}{}
		out = append(out, asin)
	}
	return out, nil
}

// ChunkItemIDs splits ids into groups of at most size elements,
// preserving order. Used by the legacy backend to fan a large GetItems
// call out into several requests.
func ChunkItemIDs(ids []string, size int) [][]string {
	if size <= 0 || len(ids) == 0 {
		return nil
	}
	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
