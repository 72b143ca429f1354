package store

import (
	"context"
	"strings"
)

// containmentScore rates how much of the user's text is covered by a
// catalog name: the fraction of runes in query that appear anywhere in
// candidate, case-folded. Not positional and not an edit distance. This
// exact rule decides which canonical name gets persisted, so it must not
// be swapped for a smarter match.
func containmentScore(query, candidate string) float64 {
	q := strings.ToLower(query)
	set := make(map[rune]struct{})
	for _, r := range strings.ToLower(candidate) {
		set[r] = struct{}{}
	}

	total, hits := 0, 0
	for _, r := range q {
		total++
		if _, ok := set[r]; ok {
			hits++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// bestMatch picks the highest-scoring candidate; ties go to the first
// maximum in iteration order.
func bestMatch(query string, candidates []string) (string, float64) {
	best := ""
	bestScore := -1.0
	for _, c := range candidates {
		if score := containmentScore(query, c); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best, bestScore
}

// ResolveProductName matches a free-text product description against the
// official catalog for the given brand. Returns ("", false) when the brand
// is absent or has no catalog entries.
func (s *Store) ResolveProductName(ctx context.Context, brand, description string) (string, bool) {
	if strings.TrimSpace(brand) == "" {
		return "", false
	}

	var names []string
	err := s.db.SelectContext(ctx, &names,
		`SELECT product_name FROM official_products WHERE LOWER(brand) = LOWER(?) ORDER BY id`, brand)
	if err != nil || len(names) == 0 {
		return "", false
	}

	name, _ := bestMatch(description, names)
	return name, true
}
