package search

import (
	"slices"
	"strings"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

// Refine keeps the candidates whose material name, description or category
// contains term (case-insensitive), newest first, at most limit of them.
// The input slice is left untouched.
func Refine(candidates []domain.Listing, term string, limit int) []domain.Listing {
	needle := strings.ToLower(term)

	out := make([]domain.Listing, 0, min(len(candidates), max(limit, 0)))
	for _, l := range candidates {
		if matchesText(l, needle) {
			out = append(out, l)
		}
	}

	slices.SortStableFunc(out, func(a, b domain.Listing) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func matchesText(l domain.Listing, needle string) bool {
	return strings.Contains(strings.ToLower(l.MaterialName), needle) ||
		strings.Contains(strings.ToLower(l.Description), needle) ||
		strings.Contains(strings.ToLower(string(l.Category)), needle)
}
