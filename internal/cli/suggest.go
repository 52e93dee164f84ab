package cli

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"regret-journal/internal/model"
)

// closestCategory returns the category name nearest to name, or "" when none
// is close enough to be a likely typo.
func closestCategory(name string, categories []model.Category) string {
	best, bestDist := "", -1
	target := strings.ToLower(name)
	for _, c := range categories {
		d := levenshtein.ComputeDistance(target, strings.ToLower(c.Name))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c.Name, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(name)/3) {
		return ""
	}
	return best
}
