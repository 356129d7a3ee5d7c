package query

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ytget/catalog-dashboard/internal/model"
)

// Apply returns the products whose lowercased name contains the lowercased
// search text and whose category equals category exactly. An empty search
// matches every product and an empty category matches every category.
// Relative order is preserved.
func Apply(products []model.Product, search, category string) []model.Product {
	// Casers carry state, so each call gets its own.
	lower := cases.Lower(language.Und)
	needle := lower.String(search)

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if needle != "" {
			if p.Name == "" || !strings.Contains(lower.String(p.Name), needle) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
