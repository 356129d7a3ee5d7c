package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/ytget/catalog-dashboard/internal/model"
)

// SortKey selects the display order
type SortKey string

const (
	SortNone      SortKey = "none"
	SortName      SortKey = "name"
	SortPriceAsc  SortKey = "price"
	SortPriceDesc SortKey = "-price"
)

// SortKeys lists the accepted keys in menu order
func SortKeys() []SortKey {
	return []SortKey{SortNone, SortName, SortPriceAsc, SortPriceDesc}
}

// ParseSortKey validates a sort key; "" means SortNone
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortNone, nil
	}
	key := SortKey(strings.ToLower(s))
	if slices.Contains(SortKeys(), key) {
		return key, nil
	}
	return "", fmt.Errorf("invalid sort %q: must be one of none, name, price, -price", s)
}

// Sort returns a sorted copy. The sort is stable and SortNone keeps the
// input order. Products without a price go last in both price orders.
func Sort(products []model.Product, key SortKey) []model.Product {
	out := slices.Clone(products)
	if out == nil {
		out = []model.Product{}
	}

	switch key {
	case SortName:
		slices.SortStableFunc(out, func(a, b model.Product) int {
			return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	case SortPriceAsc, SortPriceDesc:
		slices.SortStableFunc(out, func(a, b model.Product) int {
			switch {
			case !a.Price.Set && !b.Price.Set:
				return 0
			case !a.Price.Set:
				return 1
			case !b.Price.Set:
				return -1
			}
			if key == SortPriceDesc {
				return cmp.Compare(b.Price.Amount, a.Price.Amount)
			}
			return cmp.Compare(a.Price.Amount, b.Price.Amount)
		})
	}
	return out
}
