package query

// DefaultPageSize is used when a page size below one is requested
const DefaultPageSize = 10

// Page is one bounded slice of a sequence
type Page[T any] struct {
	Items      []T
	Page       int // 1-based, always within [1, TotalPages]
	PageSize   int
	TotalPages int // at least 1
	Total      int
}

// Paginate clamps requested into [1, TotalPages] and returns that page.
// An empty sequence has exactly one empty page.
func Paginate[T any](items []T, pageSize, requested int) Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	totalPages := TotalPages(total, pageSize)
	page := clamp(requested, 1, totalPages)

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)

	pageItems := make([]T, 0, end-start)
	if start < end {
		pageItems = append(pageItems, items[start:end]...)
	}

	return Page[T]{
		Items:      pageItems,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Total:      total,
	}
}

// TotalPages returns max(1, ceil(n/pageSize))
func TotalPages(n, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return max(1, (n+pageSize-1)/pageSize)
}

// PrevPage steps back one page, staying on page 1 at the start
func PrevPage(page int) int {
	if page > 1 {
		return page - 1
	}
	return 1
}

// NextPage steps forward one page, staying on the last page at the end
func NextPage(page, totalPages int) int {
	if page < totalPages {
		return page + 1
	}
	return max(1, totalPages)
}

// HasPrev reports whether a previous page exists
func (p Page[T]) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a next page exists
func (p Page[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

// Range returns the 1-based positions of the first and last item on the
// page, or 0, 0 for an empty page.
func (p Page[T]) Range() (first, last int) {
	if len(p.Items) == 0 {
		return 0, 0
	}
	first = (p.Page-1)*p.PageSize + 1
	return first, first + len(p.Items) - 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
