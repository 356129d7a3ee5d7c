package query

import "github.com/ytget/catalog-dashboard/internal/model"

// ViewState is everything the user controls about the product view. Methods
// return modified copies; the presentation layer owns the single instance.
type ViewState struct {
	Search   string
	Category string
	Sort     SortKey
	Page     int
	PageSize int
}

// View is the result of applying a ViewState to a collection
type View struct {
	State   ViewState // page clamped to the computed range
	Matched int       // products left after filtering
	Page    Page[model.Product]
}

// NewViewState returns the initial state: no filters, first page
func NewViewState(pageSize int) ViewState {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return ViewState{Sort: SortNone, Page: 1, PageSize: pageSize}
}

// WithSearch changes the search text and returns to the first page
func (s ViewState) WithSearch(search string) ViewState {
	s.Search = search
	s.Page = 1
	return s
}

// WithCategory changes the category filter and returns to the first page
func (s ViewState) WithCategory(category string) ViewState {
	s.Category = category
	s.Page = 1
	return s
}

// WithSort changes the order and returns to the first page
func (s ViewState) WithSort(key SortKey) ViewState {
	s.Sort = key
	s.Page = 1
	return s
}

// WithPage jumps to page; Compute clamps it
func (s ViewState) WithPage(page int) ViewState {
	s.Page = page
	return s
}

// Prev moves one page back if possible
func (s ViewState) Prev() ViewState {
	s.Page = PrevPage(s.Page)
	return s
}

// Next moves one page forward if possible
func (s ViewState) Next(totalPages int) ViewState {
	s.Page = NextPage(s.Page, totalPages)
	return s
}

// Compute filters, sorts and paginates products
func (s ViewState) Compute(products []model.Product) View {
	filtered := Sort(Apply(products, s.Search, s.Category), s.Sort)
	page := Paginate(filtered, s.PageSize, s.Page)

	s.Page = page.Page
	s.PageSize = page.PageSize
	return View{State: s, Matched: len(filtered), Page: page}
}
