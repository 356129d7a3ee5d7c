package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		n, size    int
		requested  int
		page       int
		totalPages int
		items      []int
	}{
		{"first page", 25, 10, 1, 1, 3, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"last partial page", 25, 10, 3, 3, 3, []int{21, 22, 23, 24, 25}},
		{"past the end clamps", 25, 10, 9, 3, 3, []int{21, 22, 23, 24, 25}},
		{"zero clamps to first", 5, 2, 0, 1, 3, []int{1, 2}},
		{"negative clamps to first", 5, 2, -4, 1, 3, []int{1, 2}},
		{"exact multiple", 20, 10, 2, 2, 2, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}},
		{"empty", 0, 10, 3, 1, 1, []int{}},
		{"bad page size uses default", 12, 0, 2, 2, 2, []int{11, 12}},
	}

	for _, test := range tests {
		page := Paginate(seq(test.n), test.size, test.requested)
		assert.Equal(t, test.page, page.Page, test.name)
		assert.Equal(t, test.totalPages, page.TotalPages, test.name)
		assert.Equal(t, test.items, page.Items, test.name)
		assert.Equal(t, test.n, page.Total, test.name)
	}
}

func TestPaginate_Bounds(t *testing.T) {
	for n := 0; n <= 23; n++ {
		for size := 1; size <= 7; size++ {
			maxPages := max(1, (n+size-1)/size)
			for requested := -2; requested <= maxPages+2; requested++ {
				page := Paginate(seq(n), size, requested)

				if page.Page < 1 || page.Page > maxPages {
					t.Fatalf("n=%d size=%d requested=%d: page %d outside [1, %d]", n, size, requested, page.Page, maxPages)
				}
				want := max(0, min(size, n-(page.Page-1)*size))
				if len(page.Items) != want {
					t.Fatalf("n=%d size=%d page=%d: got %d items, want %d", n, size, page.Page, len(page.Items), want)
				}
			}
		}
	}
}

func TestPaginate_DoesNotAliasInput(t *testing.T) {
	items := seq(5)
	page := Paginate(items, 2, 1)
	page.Items[0] = 100
	_ = append(page.Items, 200)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, items)
}

func TestNavigation(t *testing.T) {
	assert.Equal(t, 1, PrevPage(1), "previous on first page is a no-op")
	assert.Equal(t, 2, PrevPage(3))
	assert.Equal(t, 3, NextPage(3, 3), "next on last page is a no-op")
	assert.Equal(t, 3, NextPage(2, 3))
	assert.Equal(t, 1, NextPage(1, 1))
	assert.Equal(t, 1, NextPage(1, 0))
}

func TestPage_Helpers(t *testing.T) {
	page := Paginate(seq(25), 10, 3)
	assert.True(t, page.HasPrev())
	assert.False(t, page.HasNext())
	first, last := page.Range()
	assert.Equal(t, 21, first)
	assert.Equal(t, 25, last)

	empty := Paginate([]int{}, 10, 1)
	assert.False(t, empty.HasPrev())
	assert.False(t, empty.HasNext())
	first, last = empty.Range()
	assert.Zero(t, first)
	assert.Zero(t, last)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 2, TotalPages(11, 0))
}
