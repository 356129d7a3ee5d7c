package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/catalog-dashboard/internal/model"
)

func manyProducts(n int) []model.Product {
	out := make([]model.Product, n)
	for i := range out {
		out[i] = model.Product{ID: string(rune('a' + i)), Name: "Item", Category: "Tools"}
	}
	return out
}

func TestViewState_Transitions(t *testing.T) {
	state := NewViewState(2).WithPage(3)

	assert.Equal(t, 1, state.WithSearch("x").Page)
	assert.Equal(t, 1, state.WithCategory("Tools").Page)
	assert.Equal(t, 1, state.WithSort(SortName).Page)
	assert.Equal(t, 3, state.Page, "transitions must not modify the receiver")
}

func TestViewState_Navigation(t *testing.T) {
	products := manyProducts(5) // 3 pages of 2
	state := NewViewState(2)

	view := state.Prev().Compute(products)
	assert.Equal(t, 1, view.State.Page, "previous on first page stays put")

	for i := 0; i < 5; i++ {
		view = view.State.Next(view.Page.TotalPages).Compute(products)
	}
	assert.Equal(t, 3, view.State.Page, "next on last page stays put")
	assert.Equal(t, []string{"e"}, ids(view.Page.Items))

	view = view.State.Prev().Compute(products)
	assert.Equal(t, 2, view.State.Page)
}

func TestViewState_ComputeClampsAfterShrink(t *testing.T) {
	state := NewViewState(2).WithPage(3)

	view := state.Compute(manyProducts(3))
	assert.Equal(t, 2, view.State.Page)
	assert.Equal(t, 3, view.Matched)
}

func TestViewState_ComputeEndToEnd(t *testing.T) {
	state := NewViewState(10).WithSearch("widget").WithSort(SortPriceAsc)

	view := state.Compute(sampleProducts())
	require.Equal(t, 2, view.Matched)
	assert.Equal(t, []string{"3", "1"}, ids(view.Page.Items))
	assert.Equal(t, 1, view.Page.TotalPages)
}

func TestNewViewState_DefaultPageSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NewViewState(0).PageSize)
}
