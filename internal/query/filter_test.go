package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ytget/catalog-dashboard/internal/model"
)

func sampleProducts() []model.Product {
	return []model.Product{
		{ID: "1", Name: "Widget", Category: "Tools", Price: model.NewPrice(9.99), Stock: model.Int(0)},
		{ID: "2", Name: "Gadget", Category: "Electronics", Price: model.NewPrice(19.5), Active: model.Bool(false)},
		{ID: "3", Name: "Mega WIDGET", Category: "Tools", Price: model.NewPrice(4)},
		{ID: "4", Category: "Tools"},
		{ID: "5", Name: "Ärmel", Category: "tools"},
	}
}

func ids(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		category string
		expected []string
	}{
		{"no filters", "", "", []string{"1", "2", "3", "4", "5"}},
		{"case-insensitive search", "widget", "", []string{"1", "3"}},
		{"search keeps order", "GET", "", []string{"1", "2", "3"}},
		{"category exact", "", "Tools", []string{"1", "3", "4"}},
		{"category case-sensitive", "", "tools", []string{"5"}},
		{"search and category", "widget", "Electronics", []string{}},
		{"search ignores ids", "4", "Tools", []string{}},
		{"unicode lowercase", "ärm", "", []string{"5"}},
		{"no match", "sprocket", "", []string{}},
	}

	for _, test := range tests {
		got := ids(Apply(sampleProducts(), test.search, test.category))
		if diff := cmp.Diff(test.expected, got); diff != "" {
			t.Errorf("%s: Apply(%q, %q) mismatch (-want +got):\n%s", test.name, test.search, test.category, diff)
		}
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	before := ids(products)

	filtered := Apply(products, "widget", "Tools")
	if len(filtered) > 0 {
		filtered[0].Name = "changed"
	}

	if diff := cmp.Diff(before, ids(products)); diff != "" {
		t.Errorf("Input order changed:\n%s", diff)
	}
	if products[0].Name != "Widget" {
		t.Errorf("Input record mutated: %q", products[0].Name)
	}
}

func TestApply_RefilterIsIdempotent(t *testing.T) {
	cases := []struct{ search, category string }{
		{"", ""}, {"widget", ""}, {"", "Tools"}, {"g", "Electronics"}, {"zzz", "none"},
	}

	for _, c := range cases {
		once := Apply(sampleProducts(), c.search, c.category)
		twice := Apply(once, "", "")
		if diff := cmp.Diff(ids(once), ids(twice)); diff != "" {
			t.Errorf("Apply(Apply(C, %q, %q), \"\", \"\") changed result:\n%s", c.search, c.category, diff)
		}
	}
}

func TestApply_NamelessNeverMatchesSearch(t *testing.T) {
	products := []model.Product{{ID: "x", Category: "x"}}

	if got := Apply(products, "x", ""); len(got) != 0 {
		t.Errorf("Expected no matches for nameless product, got %v", ids(got))
	}
	if got := Apply(products, "", "x"); len(got) != 1 {
		t.Errorf("Expected nameless product to pass an empty search, got %v", ids(got))
	}
}
