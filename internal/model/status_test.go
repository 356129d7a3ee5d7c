package model

import "testing"

func TestProduct_Availability(t *testing.T) {
	tests := []struct {
		name     string
		product  Product
		expected Availability
	}{
		{"no flags", Product{}, AvailabilityActive},
		{"stock positive", Product{Stock: Int(5)}, AvailabilityActive},
		{"stock zero", Product{Stock: Int(0)}, AvailabilityOutOfStock},
		{"in stock false", Product{InStock: Bool(false)}, AvailabilityOutOfStock},
		{"in stock true", Product{InStock: Bool(true)}, AvailabilityActive},
		{"active true", Product{Active: Bool(true)}, AvailabilityActive},
		{"inactive", Product{Active: Bool(false)}, AvailabilityInactive},
		{"inactive wins over stock", Product{Active: Bool(false), Stock: Int(0)}, AvailabilityInactive},
	}

	for _, test := range tests {
		if got := test.product.Availability(); got != test.expected {
			t.Errorf("%s: Availability() = %s, expected %s", test.name, got, test.expected)
		}
	}
}

func TestAvailability_IsAvailable(t *testing.T) {
	tests := []struct {
		status   Availability
		expected bool
	}{
		{AvailabilityActive, true},
		{AvailabilityInactive, false},
		{AvailabilityOutOfStock, false},
	}

	for _, test := range tests {
		if got := test.status.IsAvailable(); got != test.expected {
			t.Errorf("Availability(%s).IsAvailable() = %v, expected %v", test.status, got, test.expected)
		}
	}
}

func TestAvailability_String(t *testing.T) {
	if got := AvailabilityOutOfStock.String(); got != "Out of Stock" {
		t.Errorf("Availability.String() = %s, expected Out of Stock", got)
	}
}
