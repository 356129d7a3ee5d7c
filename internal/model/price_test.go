package model

import (
	"encoding/json"
	"testing"
)

func TestPrice_Format(t *testing.T) {
	tests := []struct {
		price    Price
		expected string
	}{
		{NewPrice(9.99), "$9.99"},
		{NewPrice(19.5), "$19.50"},
		{NewPrice(0), "$0.00"},
		{NewPrice(1234.5), "$1,234.50"},
		{NewPrice(-5), "-$5.00"},
		{Price{}, ""},
	}

	for _, test := range tests {
		if got := test.price.Format(); got != test.expected {
			t.Errorf("Price(%+v).Format() = %q, expected %q", test.price, got, test.expected)
		}
	}
}

func TestPrice_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input  string
		set    bool
		amount float64
	}{
		{`9.99`, true, 9.99},
		{`"19.5"`, true, 19.5},
		{`" 3 "`, true, 3},
		{`""`, false, 0},
		{`"free"`, false, 0},
		{`null`, false, 0},
		{`true`, false, 0},
	}

	for _, test := range tests {
		var p Price
		if err := json.Unmarshal([]byte(test.input), &p); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", test.input, err)
		}
		if p.Set != test.set || p.Amount != test.amount {
			t.Errorf("Unmarshal(%s) = %+v, expected set=%v amount=%v", test.input, p, test.set, test.amount)
		}
	}
}

func TestPrice_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		A Price `json:"a"`
		B Price `json:"b"`
	}{A: NewPrice(2.5)})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(data) != `{"a":2.5,"b":null}` {
		t.Errorf("Unexpected JSON: %s", data)
	}
}
