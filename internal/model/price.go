package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol is prefixed to every formatted price
const CurrencySymbol = "$"

var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// Price is an optional amount decoded from a JSON number or numeric string.
type Price struct {
	Amount float64
	Set    bool
}

// NewPrice returns a set price.
func NewPrice(amount float64) Price {
	return Price{Amount: amount, Set: true}
}

// UnmarshalJSON accepts numbers and numeric strings. Null, empty and
// non-numeric strings leave the price unset.
func (p *Price) UnmarshalJSON(data []byte) error {
	*p = Price{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	text := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		text = strings.TrimSpace(s)
	}

	amount, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil
	}
	*p = NewPrice(amount)
	return nil
}

// MarshalJSON writes the amount, or null when unset.
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Set {
		return []byte("null"), nil
	}
	return json.Marshal(p.Amount)
}

// Format renders the price as currency with two decimals, e.g. "$1,234.50".
// An unset price renders as the empty string.
func (p Price) Format() string {
	if !p.Set {
		return ""
	}
	if p.Amount < 0 {
		return "-" + CurrencySymbol + pricePrinter.Sprintf("%.2f", -p.Amount)
	}
	return CurrencySymbol + pricePrinter.Sprintf("%.2f", p.Amount)
}

// String implements fmt.Stringer
func (p Price) String() string {
	return p.Format()
}
