package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Product is a single catalog record. Every field except identity is optional.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Category string `json:"category,omitempty"`
	Price    Price  `json:"price"`
	Stock    *int   `json:"stock,omitempty"`
	InStock  *bool  `json:"inStock,omitempty"`
	Active   *bool  `json:"active,omitempty"`

	// SourceFile is the catalog file the record was loaded from.
	SourceFile string `json:"-"`
}

// productJSON mirrors the on-disk shape before lenient conversion.
type productJSON struct {
	ID       json.RawMessage `json:"id"`
	AltID    json.RawMessage `json:"_id"`
	Name     json.RawMessage `json:"name"`
	Category json.RawMessage `json:"category"`
	Price    Price           `json:"price"`
	Stock    json.RawMessage `json:"stock"`
	InStock  json.RawMessage `json:"inStock"`
	Active   json.RawMessage `json:"active"`
}

// UnmarshalJSON decodes a product, accepting numeric ids and numeric strings
// for stock. A missing id falls back to "_id". Fields of the wrong type are
// treated as absent so one odd value never drops the record.
func (p *Product) UnmarshalJSON(data []byte) error {
	var raw productJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id := identity(raw.ID)
	if id == "" {
		id = identity(raw.AltID)
	}

	*p = Product{
		ID:       id,
		Name:     lenientString(raw.Name),
		Category: lenientString(raw.Category),
		Price:    raw.Price,
		Stock:    lenientInt(raw.Stock),
		InStock:  lenientBool(raw.InStock),
		Active:   lenientBool(raw.Active),
	}
	return nil
}

// DisplayName returns the name, falling back to the id
func (p Product) DisplayName() string {
	if strings.TrimSpace(p.Name) != "" {
		return p.Name
	}
	if p.ID != "" {
		return p.ID
	}
	return "—"
}

// identity turns a JSON string or number into an id string.
func identity(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// lenientString returns a JSON string value, or "" for any other type.
func lenientString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// lenientBool accepts only the JSON literals true and false.
func lenientBool(raw json.RawMessage) *bool {
	switch string(bytes.TrimSpace(raw)) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	return nil
}

// lenientInt parses a JSON number or numeric string holding a whole value
// within int32 range; anything else is unset.
func lenientInt(raw json.RawMessage) *int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	text := string(raw)
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		text = strings.TrimSpace(s)
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return nil
	}
	v := int(f)
	return &v
}

// Bool returns a pointer to b, for building optional fields.
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to n, for building optional fields.
func Int(n int) *int {
	return &n
}
