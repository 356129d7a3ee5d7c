package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ytget/catalog-dashboard/internal/model"
)

// ShapeKind tells how a file's top-level value was laid out
type ShapeKind int

const (
	// ShapeSingle is a file holding one product object
	ShapeSingle ShapeKind = iota
	// ShapeMany is a file holding an array of products
	ShapeMany
)

// String returns the shape name
func (k ShapeKind) String() string {
	switch k {
	case ShapeSingle:
		return "single"
	case ShapeMany:
		return "many"
	default:
		return "unknown"
	}
}

// Shape is a normalized file payload
type Shape struct {
	Kind     ShapeKind
	Products []model.Product
}

// Normalize decodes a file payload once, resolving the object-or-array
// ambiguity. Null is an empty array; null array elements are dropped.
func Normalize(raw json.RawMessage) (Shape, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Shape{}, fmt.Errorf("empty document: %w", ErrUnsupportedShape)
	}

	switch trimmed[0] {
	case '{':
		var p model.Product
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return Shape{}, fmt.Errorf("decode product: %w", err)
		}
		return Shape{Kind: ShapeSingle, Products: []model.Product{p}}, nil

	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return Shape{}, fmt.Errorf("decode products: %w", err)
		}
		products := make([]model.Product, 0, len(elems))
		for i, elem := range elems {
			elem = bytes.TrimSpace(elem)
			if bytes.Equal(elem, []byte("null")) {
				continue
			}
			if len(elem) == 0 || elem[0] != '{' {
				return Shape{}, fmt.Errorf("element %d: %w", i, ErrUnsupportedShape)
			}
			var p model.Product
			if err := json.Unmarshal(elem, &p); err != nil {
				return Shape{}, fmt.Errorf("decode element %d: %w", i, err)
			}
			products = append(products, p)
		}
		return Shape{Kind: ShapeMany, Products: products}, nil

	case 'n':
		if bytes.Equal(trimmed, []byte("null")) {
			return Shape{Kind: ShapeMany, Products: []model.Product{}}, nil
		}
	}

	return Shape{}, ErrUnsupportedShape
}
