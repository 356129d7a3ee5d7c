package model

// Availability is the derived stock status of a product
type Availability string

const (
	// AvailabilityActive means the product is listed and in stock
	AvailabilityActive Availability = "Active"

	// AvailabilityInactive means the product was explicitly deactivated
	AvailabilityInactive Availability = "Inactive"

	// AvailabilityOutOfStock means the product is active but has no stock
	AvailabilityOutOfStock Availability = "Out of Stock"
)

// String returns the string representation of Availability
func (a Availability) String() string {
	return string(a)
}

// IsAvailable returns true if the product can be sold
func (a Availability) IsAvailable() bool {
	return a == AvailabilityActive
}

// Availability derives the status. An explicit active=false wins over stock.
func (p Product) Availability() Availability {
	if p.Active != nil && !*p.Active {
		return AvailabilityInactive
	}
	if p.Stock != nil && *p.Stock == 0 {
		return AvailabilityOutOfStock
	}
	if p.InStock != nil && !*p.InStock {
		return AvailabilityOutOfStock
	}
	return AvailabilityActive
}
