package catalog

import "context"

// Catalog defines the interface the UI uses to load products.
type Catalog interface {
	SetUpdateCallback(func(Snapshot))
	Reload(ctx context.Context, typeTag string) (Snapshot, error)
	Snapshot() Snapshot
	ListFiles(ctx context.Context, typeTag string) (Listing, error)
}
