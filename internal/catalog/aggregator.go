package catalog

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/catalog-dashboard/internal/logging"
	"github.com/ytget/catalog-dashboard/internal/model"
)

// Reader loads one catalog file
type Reader interface {
	ReadFile(ctx context.Context, name string) (json.RawMessage, error)
	Path(name string) (string, error)
}

// Snapshot is the aggregate collection produced by one rebuild. It is never
// mutated after construction.
type Snapshot struct {
	ID         string
	Dir        string
	Products   []model.Product
	Categories []string
	Failures   []*FileError
	LoadedAt   time.Time
}

// Len returns the number of products
func (s Snapshot) Len() int {
	return len(s.Products)
}

// HasCategory reports whether category was seen in any product
func (s Snapshot) HasCategory(category string) bool {
	i := sort.SearchStrings(s.Categories, category)
	return i < len(s.Categories) && s.Categories[i] == category
}

// Aggregator merges catalog files into a Snapshot
type Aggregator struct {
	reader Reader
	logger *zerolog.Logger
}

// NewAggregator creates an aggregator reading through reader
func NewAggregator(reader Reader, logger *zerolog.Logger) *Aggregator {
	if logger == nil {
		logger = logging.Default()
	}
	return &Aggregator{reader: reader, logger: logger}
}

// Rebuild reads names one after another and concatenates their products in
// file order. Failing files are logged, recorded and skipped. A cancelled
// context stops the batch before the next file and is returned as the error.
func (a *Aggregator) Rebuild(ctx context.Context, names []string) (Snapshot, error) {
	snap := Snapshot{
		ID:         newSnapshotID(),
		Products:   []model.Product{},
		Categories: []string{},
		LoadedAt:   time.Now(),
	}
	seen := make(map[string]struct{})

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return snap, err
		}

		shape, err := a.ingest(ctx, name)
		if err != nil {
			a.logger.Warn().Err(err).Str("file", name).Msg("Skipping catalog file")
			snap.Failures = append(snap.Failures, &FileError{Name: name, Err: err})
			continue
		}

		source, _ := a.reader.Path(name)
		for _, p := range shape.Products {
			p.SourceFile = source
			snap.Products = append(snap.Products, p)
			if p.Category != "" {
				seen[p.Category] = struct{}{}
			}
		}
		a.logger.Debug().Str("file", name).Str("shape", shape.Kind.String()).Int("products", len(shape.Products)).Msg("Catalog file ingested")
	}

	for category := range seen {
		snap.Categories = append(snap.Categories, category)
	}
	sort.Strings(snap.Categories)

	a.logger.Info().
		Str("snapshot", snap.ID).
		Int("files", len(names)).
		Int("failed", len(snap.Failures)).
		Int("products", len(snap.Products)).
		Int("categories", len(snap.Categories)).
		Msg("Catalog rebuilt")
	return snap, nil
}

func (a *Aggregator) ingest(ctx context.Context, name string) (Shape, error) {
	raw, err := a.reader.ReadFile(ctx, name)
	if err != nil {
		return Shape{}, err
	}
	return Normalize(raw)
}

// newSnapshotID generates a time-ordered snapshot id
func newSnapshotID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
