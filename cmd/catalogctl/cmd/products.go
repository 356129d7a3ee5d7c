package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ytget/catalog-dashboard/internal/catalog"
	"github.com/ytget/catalog-dashboard/internal/config"
	"github.com/ytget/catalog-dashboard/internal/model"
	"github.com/ytget/catalog-dashboard/internal/output"
	"github.com/ytget/catalog-dashboard/internal/query"
)

type productRow struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
	Price    string `json:"price" yaml:"price"`
	Status   string `json:"status" yaml:"status"`
	File     string `json:"file,omitempty" yaml:"file,omitempty"`
}

func toRows(products []model.Product) []productRow {
	rows := make([]productRow, 0, len(products))
	for _, p := range products {
		row := productRow{
			ID:       p.ID,
			Name:     p.DisplayName(),
			Category: p.Category,
			Price:    p.Price.Format(),
			Status:   p.Availability().String(),
		}
		if p.SourceFile != "" {
			row.File = filepath.Base(p.SourceFile)
		}
		rows = append(rows, row)
	}
	return rows
}

func rowsTable(rows []productRow) output.Data {
	data := output.Data{Headers: []string{"ID", "Name", "Category", "Price", "Status", "File"}}
	for _, r := range rows {
		data.Rows = append(data.Rows, []string{r.ID, r.Name, r.Category, r.Price, r.Status, r.File})
	}
	return data
}

type productPage struct {
	Page       int          `json:"page" yaml:"page"`
	TotalPages int          `json:"totalPages" yaml:"totalPages"`
	PageSize   int          `json:"pageSize" yaml:"pageSize"`
	Matched    int          `json:"matched" yaml:"matched"`
	Total      int          `json:"total" yaml:"total"`
	Products   []productRow `json:"products" yaml:"products"`
	Skipped    []string     `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

func (p productPage) TableData() output.Data {
	return rowsTable(p.Products)
}

type productsOptions struct {
	typeTag  string
	search   string
	category string
	sort     string
	page     int
	pageSize int
}

func newProductsCommand(a *app) *cobra.Command {
	opts := &productsOptions{}

	cmd := &cobra.Command{
		Use:     "products",
		Short:   "Search, filter and page through all products",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Example: `  catalogctl products                          # First page of everything
  catalogctl products --search widget          # Name contains "widget"
  catalogctl products --category Tools -p 2    # Second page of Tools
  catalogctl products --sort -price -o json    # Most expensive first, as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProducts(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.typeTag, "type", "t", "", "only files whose name contains this tag")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "case-insensitive substring of the product name")
	cmd.Flags().StringVarP(&opts.category, "category", "c", "", "exact category")
	cmd.Flags().StringVar(&opts.sort, "sort", string(query.SortNone), "order: none, name, price, -price")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "page number")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "products per page (default from config)")
	return cmd
}

func runProducts(cmd *cobra.Command, a *app, opts *productsOptions) error {
	key, err := query.ParseSortKey(opts.sort)
	if err != nil {
		return err
	}

	if opts.pageSize < 0 || opts.pageSize > config.MaxPageSize {
		return fmt.Errorf("invalid --page-size %d: must be between 1 and %d", opts.pageSize, config.MaxPageSize)
	}
	pageSize := opts.pageSize
	if pageSize == 0 {
		pageSize = a.cfg.PageSize
	}

	snap, err := a.catalog.Reload(cmd.Context(), a.typeTag(cmd, opts.typeTag))
	if errors.Is(err, catalog.ErrNotConnected) {
		return notConnected(err)
	}
	if err != nil {
		return err
	}

	state := query.NewViewState(pageSize).
		WithSearch(opts.search).
		WithCategory(opts.category).
		WithSort(key).
		WithPage(opts.page)
	view := state.Compute(snap.Products)

	result := productPage{
		Page:       view.Page.Page,
		TotalPages: view.Page.TotalPages,
		PageSize:   view.Page.PageSize,
		Matched:    view.Matched,
		Total:      snap.Len(),
		Products:   toRows(view.Page.Items),
	}
	for _, f := range snap.Failures {
		result.Skipped = append(result.Skipped, f.Name)
	}

	out := cmd.OutOrStdout()
	if err := a.print(out, result); err != nil {
		return err
	}
	if a.format == output.FormatTable {
		fmt.Fprintf(out, "Page %d of %d, %d of %d products\n", result.Page, result.TotalPages, result.Matched, result.Total)
		for _, name := range result.Skipped {
			fmt.Fprintf(out, "Skipped %s\n", name)
		}
	}
	return nil
}
