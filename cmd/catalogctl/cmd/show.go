package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ytget/catalog-dashboard/internal/catalog"
	"github.com/ytget/catalog-dashboard/internal/output"
)

type fileContents struct {
	File     string       `json:"file" yaml:"file"`
	Shape    string       `json:"shape" yaml:"shape"`
	Products []productRow `json:"products" yaml:"products"`
}

func (f fileContents) TableData() output.Data {
	return rowsTable(f.Products)
}

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "show <file>",
		Short:   "Show the products of a single catalog file",
		Args:    cobra.ExactArgs(1),
		Example: `  catalogctl show products-a.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			store := a.catalog.Store()

			raw, err := store.ReadFile(cmd.Context(), name)
			if errors.Is(err, catalog.ErrNotConnected) {
				return notConnected(err)
			}
			if err != nil {
				return err
			}

			shape, err := catalog.Normalize(raw)
			if err != nil {
				return &catalog.FileError{Name: name, Err: err}
			}
			if source, err := store.Path(name); err == nil {
				for i := range shape.Products {
					shape.Products[i].SourceFile = source
				}
			}

			return a.print(cmd.OutOrStdout(), fileContents{
				File:     name,
				Shape:    shape.Kind.String(),
				Products: toRows(shape.Products),
			})
		},
	}
}
