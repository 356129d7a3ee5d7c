package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ytget/catalog-dashboard/internal/catalog"
	"github.com/ytget/catalog-dashboard/internal/output"
)

type categoryList struct {
	Categories []string `json:"categories" yaml:"categories"`
}

func (l categoryList) TableData() output.Data {
	rows := make([][]string, 0, len(l.Categories))
	for _, c := range l.Categories {
		rows = append(rows, []string{c})
	}
	return output.Data{Headers: []string{"Category"}, Rows: rows}
}

func newCategoriesCommand(a *app) *cobra.Command {
	var typeTag string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the distinct product categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := a.catalog.Reload(cmd.Context(), a.typeTag(cmd, typeTag))
			if errors.Is(err, catalog.ErrNotConnected) {
				return notConnected(err)
			}
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), categoryList{Categories: snap.Categories})
		},
	}
	cmd.Flags().StringVarP(&typeTag, "type", "t", "", "only files whose name contains this tag")
	return cmd
}
