package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ytget/catalog-dashboard/internal/catalog"
	"github.com/ytget/catalog-dashboard/internal/output"
)

type fileList struct {
	Path  string   `json:"path" yaml:"path"`
	Files []string `json:"files" yaml:"files"`
}

func (l fileList) TableData() output.Data {
	rows := make([][]string, 0, len(l.Files))
	for _, name := range l.Files {
		rows = append(rows, []string{name})
	}
	return output.Data{Headers: []string{"File"}, Rows: rows}
}

func newFilesCommand(a *app) *cobra.Command {
	var typeTag string

	cmd := &cobra.Command{
		Use:   "files",
		Short: "List catalog files in the directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listing, err := a.catalog.ListFiles(cmd.Context(), a.typeTag(cmd, typeTag))
			if errors.Is(err, catalog.ErrNotConnected) {
				return notConnected(err)
			}
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), fileList{Path: listing.Path, Files: listing.Files})
		},
	}
	cmd.Flags().StringVarP(&typeTag, "type", "t", "", "only files whose name contains this tag")
	return cmd
}
