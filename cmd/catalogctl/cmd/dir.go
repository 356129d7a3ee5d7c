package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ytget/catalog-dashboard/internal/config"
	"github.com/ytget/catalog-dashboard/internal/output"
)

type dirStatus struct {
	Path      string `json:"path" yaml:"path"`
	Connected bool   `json:"connected" yaml:"connected"`
}

func (d dirStatus) TableData() output.Data {
	status := "not connected"
	if d.Connected {
		status = "connected"
	}
	return output.Data{
		Headers: []string{"Directory", "Status"},
		Rows:    [][]string{{d.Path, status}},
	}
}

func newDirCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dir",
		Short: "Show the catalog directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, ok := a.resolver.GetPath()
			return a.print(cmd.OutOrStdout(), dirStatus{Path: path, Connected: ok})
		},
	}
	cmd.AddCommand(newDirSelectCommand(a))
	return cmd
}

func newDirSelectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "select <path>",
		Short:   "Select and remember the catalog directory",
		Args:    cobra.ExactArgs(1),
		Example: `  catalogctl dir select ./data`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, ok, err := a.resolver.SelectPath(cmd.Context(), config.StaticChooser(args[0]))
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), dirStatus{Path: path, Connected: ok})
		},
	}
}
