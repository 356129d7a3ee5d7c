// Package cmd implements the catalogctl commands.
package cmd

import (
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ytget/catalog-dashboard/internal/catalog"
	"github.com/ytget/catalog-dashboard/internal/config"
	"github.com/ytget/catalog-dashboard/internal/logging"
	"github.com/ytget/catalog-dashboard/internal/output"
	"github.com/ytget/catalog-dashboard/internal/platform"
)

// app holds everything a command needs once flags and config are resolved.
type app struct {
	cfg      *config.AppConfig
	logger   *zerolog.Logger
	settings *config.SettingsStore
	resolver *config.DirectoryResolver
	catalog  *catalog.Service
	format   output.Format
}

type rootOptions struct {
	configFile   string
	settingsFile string
	output       string
}

// NewRootCommand builds the catalogctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	a := &app{}

	root := &cobra.Command{
		Use:   "catalogctl",
		Short: "Browse a product catalog directory",
		Long: `catalogctl reads the JSON product files of a catalog directory and
shows them the same way the dashboard does: merged, searchable,
filterable by category and paginated.

The directory is remembered in settings.json, shared with the dashboard.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is catalog.yaml in the user config dir or .)")
	root.PersistentFlags().StringVar(&opts.settingsFile, "settings", "", "settings file (default is settings.json in the user config dir)")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "output format: table, json, yaml (default table on a terminal, json otherwise)")

	root.AddCommand(
		newDirCommand(a),
		newFilesCommand(a),
		newProductsCommand(a),
		newCategoriesCommand(a),
		newShowCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, opts *rootOptions) error {
	loadEnvFiles()

	v := config.NewViper(opts.configFile)
	if err := v.BindPFlag(config.ConfigKeySettingsFile, cmd.Flags().Lookup("settings")); err != nil {
		return fmt.Errorf("bind settings flag: %w", err)
	}

	cfg, err := config.LoadAppConfig(v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.Configure(cfg.LogLevel, cfg.LogFormat)

	format, err := output.ParseFormat(opts.output)
	if err != nil {
		return err
	}
	if format == "" {
		format = output.DetectFormat("")
	}
	a.format = format

	fallback, err := platform.DefaultSettingsPath()
	if err != nil {
		return fmt.Errorf("locate settings file: %w", err)
	}
	settingsPath := cfg.ResolveSettingsFile(fallback)

	a.settings = config.NewSettingsStore(settingsPath, a.logger)
	a.resolver = config.NewDirectoryResolver(a.settings, a.logger)
	store := catalog.NewStore(afero.NewOsFs(), a.resolver, a.logger)
	a.catalog = catalog.NewService(store, a.logger)

	a.logger.Debug().Str("settings", settingsPath).Str("output", string(format)).Msg("catalogctl configured")
	return nil
}

// typeTag returns the flag value when set, else the configured default.
func (a *app) typeTag(cmd *cobra.Command, flag string) string {
	if cmd.Flags().Changed("type") {
		return flag
	}
	return a.cfg.TypeTag
}

func (a *app) print(w io.Writer, data any) error {
	return output.NewFormatter(a.format).Format(w, data)
}

// loadEnvFiles loads .env then .env.local; neither has to exist.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

func notConnected(err error) error {
	return fmt.Errorf("%w: run \"catalogctl dir select <path>\" first", err)
}
