package main

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/afero"

	"github.com/ytget/catalog-dashboard/internal/catalog"
	"github.com/ytget/catalog-dashboard/internal/config"
	"github.com/ytget/catalog-dashboard/internal/logging"
	"github.com/ytget/catalog-dashboard/internal/platform"
	"github.com/ytget/catalog-dashboard/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.catalog-dashboard"
	AppName = "Catalog Dashboard"
)

func main() {
	cfg, err := config.LoadAppConfig(config.NewViper(os.Getenv("CATALOG_CONFIG")))
	if err != nil {
		logging.Default().Fatal().Err(err).Msg("Invalid configuration")
	}
	logger := logging.Configure(cfg.LogLevel, cfg.LogFormat)
	logger.Info().Str("version", version).Msg("Catalog Dashboard starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(AppName + " v" + version)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// settings.json lives in the app storage root unless configured otherwise
	settingsPath := cfg.ResolveSettingsFile(filepath.Join(myApp.Storage().RootURI().Path(), platform.SettingsFileName))
	logger.Debug().Str("settings", settingsPath).Msg("Using settings file")

	settings := config.NewSettingsStore(settingsPath, logger)
	resolver := config.NewDirectoryResolver(settings, logger)
	store := catalog.NewStore(afero.NewOsFs(), resolver, logger)
	catalogSvc := catalog.NewService(store, logger)

	dashboard := ui.NewDashboardUI(myWindow, ui.Options{
		Catalog:  catalogSvc,
		Resolver: resolver,
		Settings: settings,
		Logger:   logger,
		TypeTag:  cfg.TypeTag,
		PageSize: cfg.PageSize,
	})
	myWindow.SetOnClosed(dashboard.Close)
	dashboard.Start()

	myWindow.ShowAndRun()
}
