package ui

import (
	"context"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/ytget/catalog-dashboard/internal/catalog"
	"github.com/ytget/catalog-dashboard/internal/config"
	"github.com/ytget/catalog-dashboard/internal/logging"
)

const catalogDir = "/catalog"

var catalogFiles = map[string]string{
	"a.json": `[
		{"id": "1", "name": "Widget", "category": "Tools", "price": 9.99, "stock": 0},
		{"id": "2", "name": "Hammer", "category": "Tools", "price": 25, "stock": 4},
		{"id": "3", "name": "Kite", "category": "Toys", "price": "1250", "active": false}
	]`,
	"b.json":   `{"id": "4", "name": "Mega Widget", "category": "Garden", "price": 19.5}`,
	"bad.json": `nope`,
}

type fixture struct {
	app      fyne.App
	window   fyne.Window
	settings *config.SettingsStore
	resolver *config.DirectoryResolver
	service  *catalog.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	a := test.NewTempApp(t)
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(catalogDir, 0o755))
	for name, content := range catalogFiles {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(catalogDir, name), []byte(content), 0o644))
	}

	settings := config.NewSettingsStore(filepath.Join(t.TempDir(), "settings.json"), &logging.Nop)
	resolver := config.NewDirectoryResolver(settings, &logging.Nop)
	store := catalog.NewStore(fs, resolver, &logging.Nop)

	return &fixture{
		app:      a,
		window:   a.NewWindow("test"),
		settings: settings,
		resolver: resolver,
		service:  catalog.NewService(store, &logging.Nop),
	}
}

// connect persists the catalog directory as if chosen in an earlier session
func (f *fixture) connect(t *testing.T) {
	t.Helper()
	require.NoError(t, f.settings.Save(config.StringSetting(config.KeyDatabasePath, catalogDir)))
}

func (f *fixture) dashboard(pageSize int) *DashboardUI {
	return NewDashboardUI(f.window, Options{
		Catalog:  f.service,
		Resolver: f.resolver,
		Settings: f.settings,
		Chooser: config.ChooserFunc(func(context.Context) (string, error) {
			return catalogDir, nil
		}),
		Logger:   &logging.Nop,
		PageSize: pageSize,
	})
}

// loaded builds a connected dashboard and runs one reload synchronously
func (f *fixture) loaded(t *testing.T, pageSize int) *DashboardUI {
	t.Helper()
	f.connect(t)
	ui := f.dashboard(pageSize)
	ui.load(context.Background())
	return ui
}
