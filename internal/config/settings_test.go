package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/catalog-dashboard/internal/logging"
)

func newTestStore(t *testing.T) (*SettingsStore, *logging.TestLogger) {
	t.Helper()
	tl := logging.NewTestLogger(t)
	path := filepath.Join(t.TempDir(), "profile", "settings.json")
	return NewSettingsStore(path, tl.Logger), tl
}

func TestSettingsStore_LoadMissing(t *testing.T) {
	store, tl := newTestStore(t)

	if settings := store.Load(); settings != nil {
		t.Errorf("Expected nil settings for missing file, got %v", settings)
	}
	if tl.Buffer.Len() != 0 {
		t.Errorf("Missing file should not be logged, got %s", tl.Buffer.String())
	}
}

func TestSettingsStore_LoadMalformed(t *testing.T) {
	store, tl := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	for _, content := range []string{`{"databasePath": `, `["not", "an", "object"]`} {
		if err := os.WriteFile(store.Path(), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write settings: %v", err)
		}
		if settings := store.Load(); settings != nil {
			t.Errorf("Expected nil settings for %q, got %v", content, settings)
		}
	}

	if !tl.Contains("warn") {
		t.Errorf("Expected parse failure to be logged, got %s", tl.Buffer.String())
	}
}

func TestSettingsStore_LoadWithComments(t *testing.T) {
	store, _ := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	content := "{\n  // chosen in the dashboard\n  \"databasePath\": \"/data/catalog\",\n}\n"
	if err := os.WriteFile(store.Path(), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	if got := store.Load().DatabasePath(); got != "/data/catalog" {
		t.Errorf("Expected /data/catalog, got %q", got)
	}
}

func TestSettingsStore_SaveMergesPartialUpdates(t *testing.T) {
	store, _ := newTestStore(t)

	a := Settings{}
	_ = a.Set("theme", "dark")
	_ = a.Set(KeyDatabasePath, "/first")
	if err := store.Save(a); err != nil {
		t.Fatalf("Save(A) failed: %v", err)
	}

	b := Settings{}
	_ = b.Set(KeyDatabasePath, "/second")
	_ = b.Set(KeyLanguage, "pt")
	if err := store.Save(b); err != nil {
		t.Fatalf("Save(B) failed: %v", err)
	}

	loaded := store.Load()
	if got := loaded.DatabasePath(); got != "/second" {
		t.Errorf("Expected B to win on overlap, got %q", got)
	}
	if got := loaded.String("theme"); got != "dark" {
		t.Errorf("Expected untouched key to survive, got %q", got)
	}
	if got := loaded.Language(); got != "pt" {
		t.Errorf("Expected language pt, got %q", got)
	}
	if len(loaded) != 3 {
		t.Errorf("Expected 3 keys, got %d: %v", len(loaded), loaded)
	}
}

func TestSettingsStore_SavePreservesUnknownValues(t *testing.T) {
	store, _ := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	content := `{"window":{"width":800,"height":600},"recent":["/a","/b"]}`
	if err := os.WriteFile(store.Path(), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	if err := store.Save(StringSetting(KeyDatabasePath, "/data")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("Failed to read settings: %v", err)
	}
	text := string(data)
	for _, want := range []string{`"width": 800`, `"/b"`, `"databasePath": "/data"`} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %s in saved settings, got:\n%s", want, text)
		}
	}
}

func TestSettings_Defaults(t *testing.T) {
	var settings Settings

	if got := settings.DatabasePath(); got != "" {
		t.Errorf("Expected empty database path, got %q", got)
	}
	if got := settings.Language(); got != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, got)
	}

	wrongType := Settings{KeyDatabasePath: []byte(`42`)}
	if got := wrongType.DatabasePath(); got != "" {
		t.Errorf("Expected non-string value to read as empty, got %q", got)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	options := GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
