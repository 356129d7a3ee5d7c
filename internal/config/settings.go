package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog"
	"github.com/tailscale/hujson"

	"github.com/ytget/catalog-dashboard/internal/logging"
	"github.com/ytget/catalog-dashboard/internal/platform"
)

// Settings keys
const (
	KeyDatabasePath = "databasePath"
	KeyLanguage     = "language"
)

// Default values
const (
	DefaultLanguage = "system"
)

// Settings is the raw settings document. Values stay as JSON so keys this
// program does not know about survive a save untouched.
type Settings map[string]json.RawMessage

// String returns the string value stored under key, or "" if it is missing
// or not a string.
func (s Settings) String(key string) string {
	raw, ok := s[key]
	if !ok {
		return ""
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return v
}

// Set stores value under key.
func (s Settings) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode setting %s: %w", key, err)
	}
	s[key] = raw
	return nil
}

// DatabasePath returns the configured catalog directory
func (s Settings) DatabasePath() string {
	return s.String(KeyDatabasePath)
}

// Language returns the configured UI language
func (s Settings) Language() string {
	if lang := s.String(KeyLanguage); lang != "" {
		return lang
	}
	return DefaultLanguage
}

// StringSetting builds a single-key partial update.
func StringSetting(key, value string) Settings {
	s := Settings{}
	_ = s.Set(key, value)
	return s
}

// SettingsStore reads and writes the settings file. There is no locking;
// concurrent writers race and the last one wins.
type SettingsStore struct {
	path   string
	logger *zerolog.Logger
}

// NewSettingsStore creates a store for the file at path
func NewSettingsStore(path string, logger *zerolog.Logger) *SettingsStore {
	if logger == nil {
		logger = logging.Default()
	}
	return &SettingsStore{path: path, logger: logger}
}

// Path returns the settings file location
func (s *SettingsStore) Path() string {
	return s.path
}

// Load returns the parsed settings, or nil if the file is missing or broken.
// Parse failures are logged and otherwise treated as absent settings.
func (s *SettingsStore) Load() Settings {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("Failed to read settings")
		}
		return nil
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("Settings file is not valid JSON")
		return nil
	}

	var settings Settings
	if err := json.Unmarshal(standardized, &settings); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("Settings file is not a JSON object")
		return nil
	}
	return settings
}

// Save merges partial over the current settings (shallow, key by key) and
// replaces the file atomically.
func (s *SettingsStore) Save(partial Settings) error {
	merged := s.Load()
	if merged == nil {
		merged = Settings{}
	}
	for key, value := range partial {
		merged[key] = value
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	data = append(data, '\n')

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write settings %s: %w", s.path, err)
	}

	s.logger.Debug().Str("path", s.path).Int("keys", len(merged)).Msg("Settings saved")
	return nil
}

// GetLanguageOptions returns available language options
func GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
