package config

// Package config holds everything the dashboard persists or reads at startup:
// the JSON settings file (last writer wins, unknown keys preserved), the
// resolver that remembers the chosen catalog directory, and the application
// configuration loaded from flags, environment and an optional YAML file.
