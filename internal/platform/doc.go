package platform

// Package platform contains OS integration glue: default file locations,
// directory helpers, and opening or revealing catalog files in the desktop shell.
