package catalog

// Package catalog turns a directory of JSON files into an in-memory product
// collection. Files are listed, read and normalized one at a time; a file
// that cannot be read or parsed is logged and skipped without failing the
// batch. Each reload produces a new immutable Snapshot.
