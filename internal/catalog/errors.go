package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConnected means no catalog directory has been chosen yet
	ErrNotConnected = errors.New("no catalog directory selected")

	// ErrUnsupportedShape means a file holds neither an object nor an array
	ErrUnsupportedShape = errors.New("unsupported document shape")

	// ErrDirectoryChanged means a reload finished after another directory
	// was selected; its result was discarded
	ErrDirectoryChanged = errors.New("catalog directory changed during reload")

	// ErrInvalidName means a file name is empty or points outside the directory
	ErrInvalidName = errors.New("invalid file name")
)

// FileError records why a single catalog file was skipped
type FileError struct {
	Name string
	Err  error
}

// Error implements the error interface
func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *FileError) Unwrap() error {
	return e.Err
}
