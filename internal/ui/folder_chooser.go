package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// FolderChooser presents the Fyne folder dialog as a config.DirectoryChooser.
// ChooseDirectory blocks until the dialog closes, so it must not be called on
// the UI goroutine.
type FolderChooser struct {
	window fyne.Window
	start  func() string
}

type chooserResult struct {
	path string
	err  error
}

// NewFolderChooser creates a chooser attached to window. start, if not nil,
// supplies the directory the dialog opens in.
func NewFolderChooser(window fyne.Window, start func() string) *FolderChooser {
	return &FolderChooser{window: window, start: start}
}

// ChooseDirectory shows the dialog and waits for exactly one result. A
// dismissed dialog yields an empty path.
func (c *FolderChooser) ChooseDirectory(ctx context.Context) (string, error) {
	result := make(chan chooserResult, 1)

	fyne.Do(func() {
		d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
			switch {
			case err != nil:
				result <- chooserResult{err: err}
			case uri == nil:
				result <- chooserResult{}
			default:
				result <- chooserResult{path: uri.Path()}
			}
		}, c.window)

		if c.start != nil {
			if dir := c.start(); dir != "" {
				if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
					d.SetLocation(lister)
				}
			}
		}
		d.Resize(c.window.Canvas().Size())
		d.Show()
	})

	select {
	case r := <-result:
		return r.path, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
