package catalog

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/ytget/catalog-dashboard/internal/logging"
)

const testDir = "/catalog"

// fixedResolver is a PathResolver with a constant answer
type fixedResolver string

func (r fixedResolver) GetPath() (string, bool) {
	return string(r), r != ""
}

func newMemStore(t *testing.T, files map[string]string) (*Store, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll(testDir, 0o755); err != nil {
		t.Fatalf("Failed to create catalog dir: %v", err)
	}
	for name, content := range files {
		if err := afero.WriteFile(fs, filepath.Join(testDir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return NewStore(fs, fixedResolver(testDir), &logging.Nop), fs
}
