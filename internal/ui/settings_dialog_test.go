package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/catalog-dashboard/internal/logging"
)

func TestSettingsDialog_SaveLanguage(t *testing.T) {
	f := newFixture(t)
	f.connect(t)

	var saved string
	sd := NewSettingsDialog(f.window, f.settings, NewLocalization(), &logging.Nop, nil, func(lang string) {
		saved = lang
	})
	sd.loadCurrentSettings(catalogDir)

	assert.Equal(t, catalogDir, sd.directoryLabel.Text)
	assert.Equal(t, "System Default", sd.languageSelect.Selected)

	sd.languageSelect.SetSelected("Português")
	sd.onSave(true)

	assert.Equal(t, "pt", saved)
	assert.Equal(t, "pt", f.settings.Load().Language())
	assert.Equal(t, catalogDir, f.settings.Load().DatabasePath(), "unrelated keys survive")
}

func TestSettingsDialog_Cancel(t *testing.T) {
	f := newFixture(t)

	called := false
	sd := NewSettingsDialog(f.window, f.settings, NewLocalization(), &logging.Nop, nil, func(string) { called = true })
	sd.loadCurrentSettings("")
	sd.languageSelect.SetSelected("English")
	sd.onSave(false)

	assert.False(t, called)
	assert.Equal(t, DashPlaceholder, sd.directoryLabel.Text)
	assert.Nil(t, f.settings.Load())
}
