package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/catalog-dashboard/internal/config"
)

// SettingsDialog edits the persisted UI settings
type SettingsDialog struct {
	store        *config.SettingsStore
	window       fyne.Window
	localization *Localization
	logger       *zerolog.Logger
	dialog       *dialog.ConfirmDialog

	// UI components
	directoryLabel *widget.Label
	languageSelect *widget.Select

	languageCodes map[string]string // display name -> code

	onChangeDirectory func()
	onSaved           func(language string)
}

// NewSettingsDialog creates a new settings dialog. onChangeDirectory starts
// directory selection; onSaved runs after the settings were written.
func NewSettingsDialog(window fyne.Window, store *config.SettingsStore, localization *Localization, logger *zerolog.Logger, onChangeDirectory func(), onSaved func(language string)) *SettingsDialog {
	sd := &SettingsDialog{
		store:             store,
		window:            window,
		localization:      localization,
		logger:            logger,
		onChangeDirectory: onChangeDirectory,
		onSaved:           onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog with the current values
func (sd *SettingsDialog) Show(currentDirectory string) {
	sd.loadCurrentSettings(currentDirectory)
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.directoryLabel = widget.NewLabel("")
	sd.directoryLabel.Truncation = fyne.TextTruncateEllipsis
	changeBtn := widget.NewButton(l.GetText(KeyChange), func() {
		sd.dialog.Hide()
		if sd.onChangeDirectory != nil {
			sd.onChangeDirectory()
		}
	})
	directoryRow := container.NewBorder(nil, nil, nil, changeBtn, sd.directoryLabel)

	sd.languageCodes = make(map[string]string)
	names := make([]string, 0)
	for code, name := range l.GetAvailableLanguages() {
		sd.languageCodes[name] = code
		names = append(names, name)
	}
	sort.Strings(names)
	sd.languageSelect = widget.NewSelect(names, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyCatalogDirectory)+":"),
		directoryRow,
		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings(currentDirectory string) {
	if currentDirectory == "" {
		currentDirectory = DashPlaceholder
	}
	sd.directoryLabel.SetText(currentDirectory)

	lang := sd.store.Load().Language()
	sd.languageSelect.SetSelected(sd.localization.GetAvailableLanguages()[lang])
}

// selectedLanguage returns the code of the selected language
func (sd *SettingsDialog) selectedLanguage() string {
	return sd.languageCodes[sd.languageSelect.Selected]
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	lang := sd.selectedLanguage()
	if lang == "" {
		return
	}

	if err := sd.store.Save(config.StringSetting(config.KeyLanguage, lang)); err != nil {
		sd.logger.Error().Err(err).Str("language", lang).Msg("Failed to save settings")
		dialog.ShowError(err, sd.window)
		return
	}

	sd.logger.Info().Str("language", lang).Msg("Settings saved")
	if sd.onSaved != nil {
		sd.onSaved(lang)
	}
}
