package ui

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/catalog-dashboard/internal/catalog"
	"github.com/ytget/catalog-dashboard/internal/config"
	"github.com/ytget/catalog-dashboard/internal/logging"
	"github.com/ytget/catalog-dashboard/internal/model"
	"github.com/ytget/catalog-dashboard/internal/platform"
	"github.com/ytget/catalog-dashboard/internal/query"
)

// Options wires the dashboard to its collaborators
type Options struct {
	Catalog  catalog.Catalog
	Resolver *config.DirectoryResolver
	Settings *config.SettingsStore

	// Chooser asks for a directory; the Fyne folder dialog when nil
	Chooser config.DirectoryChooser

	Logger   *zerolog.Logger
	TypeTag  string
	PageSize int
}

// DashboardUI is the main window content. View state, products and
// categories are only touched on the UI goroutine.
type DashboardUI struct {
	window       fyne.Window
	catalog      catalog.Catalog
	resolver     *config.DirectoryResolver
	settings     *config.SettingsStore
	chooser      config.DirectoryChooser
	localization *Localization
	logger       *zerolog.Logger
	typeTag      string

	state      query.ViewState
	view       query.View
	products   []model.Product
	categories []string
	syncing    bool // set while widgets are updated programmatically

	// Top bar
	directoryLabel *widget.Label
	selectBtn      *widget.Button
	reloadBtn      *widget.Button
	settingsBtn    *widget.Button

	// Not connected banner
	banner      *fyne.Container
	bannerLabel *widget.Label

	// Filters
	searchEntry    *widget.Entry
	categorySelect *widget.Select
	sortSelect     *widget.Select

	productList *widget.List
	emptyLabel  *widget.Label

	// Pager
	prevBtn     *widget.Button
	nextBtn     *widget.Button
	pageLabel   *widget.Label
	countsLabel *widget.Label

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite

	ctx    context.Context
	cancel context.CancelFunc

	notifyMu  sync.Mutex
	notifySeq int
}

// NewDashboardUI creates and initializes the main UI
func NewDashboardUI(window fyne.Window, opts Options) *DashboardUI {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	localization := NewLocalization()
	localization.SetLanguage(opts.Settings.Load().Language())

	ui := &DashboardUI{
		window:       window,
		catalog:      opts.Catalog,
		resolver:     opts.Resolver,
		settings:     opts.Settings,
		chooser:      opts.Chooser,
		localization: localization,
		logger:       logger,
		typeTag:      opts.TypeTag,
		state:        query.NewViewState(opts.PageSize),
	}
	ui.ctx, ui.cancel = context.WithCancel(context.Background())
	if ui.chooser == nil {
		ui.chooser = NewFolderChooser(window, func() string {
			path, _ := ui.resolver.GetPath()
			return path
		})
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Snapshots arrive from the reload goroutine
	ui.catalog.SetUpdateCallback(ui.onSnapshot)

	ui.setupUI()
	ui.refreshView()
	return ui
}

// Start shows the persisted directory, if any, and loads it
func (ui *DashboardUI) Start() {
	path, ok := ui.resolver.GetPath()
	ui.setConnected(path, ok)
	if ok {
		ui.Reload()
	}
}

// setupUI creates and arranges all UI components
func (ui *DashboardUI) setupUI() {
	l := ui.localization
	ui.createMenu()

	ui.directoryLabel = widget.NewLabel("")
	ui.directoryLabel.Truncation = fyne.TextTruncateEllipsis
	ui.selectBtn = widget.NewButton(IconFolder+" "+l.GetText(KeySelectDirectory), ui.onSelectDirectory)
	ui.selectBtn.Importance = widget.HighImportance
	ui.reloadBtn = widget.NewButton(IconReload, ui.Reload)
	ui.reloadBtn.Importance = widget.LowImportance
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance
	topBar := container.NewBorder(nil, nil, ui.settingsBtn, container.NewHBox(ui.reloadBtn, ui.selectBtn), ui.directoryLabel)

	ui.bannerLabel = widget.NewLabel(IconWarning + " " + l.GetText(KeyNotConnected))
	ui.bannerLabel.Importance = widget.WarningImportance
	ui.bannerLabel.Wrapping = fyne.TextWrapWord
	ui.banner = container.NewPadded(ui.bannerLabel)
	ui.banner.Hide()

	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Truncation = fyne.TextTruncateEllipsis
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, ui.notificationSpinner, nil, ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(l.GetText(KeySearchPlaceholder))
	ui.searchEntry.OnChanged = ui.onSearchChanged

	ui.categorySelect = widget.NewSelect(nil, ui.onCategoryChanged)
	ui.sortSelect = widget.NewSelect(nil, ui.onSortChanged)
	ui.syncFilterOptions()

	filters := container.NewBorder(nil, nil, nil, container.NewHBox(ui.categorySelect, ui.sortSelect), ui.searchEntry)

	ui.productList = widget.NewList(
		func() int {
			return len(ui.view.Page.Items)
		},
		func() fyne.CanvasObject { return ui.createProductItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateProductItem(id, obj) },
	)
	ui.emptyLabel = widget.NewLabel(l.GetText(KeyNoProducts))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	ui.emptyLabel.Hide()

	ui.prevBtn = widget.NewButton(IconPrev+" "+l.GetText(KeyPrev), ui.onPrevPage)
	ui.nextBtn = widget.NewButton(l.GetText(KeyNext)+" "+IconNext, ui.onNextPage)
	ui.pageLabel = widget.NewLabel("")
	ui.pageLabel.Alignment = fyne.TextAlignCenter
	ui.countsLabel = widget.NewLabel("")
	ui.countsLabel.Importance = widget.LowImportance
	pager := container.NewBorder(nil, nil, ui.countsLabel, container.NewHBox(ui.prevBtn, ui.pageLabel, ui.nextBtn))

	top := container.NewVBox(topBar, ui.banner, ui.notificationContainer, filters, widget.NewSeparator())
	content := container.NewBorder(
		top,   // top
		pager, // bottom
		nil,   // left
		nil,   // right
		container.NewStack(ui.productList, ui.emptyLabel),
	)
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *DashboardUI) createMenu() {
	l := ui.localization

	fileMenu := fyne.NewMenu(l.GetText(KeyFile),
		fyne.NewMenuItem(l.GetText(KeySelectDirectory), ui.onSelectDirectory),
		fyne.NewMenuItem(l.GetText(KeyReload), ui.Reload),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(l.GetText(KeySettings), ui.onShowSettings),
	)

	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	codes := make([]string, 0)
	available := l.GetAvailableLanguages()
	for code := range available {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	current := ui.settings.Load().Language()
	for _, code := range codes {
		langCode := code
		item := fyne.NewMenuItem(available[code], func() {
			ui.onLanguageChange(langCode)
		})
		item.Checked = current == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// syncFilterOptions rebuilds the category and sort choices for the current
// snapshot and language without firing change handlers.
func (ui *DashboardUI) syncFilterOptions() {
	ui.syncing = true
	defer func() { ui.syncing = false }()

	l := ui.localization
	categories := append([]string{l.GetText(KeyAllCategories)}, ui.categories...)
	ui.categorySelect.Options = categories
	if ui.state.Category == "" {
		ui.categorySelect.SetSelected(categories[0])
	} else {
		ui.categorySelect.SetSelected(ui.state.Category)
	}
	ui.categorySelect.Refresh()

	sortOptions := make([]string, 0, len(query.SortKeys()))
	for _, key := range query.SortKeys() {
		sortOptions = append(sortOptions, ui.sortLabel(key))
	}
	ui.sortSelect.Options = sortOptions
	ui.sortSelect.SetSelected(ui.sortLabel(ui.state.Sort))
	ui.sortSelect.Refresh()
}

func (ui *DashboardUI) sortLabel(key query.SortKey) string {
	switch key {
	case query.SortName:
		return ui.localization.GetText(KeySortName)
	case query.SortPriceAsc:
		return ui.localization.GetText(KeySortPriceAsc)
	case query.SortPriceDesc:
		return ui.localization.GetText(KeySortPriceDesc)
	default:
		return ui.localization.GetText(KeySortNone)
	}
}

// onLanguageChange handles language change from the menu
func (ui *DashboardUI) onLanguageChange(langCode string) {
	if err := ui.settings.Save(config.StringSetting(config.KeyLanguage, langCode)); err != nil {
		ui.logger.Error().Err(err).Str("language", langCode).Msg("Failed to save language")
		ui.showNotification(ui.localization.GetText(KeySettingsSaveFailed)+": "+err.Error(), false)
	}
	ui.applyLanguage(langCode)
}

func (ui *DashboardUI) applyLanguage(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *DashboardUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.selectBtn.SetText(IconFolder + " " + l.GetText(KeySelectDirectory))
	ui.bannerLabel.SetText(IconWarning + " " + l.GetText(KeyNotConnected))
	ui.searchEntry.SetPlaceHolder(l.GetText(KeySearchPlaceholder))
	ui.emptyLabel.SetText(l.GetText(KeyNoProducts))
	ui.prevBtn.SetText(IconPrev + " " + l.GetText(KeyPrev))
	ui.nextBtn.SetText(l.GetText(KeyNext) + " " + IconNext)
	ui.syncFilterOptions()
	ui.refreshView()
}

// setConnected reflects the directory state in the top bar and banner
func (ui *DashboardUI) setConnected(path string, ok bool) {
	if !ok {
		ui.directoryLabel.SetText(DashPlaceholder)
		ui.banner.Show()
		ui.reloadBtn.Disable()
		return
	}
	ui.directoryLabel.SetText(path)
	ui.banner.Hide()
	ui.reloadBtn.Enable()
}

// onSelectDirectory asks for a catalog directory and loads it
func (ui *DashboardUI) onSelectDirectory() {
	go func() {
		path, ok, err := ui.resolver.SelectPath(ui.ctx, ui.chooser)
		if err != nil {
			ui.logger.Error().Err(err).Msg("Directory selection failed")
			ui.showNotification(ui.localization.GetText(KeyLoadFailed)+": "+err.Error(), false)
			return
		}
		if !ok {
			return
		}
		fyne.Do(func() { ui.setConnected(path, true) })
		ui.Reload()
	}()
}

// Reload rebuilds the catalog in the background. Reloads requested while
// one is running share its result.
func (ui *DashboardUI) Reload() {
	go ui.load(ui.ctx)
}

// Close cancels background work; call it when the window closes
func (ui *DashboardUI) Close() {
	ui.cancel()
}

// load runs one reload and reports the outcome. The snapshot itself is
// applied by onSnapshot.
func (ui *DashboardUI) load(ctx context.Context) {
	l := ui.localization
	ui.showNotification(l.GetText(KeyLoading), true)

	snap, err := ui.catalog.Reload(ctx, ui.typeTag)
	switch {
	case errors.Is(err, catalog.ErrNotConnected):
		fyne.Do(func() { ui.setConnected("", false) })
		ui.hideNotification()
		return
	case errors.Is(err, context.Canceled), errors.Is(err, catalog.ErrDirectoryChanged):
		return
	case err != nil:
		ui.logger.Error().Err(err).Msg("Catalog reload failed")
		ui.showNotification(l.GetText(KeyLoadFailed)+": "+err.Error(), false)
		return
	}

	message := l.Format(KeyLoaded, snap.Len(), fileCount(snap))
	if len(snap.Failures) > 0 {
		message += MiddleDotSeparator + l.Format(KeySkippedFiles, len(snap.Failures))
	}
	ui.showNotification(message, false)
}

func fileCount(snap catalog.Snapshot) int {
	files := make(map[string]struct{})
	for _, p := range snap.Products {
		files[p.SourceFile] = struct{}{}
	}
	return len(files)
}

// onSnapshot is the catalog update callback
func (ui *DashboardUI) onSnapshot(snap catalog.Snapshot) {
	fyne.Do(func() { ui.applySnapshot(snap) })
}

// applySnapshot replaces the product collection. The view state survives
// unless its category no longer exists.
func (ui *DashboardUI) applySnapshot(snap catalog.Snapshot) {
	ui.products = snap.Products
	ui.categories = snap.Categories
	if ui.state.Category != "" && !snap.HasCategory(ui.state.Category) {
		ui.state = ui.state.WithCategory("")
	}
	if snap.Dir != "" {
		ui.setConnected(snap.Dir, true)
	}
	ui.syncFilterOptions()
	ui.refreshView()
}

// refreshView recomputes the visible page from the view state
func (ui *DashboardUI) refreshView() {
	l := ui.localization
	ui.view = ui.state.Compute(ui.products)
	ui.state = ui.view.State
	page := ui.view.Page

	ui.pageLabel.SetText(l.Format(KeyPageOf, page.Page, page.TotalPages))
	if page.HasPrev() {
		ui.prevBtn.Enable()
	} else {
		ui.prevBtn.Disable()
	}
	if page.HasNext() {
		ui.nextBtn.Enable()
	} else {
		ui.nextBtn.Disable()
	}

	first, last := page.Range()
	ui.countsLabel.SetText(l.Format(KeyShowing, first, last, ui.view.Matched, len(ui.products)))

	if ui.view.Matched == 0 && len(ui.products) > 0 {
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
	}

	ui.productList.Refresh()
	ui.productList.ScrollToTop()
}

func (ui *DashboardUI) onSearchChanged(text string) {
	if ui.syncing {
		return
	}
	ui.state = ui.state.WithSearch(text)
	ui.refreshView()
}

func (ui *DashboardUI) onCategoryChanged(label string) {
	if ui.syncing {
		return
	}
	category := label
	if label == ui.localization.GetText(KeyAllCategories) {
		category = ""
	}
	ui.state = ui.state.WithCategory(category)
	ui.refreshView()
}

func (ui *DashboardUI) onSortChanged(label string) {
	if ui.syncing {
		return
	}
	for _, key := range query.SortKeys() {
		if ui.sortLabel(key) == label {
			ui.state = ui.state.WithSort(key)
			break
		}
	}
	ui.refreshView()
}

func (ui *DashboardUI) onPrevPage() {
	ui.state = ui.state.Prev()
	ui.refreshView()
}

func (ui *DashboardUI) onNextPage() {
	ui.state = ui.state.Next(ui.view.Page.TotalPages)
	ui.refreshView()
}

// createProductItem creates a new product row for the list
func (ui *DashboardUI) createProductItem() fyne.CanvasObject {
	row := NewProductRow(ui.localization)
	row.SetCallbacks(ui.onViewProduct, ui.onEditProduct, ui.onRevealFile, ui.onOpenFile)
	return row
}

// updateProductItem binds a list item to the product at id on the current page
func (ui *DashboardUI) updateProductItem(id widget.ListItemID, item fyne.CanvasObject) {
	items := ui.view.Page.Items
	if id < 0 || id >= len(items) {
		return
	}
	if row, ok := item.(*ProductRow); ok {
		row.SetProduct(items[id])
	}
}

// onViewProduct and onEditProduct are placeholders until product detail and
// editing screens exist.
func (ui *DashboardUI) onViewProduct(p model.Product) {
	ui.logger.Info().Str("id", p.ID).Str("action", "view").Msg("Product action")
	ui.showNotification(ui.localization.GetText(KeyView)+": "+p.DisplayName()+MiddleDotSeparator+ui.localization.GetText(KeyNotAvailableYet), false)
}

func (ui *DashboardUI) onEditProduct(p model.Product) {
	ui.logger.Info().Str("id", p.ID).Str("action", "edit").Msg("Product action")
	ui.showNotification(ui.localization.GetText(KeyEdit)+": "+p.DisplayName()+MiddleDotSeparator+ui.localization.GetText(KeyNotAvailableYet), false)
}

// onRevealFile reveals a catalog file in the system file manager
func (ui *DashboardUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		ui.logger.Error().Err(err).Str("file", filePath).Msg("Error revealing file")
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(), false)
	}
}

// onOpenFile opens a catalog file with the default application
func (ui *DashboardUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		ui.logger.Error().Err(err).Str("file", filePath).Msg("Error opening file")
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(), false)
	}
}

// onShowSettings shows the settings dialog
func (ui *DashboardUI) onShowSettings() {
	path, _ := ui.resolver.GetPath()
	NewSettingsDialog(ui.window, ui.settings, ui.localization, ui.logger, ui.onSelectDirectory, func(lang string) {
		ui.applyLanguage(lang)
		ui.showNotification(ui.localization.GetText(KeySettingsSaved), false)
	}).Show(path)
}

// showNotification displays a message in the notification panel under the top bar.
// When spinning is true, a spinner is shown to indicate background activity;
// other messages hide themselves after a while unless replaced.
func (ui *DashboardUI) showNotification(message string, spinning bool) {
	ui.notifyMu.Lock()
	ui.notifySeq++
	seq := ui.notifySeq
	ui.notifyMu.Unlock()

	if !spinning {
		time.AfterFunc(NotificationAutoHide, func() {
			ui.notifyMu.Lock()
			current := ui.notifySeq == seq
			ui.notifyMu.Unlock()
			if current {
				ui.hideNotification()
			}
		})
	}

	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *DashboardUI) hideNotification() {
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}
