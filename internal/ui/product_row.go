package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/catalog-dashboard/internal/model"
)

// ProductRow renders one product of the current page
type ProductRow struct {
	widget.BaseWidget

	product      model.Product
	localization *Localization

	// UI components
	nameLabel     *widget.Label
	categoryLabel *widget.Label
	priceLabel    *widget.Label
	statusLabel   *widget.Label

	// Action buttons
	viewBtn   *widget.Button
	editBtn   *widget.Button
	revealBtn *widget.Button // reveal source file in file manager
	openBtn   *widget.Button // open source file with default app

	// Callbacks
	onView   func(product model.Product)
	onEdit   func(product model.Product)
	onReveal func(filePath string)
	onOpen   func(filePath string)
}

// NewProductRow creates a new product row widget
func NewProductRow(localization *Localization) *ProductRow {
	pr := &ProductRow{localization: localization}
	pr.ExtendBaseWidget(pr)
	pr.createUI()
	return pr
}

// SetCallbacks sets the action callbacks
func (pr *ProductRow) SetCallbacks(
	onView func(product model.Product),
	onEdit func(product model.Product),
	onReveal func(filePath string),
	onOpen func(filePath string),
) {
	pr.onView = onView
	pr.onEdit = onEdit
	pr.onReveal = onReveal
	pr.onOpen = onOpen
}

// SetProduct updates the row with new product data
func (pr *ProductRow) SetProduct(product model.Product) {
	pr.product = product
	pr.updateFromProduct()
	pr.Refresh()
}

// Product returns the product currently shown
func (pr *ProductRow) Product() model.Product {
	return pr.product
}

func (pr *ProductRow) createUI() {
	pr.nameLabel = widget.NewLabel("")
	pr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	pr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	pr.categoryLabel = widget.NewLabel("")
	pr.categoryLabel.Truncation = fyne.TextTruncateEllipsis
	pr.priceLabel = widget.NewLabel("")
	pr.priceLabel.Alignment = fyne.TextAlignTrailing
	pr.priceLabel.TextStyle = fyne.TextStyle{Monospace: true}
	pr.statusLabel = widget.NewLabel("")

	pr.viewBtn = widget.NewButton(IconView, func() {
		if pr.onView != nil {
			pr.onView(pr.product)
		}
	})
	pr.editBtn = widget.NewButton(IconEdit, func() {
		if pr.onEdit != nil {
			pr.onEdit(pr.product)
		}
	})
	pr.revealBtn = widget.NewButton(IconFolder, func() {
		if pr.onReveal != nil && pr.product.SourceFile != "" {
			pr.onReveal(pr.product.SourceFile)
		}
	})
	pr.openBtn = widget.NewButton(IconFile, func() {
		if pr.onOpen != nil && pr.product.SourceFile != "" {
			pr.onOpen(pr.product.SourceFile)
		}
	})
	for _, btn := range []*widget.Button{pr.viewBtn, pr.editBtn, pr.revealBtn, pr.openBtn} {
		btn.Importance = widget.LowImportance
	}
}

func (pr *ProductRow) updateFromProduct() {
	p := pr.product

	pr.nameLabel.SetText(singleLine(p.DisplayName()))

	category := p.Category
	if category == "" {
		category = DashPlaceholder
	}
	pr.categoryLabel.SetText(singleLine(category))

	pr.priceLabel.SetText(p.Price.Format())

	status := p.Availability()
	pr.statusLabel.Importance = StatusImportance(status)
	pr.statusLabel.SetText(pr.localization.Availability(status))

	if p.SourceFile == "" {
		pr.revealBtn.Disable()
		pr.openBtn.Disable()
	} else {
		pr.revealBtn.Enable()
		pr.openBtn.Enable()
	}
}

// StatusImportance maps availability to the label color
func StatusImportance(a model.Availability) widget.Importance {
	switch a {
	case model.AvailabilityInactive:
		return widget.WarningImportance
	case model.AvailabilityOutOfStock:
		return widget.DangerImportance
	default:
		return widget.SuccessImportance
	}
}

func singleLine(s string) string {
	return strings.TrimSpace(strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(s))
}

// CreateRenderer creates the widget renderer
func (pr *ProductRow) CreateRenderer() fyne.WidgetRenderer {
	// Fixed widths keep the columns aligned across rows
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	info := container.NewHBox(
		fixedWidth(CategoryLabelWidth, pr.categoryLabel),
		fixedWidth(PriceLabelWidth, pr.priceLabel),
		fixedWidth(StatusLabelWidth, pr.statusLabel),
	)
	actions := container.NewHBox(pr.viewBtn, pr.editBtn, pr.revealBtn, pr.openBtn)
	rightCluster := container.NewBorder(nil, nil, nil, actions, info)

	content := container.NewVBox(
		container.NewBorder(nil, nil, nil, rightCluster, pr.nameLabel),
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(content)
}

// MinSize keeps rows from collapsing in narrow windows
func (pr *ProductRow) MinSize() fyne.Size {
	size := pr.BaseWidget.MinSize()
	return fyne.NewSize(max(size.Width, RowMinWidth), max(size.Height, RowMinHeight))
}
