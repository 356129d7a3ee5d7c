package ui

import (
	"fyne.io/fyne/v2"
)

// AppIcon is looked up next to the executable's working directory
const AppIcon = "catalog-dashboard.png"

// LoadLogoResource loads the application icon. A missing file leaves the
// default Fyne icon in place.
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
