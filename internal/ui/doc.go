// Package ui contains the Fyne-based desktop dashboard. It owns the view
// state, turns user input (directory selection, search, category, sort,
// paging) into new views of the catalog snapshot and renders product rows
// and notifications. All UI strings are localized via Localization.
package ui
