package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconView     = "👁"
	IconEdit     = "✎"
	IconReload   = "⟳"
	IconPrev     = "◀"
	IconNext     = "▶"
	IconWarning  = "⚠"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing (ProductRow / lists)
const (
	CategoryLabelWidth float32 = 120
	PriceLabelWidth    float32 = 96
	StatusLabelWidth   float32 = 104

	RowMinWidth  float32 = 480
	RowMinHeight float32 = 44

	WindowWidth  float32 = 960
	WindowHeight float32 = 640

	SearchMinWidth float32 = 240
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 260
)

// Notification behavior
const (
	NotificationAutoHide = 5 * time.Second
)
