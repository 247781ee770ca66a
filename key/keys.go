// Package key defines the configuration identifiers used for centralized settings management.
package key

// Derivation - these keys select how the palette is derived from a base color.
const (
	DeriveVariant = "derive.variant"
	DeriveBoost   = "derive.boost"
)

// Palette Source - these keys locate the named color collection.
const (
	PalettePath = "palette.path"
)

// Workspace Settings - these keys describe where and how the style map is persisted.
const (
	SettingsFile    = "settings.file"
	SettingsSection = "settings.section"
	SettingsIndent  = "settings.indent"
)

// Terminal User Interface (TUI) - these keys configure the interactive picker.
const (
	TUILivePreview = "tui.live_preview"
	TUIItemSpacing = "tui.item_spacing"
	TUIShowHex     = "tui.show_hex"
)

// Recently Applied Colors - these keys configure the recent colors registry.
const (
	RecentLimit = "recent.limit"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern non-TUI behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
