// Package customization owns the set of managed style keys and merges them into a
// larger, user-owned style map without touching anything else.
package customization

// Managed style keys.
const (
	TitleBarActiveBackground      = "titleBar.activeBackground"
	TitleBarActiveForeground      = "titleBar.activeForeground"
	TitleBarInactiveBackground    = "titleBar.inactiveBackground"
	TitleBarInactiveForeground    = "titleBar.inactiveForeground"
	TitleBarBorder                = "titleBar.border"
	StatusBarBackground           = "statusBar.background"
	StatusBarForeground           = "statusBar.foreground"
	StatusBarDebuggingBackground  = "statusBar.debuggingBackground"
	StatusBarDebuggingForeground  = "statusBar.debuggingForeground"
	ActivityBarBackground         = "activityBar.background"
	ActivityBarForeground         = "activityBar.foreground"
	ActivityBarInactiveForeground = "activityBar.inactiveForeground"
	TabActiveBorder               = "tab.activeBorder"
)

var managedKeys = []string{
	TitleBarActiveBackground,
	TitleBarActiveForeground,
	TitleBarInactiveBackground,
	TitleBarInactiveForeground,
	TitleBarBorder,
	StatusBarBackground,
	StatusBarForeground,
	StatusBarDebuggingBackground,
	StatusBarDebuggingForeground,
	ActivityBarBackground,
	ActivityBarForeground,
	ActivityBarInactiveForeground,
	TabActiveBorder,
}

var managedSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(managedKeys))
	for _, k := range managedKeys {
		set[k] = struct{}{}
	}
	return set
}()

// ManagedKeys returns the managed keys in their canonical order.
func ManagedKeys() []string {
	return append([]string(nil), managedKeys...)
}

// IsManaged reports whether key belongs to this system.
func IsManaged(key string) bool {
	_, ok := managedSet[key]
	return ok
}

// LegacyKeys is the smaller key set written by the fixed-boost variant.
// Every legacy key is also managed.
func LegacyKeys() []string {
	return []string{
		TitleBarActiveBackground,
		TitleBarInactiveBackground,
		TitleBarBorder,
		StatusBarBackground,
		StatusBarDebuggingBackground,
		TabActiveBorder,
	}
}

// Pair links a managed background key to the foreground key drawn on top of it.
type Pair struct {
	Background string
	Foreground string
}

// ForegroundPairs lists the background/foreground pairs present in a full palette.
func ForegroundPairs() []Pair {
	return []Pair{
		{TitleBarActiveBackground, TitleBarActiveForeground},
		{TitleBarInactiveBackground, TitleBarInactiveForeground},
		{StatusBarBackground, StatusBarForeground},
		{StatusBarDebuggingBackground, StatusBarDebuggingForeground},
		{ActivityBarBackground, ActivityBarForeground},
		{ActivityBarBackground, ActivityBarInactiveForeground},
	}
}
