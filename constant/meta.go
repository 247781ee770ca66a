// Package constant defines immutable application-level identifiers.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "wscolors"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// Repository is the upstream repository used for release checks.
	Repository = "OhadRubin/workspace-colors"
)
