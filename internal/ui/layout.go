package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutSplitWidth is the minimum width to show the item detail beside
	// the item list instead of below it.
	LayoutSplitWidth = 100

	// LayoutSidebarWidth is the minimum width to show the home sidebar ad.
	LayoutSidebarWidth = 120

	// ListPaneRatio is the share of the width given to the item list in
	// split layout, in percent.
	ListPaneRatio = 45
)

// Log display limits.
const (
	// LogBufferLimit is the maximum number of log lines to keep in memory.
	LogBufferLimit = 2000
)

// Timing constants.
const (
	// NoticeTTL is how long a notice stays in the status line.
	NoticeTTL = 4 * time.Second

	// DefaultUIInterval is the default UI refresh interval.
	DefaultUIInterval = time.Second
)
