package model

import "time"

// Shared defaults used by both the viewer and server binaries.
const (
	// One terminal column is about eight pixels, so a 120ms tick of one
	// column keeps the pace of the 20ms, one pixel web carousel.
	DefaultTickInterval = 120 * time.Millisecond
	DefaultScrollStep   = 1
	DefaultDwell        = 5 * time.Second
	DefaultCooldown     = 5 * time.Second

	// Terminal geometry, in columns.
	DefaultWideThreshold = 100
	DefaultCardWidth     = 30
	DefaultCardGap       = 2

	DefaultTheme   = "auto"
	DefaultAPIHost = "127.0.0.1"
	DefaultAPIPort = 8080
)
