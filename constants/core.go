package constants

// Event Loop
const (
	// EventChannelSize is the buffer of the terminal event poller channel
	EventChannelSize = 100

	// UpdateChannelSize is the buffer of tick results waiting to be rendered
	UpdateChannelSize = 4
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "vi-snake.log"

	// MaxLogSize is the size above which the log file is rotated on startup
	MaxLogSize = 10 * 1024 * 1024
)
