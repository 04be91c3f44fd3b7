// Package env keeps names of environment variables with special significance
// to the editor runtime.
package env

// Environment variables with special significance to the editor runtime.
const (
	HOME    = "HOME"
	LOGNAME = "LOGNAME"
	USER    = "USER"
)
