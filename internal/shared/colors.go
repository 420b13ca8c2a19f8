package shared

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Package-level color variables
var (
	ColorInfo    = color.New(color.FgCyan)
	ColorSuccess = color.New(color.FgGreen)
	ColorWarning = color.New(color.FgYellow)
	ColorError   = color.New(color.FgRed)
	ColorDim     = color.New(color.Faint)

	// Per-source colors for genre provenance display
	ColorBeatport = color.New(color.FgGreen)
	ColorLastfm   = color.New(color.FgYellow)
	ColorML       = color.New(color.FgBlue)
)

// InitializeColors initializes color output based on TTY detection
func InitializeColors() {
	color.NoColor = !isatty.IsTerminal(os.Stdout.Fd())
}
