// Package terminal wraps terminal size queries for the TUI renderer.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// FitsGrid reports whether a grid of the given dimensions plus HUD
// rows fits the current terminal.
func FitsGrid(gridWidth, gridHeight, hudRows int) bool {
	w, h := GetSize()
	return gridWidth <= w && gridHeight+hudRows <= h
}
