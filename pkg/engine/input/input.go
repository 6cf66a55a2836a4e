// Package input reads raw terminal keys and maps them to high-level
// game intents.
package input

import (
	"log"
	"os"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence after
// an ESC byte. Returns the arrow direction string, "esc" for a bare
// escape, or empty for an unknown sequence.
func tryReadArrowKey() string {
	b2, err := readByte()
	if err != nil {
		return "esc"
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "esc"
	}

	b3, err := readByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	// Unknown escape sequence - discard it
	return ""
}

// GetKey reads one key press in raw mode and returns its code
// ("w", "arrow_up", "esc", ...). Keys return immediately without
// needing Enter.
func GetKey() string {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	for {
		b, err := readByte()
		if err != nil {
			return ""
		}

		switch {
		case b == 0x1b:
			if code := tryReadArrowKey(); code != "" {
				return code
			}
		case b == 3: // Ctrl+C
			return "quit"
		case b == '\n' || b == '\r':
			return "enter"
		case b >= 'A' && b <= 'Z':
			return string(b + 32)
		case b >= 32 && b < 127:
			return string(b)
		}
	}
}
