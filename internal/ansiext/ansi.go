// Package ansiext makes untrusted strings safe to print on a terminal.
package ansiext

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Escape replaces control characters with their Unicode Control Picture
// representations so they are visible instead of interpreted.
func Escape(content string) string {
	var sb strings.Builder
	sb.Grow(len(content))
	for _, r := range content {
		switch {
		case r >= 0 && r <= 0x1f: // Control characters 0x00-0x1F
			sb.WriteRune('␀' + r)
		case r == ansi.DEL:
			sb.WriteRune('␡')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Sanitize drops ANSI escape sequences from content and escapes whatever
// control characters remain.
func Sanitize(content string) string {
	return Escape(ansi.Strip(content))
}
