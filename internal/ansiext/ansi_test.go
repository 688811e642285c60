package ansiext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	require.Equal(t, "plain", Escape("plain"))
	require.Equal(t, "a␉b", Escape("a\tb"))
	require.Equal(t, "x␊", Escape("x\n"))
	require.Equal(t, "␡", Escape("\x7f"))
}

func TestSanitize(t *testing.T) {
	require.Equal(t, "red", Sanitize("\x1b[31mred\x1b[0m"))
	require.NotContains(t, Sanitize("bell\a"), "\a")
}
