package art

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator() *Generator {
	return New(rand.NewPCG(1, 2))
}

func TestGenerate_EmptyPromptShowsHelp(t *testing.T) {
	t.Parallel()

	out := newTestGenerator().Generate(nil)
	require.Contains(t, out, "Usage:")
	require.Contains(t, out, "Examples:")
}

func TestGenerate_CatalogEntries(t *testing.T) {
	t.Parallel()

	g := newTestGenerator()
	for _, c := range catalog {
		for _, e := range c.Entries {
			t.Run(c.Name+"/"+e.Name, func(t *testing.T) {
				out := g.Generate([]string{e.Name})
				lines := strings.Split(out, "\n")
				require.True(t, strings.HasPrefix(lines[0], "╔"))
				require.True(t, strings.HasPrefix(lines[len(lines)-1], "╚"))
				require.Contains(t, lines[1], titleCase(e.Name))
				require.Len(t, lines, len(e.Lines)+4)
			})
		}
	}
}

func TestGenerate_FirstMatchWins(t *testing.T) {
	t.Parallel()

	g := newTestGenerator()
	for range 5 {
		// dog appears first in the prompt but cat is declared first.
		out := g.Generate([]string{"dog", "cat"})
		require.Contains(t, out, "Cat")
		require.NotContains(t, out, "Dog")
	}

	// Category order beats entry order: animals are scanned before faces.
	out := g.Generate([]string{"happy", "fish"})
	require.Contains(t, out, "Fish")
}

func TestGenerate_SubstringMatch(t *testing.T) {
	t.Parallel()

	out := newTestGenerator().Generate([]string{"heartbreak"})
	require.Contains(t, out, "Heart")
}

func TestGenerate_CaseInsensitive(t *testing.T) {
	t.Parallel()

	out := newTestGenerator().Generate([]string{"BUTTERFLY"})
	require.Contains(t, out, "Butterfly")
}

func TestGenerate_Text(t *testing.T) {
	t.Parallel()

	out := newTestGenerator().Generate([]string{"text", "AB"})
	lines := strings.Split(out, "\n")
	require.Contains(t, lines[1], "AB")

	body := lines[3 : len(lines)-1]
	require.Len(t, body, GlyphRows)

	a := Glyph('A')
	b := Glyph('B')
	require.Equal(t, placeholderGlyph, b)
	for i, row := range body {
		require.Contains(t, row, a[i]+" "+b[i])
	}
}

func TestGenerate_TextDefaultsToASCII(t *testing.T) {
	t.Parallel()

	out := newTestGenerator().Generate([]string{"create", "text", "art"})
	require.Contains(t, strings.Split(out, "\n")[1], "ASCII")
}

func TestGenerate_Pattern(t *testing.T) {
	t.Parallel()

	g := newTestGenerator()
	for _, word := range []string{"pattern", "geometric", "shape", "design"} {
		out := g.Generate([]string{word})
		require.Contains(t, out, patternTitle)
		require.True(t, framedOneOf(out, patternTitle, geometricPatterns), "unexpected pattern:\n%s", out)
	}
}

func TestGenerate_Random(t *testing.T) {
	t.Parallel()

	g := newTestGenerator()
	for _, prompt := range []string{"random", "something else entirely"} {
		out := g.Generate(strings.Fields(prompt))
		require.True(t, framedOneOf(out, creativeTitle, creativeArt), "unexpected art:\n%s", out)
	}
}

func TestGenerate_SeededIsReproducible(t *testing.T) {
	t.Parallel()

	a := NewSeeded(42)
	b := NewSeeded(42)
	for range 10 {
		require.Equal(t, a.Generate([]string{"random"}), b.Generate([]string{"random"}))
	}
}

func TestFrame(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		require.Equal(t, NoArt, Frame(nil, "x"))
	})

	t.Run("aligned", func(t *testing.T) {
		out := Frame([]string{"ab", "abcd"}, "T")
		want := strings.Join([]string{
			"╔════════╗",
			"║   T    ║",
			"╠════════╣",
			"║   ab   ║",
			"║  abcd  ║",
			"╚════════╝",
		}, "\n")
		require.Equal(t, want, out)
	})

	t.Run("long title widens box", func(t *testing.T) {
		out := Frame([]string{"*"}, "Geometric Pattern")
		lines := strings.Split(out, "\n")
		w := ansi.StringWidth(lines[0])
		for _, l := range lines {
			assert.Equal(t, w, ansi.StringWidth(l), "line %q", l)
		}
	})
}

func TestBorderFromStyle(t *testing.T) {
	t.Parallel()

	require.Equal(t, border{h: "═", v: "║", tl: "╔", tr: "╗", bl: "╚", br: "╝", ml: "╠", mr: "╣"}, frameBorder)
	require.Equal(t, border{h: "─", v: "│", tl: "┌", tr: "┐", bl: "└", br: "┘", ml: "├", mr: "┤"}, borderFromStyle("line"))
}

func TestGenerate_StyleNamesAreNotSelectable(t *testing.T) {
	t.Parallel()

	g := newTestGenerator()
	for name := range textStyles {
		out := g.Generate([]string{name})
		require.True(t, framedOneOf(out, creativeTitle, creativeArt), "style %q was selected:\n%s", name, out)
	}
}

func TestCenter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"a", 4, " a  "},
		{"a", 5, "  a  "},
		{"ab", 5, "  ab "},
		{"abc", 2, "abc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, center(tt.s, tt.width))
	}
}

func framedOneOf(out, title string, bank [][]string) bool {
	for _, lines := range bank {
		if out == Frame(lines, title) {
			return true
		}
	}
	return false
}
