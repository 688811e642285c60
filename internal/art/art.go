// Package art renders canned ASCII art from a free-form prompt.
//
// A prompt is matched against the catalog first, then against the text,
// pattern and random fallbacks. Every result is wrapped in the same double
// line frame.
package art

import (
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	// NoArt is returned by Frame when there is nothing to frame.
	NoArt = "No art generated"

	patternTitle  = "Geometric Pattern"
	creativeTitle = "Creative Art"
	defaultText   = "ASCII"
)

// Help is shown when ascii is invoked without a prompt.
const Help = `
ASCII Art Generator Help:

Usage: ascii <prompt>

Examples:
  ascii cat          - Generate a cat
  ascii heart        - Generate a heart
  ascii happy        - Generate a happy face
  ascii text hello   - Generate text art for "hello"
  ascii pattern      - Generate a geometric pattern
  ascii random       - Generate random creative art

Available categories:
  Animals: cat, dog, bird, fish, butterfly
  Objects: heart, star, tree, house, flower
  Faces: happy, sad, surprised, wink
  Text: text <your_text>
  Patterns: pattern, geometric, design
`

var (
	textTriggers    = []string{"text", "word", "letter", "name"}
	patternTriggers = []string{"pattern", "geometric", "shape", "design"}
	stopWords       = map[string]bool{
		"text":     true,
		"word":     true,
		"letter":   true,
		"name":     true,
		"ascii":    true,
		"art":      true,
		"generate": true,
		"create":   true,
	}
)

// Generator produces art for prompts. It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator drawing from src. A nil src is seeded from the
// runtime's entropy source.
func New(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{rng: rand.New(src)}
}

// NewSeeded returns a generator with reproducible draws. A zero seed is
// treated as unseeded.
func NewSeeded(seed int64) *Generator {
	if seed == 0 {
		return New(nil)
	}
	return New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// Generate renders art for the given prompt words.
func (g *Generator) Generate(words []string) string {
	if len(words) == 0 {
		return Help
	}

	prompt := strings.ToLower(strings.Join(words, " "))

	if e, ok := Match(prompt); ok {
		return Frame(e.Lines, titleCase(e.Name))
	}

	if containsAny(prompt, textTriggers) {
		return RenderText(extractText(prompt))
	}

	if containsAny(prompt, patternTriggers) {
		return Frame(g.pick(geometricPatterns), patternTitle)
	}

	return Frame(g.pick(creativeArt), creativeTitle)
}

// Match returns the first catalog entry whose name occurs anywhere in prompt.
func Match(prompt string) (Entry, bool) {
	for _, c := range catalog {
		for _, e := range c.Entries {
			if strings.Contains(prompt, e.Name) {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// RenderText draws text with the block font and frames it.
func RenderText(text string) string {
	if text == "" {
		text = defaultText
	}
	text = strings.ToUpper(text)

	var glyphs [][]string
	for _, r := range text {
		glyphs = append(glyphs, Glyph(r))
	}

	rows := make([]string, GlyphRows)
	parts := make([]string, len(glyphs))
	for i := range rows {
		for j, g := range glyphs {
			parts[j] = g[i]
		}
		rows[i] = strings.Join(parts, " ")
	}
	return Frame(rows, text)
}

// Frame wraps lines in a titled box. Lines and title are centered.
func Frame(lines []string, title string) string {
	if len(lines) == 0 {
		return NoArt
	}

	width := 0
	for _, l := range lines {
		width = max(width, ansi.StringWidth(l))
	}
	// Widen the box for a title that would otherwise overflow it.
	width = max(width, ansi.StringWidth(title)-2)

	b := frameBorder
	edge := strings.Repeat(b.h, width+4)
	var sb strings.Builder
	sb.WriteString(b.tl + edge + b.tr + "\n")
	sb.WriteString(b.v + " " + center(title, width+2) + " " + b.v + "\n")
	sb.WriteString(b.ml + edge + b.mr + "\n")
	for _, l := range lines {
		sb.WriteString(b.v + " " + center(l, width+2) + " " + b.v + "\n")
	}
	sb.WriteString(b.bl + edge + b.br)
	return sb.String()
}

type border struct {
	h, v           string
	tl, tr, bl, br string
	ml, mr         string
}

var frameBorder = borderFromStyle("double")

func borderFromStyle(name string) border {
	g := textStyles[name]
	return border{h: g[0], v: g[1], tl: g[2], tr: g[3], bl: g[4], br: g[5], ml: g[6], mr: g[7]}
}

// center pads s to width cells. An odd remainder goes to the left when
// width is odd and to the right otherwise.
func center(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	pad := width - w
	left := pad/2 + (pad & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func extractText(prompt string) string {
	var kept []string
	for _, w := range strings.Fields(prompt) {
		if !stopWords[w] {
			kept = append(kept, w)
		}
	}
	if len(kept) == 0 {
		return defaultText
	}
	return strings.Join(kept, " ")
}

func (g *Generator) pick(bank [][]string) []string {
	return bank[g.rng.IntN(len(bank))]
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
