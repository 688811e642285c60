package art

// Entry is a single named piece of art.
type Entry struct {
	Name  string
	Lines []string
}

// Category groups entries that can be selected by name from a prompt.
type Category struct {
	Name    string
	Entries []Entry
}

// catalog holds the selectable art in match order. Categories are scanned
// first to last, entries within a category first to last.
var catalog = []Category{
	{
		Name: "animals",
		Entries: []Entry{
			{Name: "cat", Lines: []string{
				"    /\\_/\\  ",
				"   ( o.o ) ",
				"    > ^ <  ",
			}},
			{Name: "dog", Lines: []string{
				"    / \\__  ",
				"   (    @\\___",
				"   /         O",
				"  /   (_____/",
				" /_____/   U",
			}},
			{Name: "bird", Lines: []string{
				"     .-.   ",
				"    (o o)  ",
				"     |_|   ",
				"    /| |\\  ",
				"   ( | | ) ",
				"    \"\"\"\"\"  ",
			}},
			{Name: "fish", Lines: []string{
				"    ><((('> ",
				"   <'((((><",
				"    ><((('> ",
			}},
			{Name: "butterfly", Lines: []string{
				"    .-.   .-.   ",
				"   (   `-'   )  ",
				"    `-.   .-'   ",
				"      `-'       ",
			}},
		},
	},
	{
		Name: "objects",
		Entries: []Entry{
			{Name: "heart", Lines: []string{
				"  ♥       ♥  ",
				" ♥   ♥   ♥   ",
				"  ♥       ♥  ",
				"   ♥     ♥   ",
				"    ♥   ♥    ",
				"     ♥ ♥     ",
				"      ♥      ",
			}},
			{Name: "star", Lines: []string{
				"    *     ",
				"   ***    ",
				"  *****   ",
				"   ***    ",
				"    *     ",
			}},
			{Name: "tree", Lines: []string{
				"    *     ",
				"   ***    ",
				"  *****   ",
				" *******  ",
				"    |     ",
				"    |     ",
			}},
			{Name: "house", Lines: []string{
				"    /\\    ",
				"   /  \\   ",
				"  /____\\  ",
				" |      | ",
				" |      | ",
				" |______| ",
			}},
			{Name: "flower", Lines: []string{
				"    @     ",
				"   @@@    ",
				"  @@@@@   ",
				"   @@@    ",
				"    |     ",
				"    |     ",
			}},
		},
	},
	{
		Name: "faces",
		Entries: []Entry{
			{Name: "happy", Lines: []string{
				"  ^   ^  ",
				"    -    ",
				"  \\___/  ",
			}},
			{Name: "sad", Lines: []string{
				"  ^   ^  ",
				"    -    ",
				"  ___/   ",
			}},
			{Name: "surprised", Lines: []string{
				"  O   O  ",
				"    -    ",
				"  \\___/  ",
			}},
			{Name: "wink", Lines: []string{
				"  ^   -  ",
				"    -    ",
				"  \\___/  ",
			}},
		},
	},
}

// textStyles are decorative glyph sets. They are never selected by a prompt.
// The line and double sets start with horizontal, vertical, then the four
// corners and the left and right tees.
var textStyles = map[string][]string{
	"block":  {"█", "▓", "▒", "░"},
	"line":   {"─", "│", "┌", "┐", "└", "┘", "├", "┤", "┬", "┴", "┼"},
	"double": {"═", "║", "╔", "╗", "╚", "╝", "╠", "╣", "╦", "╩", "╬"},
	"simple": {"*", "+", "-", "|", "#", "@", "%", "&"},
}

// GlyphRows is the height of every text glyph.
const GlyphRows = 5

// font maps an uppercase character to its glyph block. Characters missing
// from the font render as placeholderGlyph.
var font = map[rune][]string{
	' ': {
		"   ",
		"   ",
		"   ",
		"   ",
		"   ",
	},
	'A': {
		"  ██  ",
		" ████ ",
		"██  ██",
		"██████",
		"██  ██",
	},
	'S': {
		" █████",
		"██    ",
		" █████",
		"    ██",
		"█████ ",
	},
	'C': {
		" █████",
		"██    ",
		"██    ",
		"██    ",
		" █████",
	},
	'I': {
		"██████",
		"  ██  ",
		"  ██  ",
		"  ██  ",
		"██████",
	},
}

var placeholderGlyph = []string{
	"██████",
	"██  ██",
	"██████",
	"██  ██",
	"██████",
}

// Glyph returns the block for r, falling back to the placeholder.
func Glyph(r rune) []string {
	if g, ok := font[r]; ok {
		return g
	}
	return placeholderGlyph
}

var geometricPatterns = [][]string{
	{ // diamond
		"    *    ",
		"   ***   ",
		"  *****  ",
		" ******* ",
		"*********",
		" ******* ",
		"  *****  ",
		"   ***   ",
		"    *    ",
	},
	{ // spiral
		"████████",
		"█      █",
		"█ ████ █",
		"█ █  █ █",
		"█ █  █ █",
		"█ ████ █",
		"█      █",
		"████████",
	},
	{ // checkerboard
		"█ █ █ █ ",
		" █ █ █ █",
		"█ █ █ █ ",
		" █ █ █ █",
		"█ █ █ █ ",
		" █ █ █ █",
		"█ █ █ █ ",
		" █ █ █ █",
	},
	{ // wave
		"    ██    ██    ",
		"  ██  ██  ██  ██",
		"██      ██      ",
		"  ██  ██  ██  ██",
		"    ██    ██    ",
	},
}

var creativeArt = [][]string{
	{ // abstract
		"  ◢◤◢◤  ",
		" ◢◤  ◢◤ ",
		"◢◤    ◢◤",
		" ◢◤  ◢◤ ",
		"  ◢◤◢◤  ",
	},
	{ // pixel
		"▓▓▓▓▓▓▓▓",
		"▓  ▓▓  ▓",
		"▓▓    ▓▓",
		"▓  ▓▓  ▓",
		"▓▓▓▓▓▓▓▓",
	},
	{ // organic
		"   ◯   ◯   ",
		" ◯   ◯   ◯ ",
		"   ◯   ◯   ",
		" ◯   ◯   ◯ ",
		"   ◯   ◯   ",
	},
	{ // tech
		"┌─┐ ┌─┐ ┌─┐",
		"│ │ │ │ │ │",
		"└─┘ └─┘ └─┘",
		"┌─┐ ┌─┐ ┌─┐",
		"│ │ │ │ │ │",
		"└─┘ └─┘ └─┘",
	},
}
