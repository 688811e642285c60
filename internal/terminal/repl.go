package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/simpleterm/internal/version"
	"github.com/chzyer/readline"
)

const interruptHint = "Use 'exit' to quit the terminal."

// LineReader reads input lines for Run. *readline.Instance satisfies it.
// Readline returns readline.ErrInterrupt on Ctrl-C and io.EOF at end of
// input.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

var (
	userStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B50FF")).Bold(true)
	dirStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00A4FF"))
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF60FF")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#858392"))
)

// Run reads and executes lines until exit, end of input, or ctx is done.
// Ctrl-C while typing only prints a hint.
func (t *Terminal) Run(ctx context.Context, rl LineReader) error {
	defer rl.Close()

	t.printBanner()
	for t.running {
		if err := ctx.Err(); err != nil {
			return err
		}

		rl.SetPrompt(t.styledPrompt())
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			fmt.Fprintln(t.out, interruptHint)
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(t.out, farewell)
			return nil
		case err != nil:
			return fmt.Errorf("failed to read input: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		if result := t.Execute(ctx, line); result != "" {
			fmt.Fprintln(t.out, result)
		}
		fmt.Fprintln(t.out)
	}
	return nil
}

func (t *Terminal) printBanner() {
	title := "🚀 Simple Terminal " + version.Version
	hint := "Type 'help' for available commands or 'exit' to quit."
	if t.styled {
		title = bannerStyle.Render(title)
		hint = mutedStyle.Render(hint)
	}
	fmt.Fprintf(t.out, "%s\n%s\n\n", title, hint)
}

func (t *Terminal) styledPrompt() string {
	if !t.styled {
		return t.Prompt()
	}
	return fmt.Sprintf("%s: %s$ ",
		userStyle.Render("terminal@"+filepath.Base(t.dir)),
		dirStyle.Render(t.dir),
	)
}
