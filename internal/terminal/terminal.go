// Package terminal implements the command dispatcher and the interactive
// read-eval-print loop around it.
//
// A Terminal owns the session state (current directory and whether the loop
// should keep running). Execute turns one input line into display text and
// never fails: handler errors and panics are rendered as "Error: ..." text.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/simpleterm/internal/art"
	"github.com/charmbracelet/simpleterm/internal/fsext"
	"github.com/charmbracelet/simpleterm/internal/sysmon"
)

const defaultProcessLimit = 10

// Executor runs a command line in a directory and returns its captured
// stdout and stderr. *shell.Shell satisfies it.
type Executor interface {
	ExecIn(ctx context.Context, dir, command string) (stdout, stderr string, err error)
}

// Options configure a Terminal. Shell and Monitor are required.
type Options struct {
	// Dir is the initial working directory. Defaults to the process one.
	Dir     string
	Shell   Executor
	Monitor sysmon.Monitor
	// Art defaults to an unseeded generator.
	Art *art.Generator
	// Output receives side effects such as clear and is where Run prints.
	// Defaults to os.Stdout.
	Output io.Writer
	// ProcessLimit caps the ps listing. Defaults to 10.
	ProcessLimit int
	// Styled marks an interactive terminal: colors in the prompt and banner,
	// and clear erases the screen.
	Styled bool
}

// Terminal dispatches command lines. It is not safe for concurrent use.
type Terminal struct {
	dir     string
	running bool

	shell        Executor
	monitor      sysmon.Monitor
	art          *art.Generator
	out          io.Writer
	processLimit int
	styled       bool

	registry *registry
	listDir  func(dir string) ([]fsext.Entry, error)
}

// New returns a Terminal ready to execute commands.
func New(opts Options) (*Terminal, error) {
	if opts.Shell == nil {
		return nil, errors.New("terminal: shell executor is required")
	}
	if opts.Monitor == nil {
		return nil, errors.New("terminal: system monitor is required")
	}

	dir := opts.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current working directory: %w", err)
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", opts.Dir, err)
	}

	t := &Terminal{
		dir:          dir,
		running:      true,
		shell:        opts.Shell,
		monitor:      opts.Monitor,
		art:          opts.Art,
		out:          opts.Output,
		processLimit: opts.ProcessLimit,
		styled:       opts.Styled,
		registry:     newRegistry(),
		listDir:      fsext.ListDirectory,
	}
	if t.art == nil {
		t.art = art.New(nil)
	}
	if t.out == nil {
		t.out = os.Stdout
	}
	if t.processLimit <= 0 {
		t.processLimit = defaultProcessLimit
	}
	t.registry.mustRegister(builtins()...)
	return t, nil
}

// Dir returns the current directory of the session.
func (t *Terminal) Dir() string {
	return t.dir
}

// Running reports whether the session is still accepting commands.
func (t *Terminal) Running() bool {
	return t.running
}

// Prompt returns the unstyled input prompt.
func (t *Terminal) Prompt() string {
	return fmt.Sprintf("terminal@%s: %s$ ", filepath.Base(t.dir), t.dir)
}

// Execute runs one input line and returns the text to display. Blank lines
// yield "". Any failure is reported in the returned text.
func (t *Terminal) Execute(ctx context.Context, line string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Command panicked", "line", line, "panic", r)
			out = fmt.Sprintf("Error: %v", r)
		}
	}()

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}

	verb := strings.ToLower(fields[0])
	args := fields[1:]

	var err error
	if cmd, ok := t.registry.resolve(verb); ok {
		slog.Debug("Dispatching command", "verb", cmd.Name, "args", args)
		out, err = cmd.Run(ctx, t, args)
	} else {
		slog.Debug("Passing command to the shell", "verb", verb, "args", args)
		out, err = t.passthrough(ctx, strings.TrimSpace(line))
	}

	if err != nil {
		var ue usageError
		if errors.As(err, &ue) {
			return ue.Error()
		}
		slog.Error("Command failed", "verb", verb, "error", err)
		return "Error: " + err.Error()
	}
	return out
}

// usageError reports a missing argument. It is displayed verbatim.
type usageError string

func (e usageError) Error() string {
	return "Usage: " + string(e)
}

// Verbs returns every built-in verb and alias, in help order.
func (t *Terminal) Verbs() []string {
	var verbs []string
	for _, c := range t.registry.commands() {
		verbs = append(verbs, c.Name)
		verbs = append(verbs, c.Aliases...)
	}
	return verbs
}
