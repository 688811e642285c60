package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/simpleterm/internal/art"
	"github.com/charmbracelet/simpleterm/internal/config"
	"github.com/charmbracelet/simpleterm/internal/shell"
	"github.com/charmbracelet/simpleterm/internal/sysmon"
	"github.com/charmbracelet/simpleterm/internal/terminal"
	"github.com/charmbracelet/simpleterm/internal/version"
	"github.com/charmbracelet/x/term"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.PersistentFlags().StringP("cwd", "c", "", "Current working directory")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug")
	rootCmd.PersistentFlags().Int64("seed", 0, "Seed for random art, 0 picks one")

	rootCmd.Flags().BoolP("help", "h", false, "Help")

	rootCmd.AddCommand(runCmd)
}

var rootCmd = &cobra.Command{
	Use:   "simpleterm",
	Short: "A small interactive shell with built-in file, system and ASCII art commands",
	Long: heredoc.Doc(`Simpleterm is a small interactive shell. It has built-in commands for
moving around and editing the file system, inspecting the host and drawing
ASCII art. Anything else is passed to a POSIX shell interpreter.`),
	Example: heredoc.Doc(`
# Run in interactive mode
simpleterm

# Run with debug logging
simpleterm -d

# Start in a specific directory
simpleterm -c /path/to/project

# Print version
simpleterm -v

# Run a single command non-interactively
simpleterm run ascii cat
  `),
	RunE: func(cmd *cobra.Command, args []string) error {
		styled := term.IsTerminal(os.Stdout.Fd())
		t, cfg, err := setupTerminal(cmd, os.Stdout, styled)
		if err != nil {
			return err
		}

		rl, err := readline.NewEx(&readline.Config{
			Prompt:          t.Prompt(),
			HistoryFile:     cfg.HistoryFile(),
			AutoComplete:    verbCompleter(t.Verbs()),
			InterruptPrompt: "^C",
		})
		if err != nil {
			return fmt.Errorf("failed to start line editor: %w", err)
		}

		slog.Info("Interactive session started", "dir", t.Dir())
		if err := t.Run(cmd.Context(), rl); err != nil {
			slog.Error("Interactive session ended with error", "error", err)
			return err
		}
		return nil
	},
}

func Execute(ctx context.Context) {
	if err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Version),
	); err != nil {
		os.Exit(1)
	}
}

// setupTerminal loads configuration for the resolved working directory and
// wires the terminal's collaborators. Both the interactive and run modes use
// it.
func setupTerminal(cmd *cobra.Command, out io.Writer, styled bool) (*terminal.Terminal, *config.Config, error) {
	debug, _ := cmd.Flags().GetBool("debug")

	cwd, err := ResolveCwd(cmd)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(cwd, debug)
	if err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Options.Seed, _ = cmd.Flags().GetInt64("seed")
	}

	sh := newShell(cfg, cwd)
	monitor := sysmon.New(&sysmon.Options{
		CPUSample: cfg.CPUSample(),
		DiskPath:  cfg.Monitor.DiskPath,
	})

	t, err := terminal.New(terminal.Options{
		Dir:          cwd,
		Shell:        sh,
		Monitor:      monitor,
		Art:          art.NewSeeded(cfg.Options.Seed),
		Output:       out,
		ProcessLimit: cfg.Monitor.ProcessLimit,
		Styled:       styled,
	})
	if err != nil {
		slog.Error("Failed to create terminal", "error", err)
		return nil, nil, err
	}
	return t, cfg, nil
}

// newShell builds the passthrough shell with the configured block lists.
func newShell(cfg *config.Config, cwd string) *shell.Shell {
	return shell.NewShell(&shell.Options{
		WorkingDir: cwd,
		Env:        cfg.ShellEnv(),
		Logger:     shellLogger{},
		BlockFuncs: []shell.BlockFunc{
			shell.CommandsBlocker(cfg.Shell.BlockedCommands),
			shell.ArgumentsBlocker(cfg.Shell.BlockedArguments),
		},
		CoreUtils: cfg.UseCoreUtils(),
	})
}

func verbCompleter(verbs []string) *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, len(verbs))
	for i, v := range verbs {
		items[i] = readline.PcItem(v)
	}
	return readline.NewPrefixCompleter(items...)
}

// shellLogger sends passthrough completions to the default logger.
type shellLogger struct{}

func (shellLogger) InfoPersist(msg string, keysAndValues ...any) {
	slog.Info(msg, keysAndValues...)
}

func ResolveCwd(cmd *cobra.Command) (string, error) {
	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd != "" {
		err := os.Chdir(cwd)
		if err != nil {
			return "", fmt.Errorf("failed to change directory: %v", err)
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %v", err)
	}
	return cwd, nil
}
