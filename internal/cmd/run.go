package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/simpleterm/internal/format"
	"github.com/charmbracelet/simpleterm/internal/terminal"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

const maxScriptLine = 1 << 20

var runCmd = &cobra.Command{
	Use:   "run [command...]",
	Short: "Run commands non-interactively",
	Long: heredoc.Doc(`Run a single command line in non-interactive mode and exit.
Without arguments, command lines are read from stdin and run in order. The
session carries over between lines, so cd affects the lines after it, and an
exit line stops the run.`),
	Example: heredoc.Doc(`
# Run a single command
simpleterm run sysinfo

# Run a script from stdin
printf 'mkdir build\ncd build\nls\n' | simpleterm run

# Emit one JSON object per command
simpleterm run --format json ascii heart
  `),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatStr, _ := cmd.Flags().GetString("format")
		if !format.IsValid(formatStr) {
			return fmt.Errorf("invalid format %q\n%s", formatStr, format.GetHelpText())
		}

		var lines []string
		if len(args) > 0 {
			lines = []string{strings.Join(args, " ")}
		} else {
			var err error
			lines, err = readScript(cmd.InOrStdin())
			if err != nil {
				slog.Error("Failed to read from stdin", "error", err)
				return err
			}
		}
		if len(lines) == 0 {
			return fmt.Errorf("no command provided")
		}

		t, _, err := setupTerminal(cmd, cmd.OutOrStdout(), false)
		if err != nil {
			return err
		}
		return runLines(cmd.Context(), t, lines, cmd.OutOrStdout(), formatStr)
	},
}

func init() {
	runCmd.Flags().String("format", format.Text.String(), "Output format ("+strings.Join(format.SupportedFormats, ", ")+")")
}

// readScript returns the non-blank lines of r. An interactive stdin yields
// nothing.
func readScript(r io.Reader) ([]string, error) {
	if f, ok := r.(*os.File); ok && term.IsTerminal(f.Fd()) {
		return nil, nil
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxScriptLine)
	for scanner.Scan() {
		if line := scanner.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return lines, nil
}

// runLines executes lines in order until one of them exits the session.
func runLines(ctx context.Context, t *terminal.Terminal, lines []string, w io.Writer, formatStr string) error {
	for _, line := range lines {
		if !t.Running() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		out, err := format.FormatOutput(format.Result{
			Command:  strings.TrimSpace(line),
			Response: t.Execute(ctx, line),
		}, formatStr)
		if err != nil {
			return err
		}
		if out != "" {
			fmt.Fprintln(w, strings.TrimRight(out, "\n"))
		}
	}
	return nil
}
