package terminal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/simpleterm/internal/ansiext"
	"github.com/charmbracelet/simpleterm/internal/fsext"
	"github.com/charmbracelet/simpleterm/internal/shell"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
)

const (
	farewell       = "Goodbye! 👋"
	commandSuccess = "Command executed successfully"
	commandStopped = "Command interrupted"
)

func builtins() []command {
	return []command{
		{Name: "help", Desc: "Show this help message", Run: runHelp},
		{Name: "exit", Aliases: []string{"quit"}, Desc: "Exit the terminal", Run: runExit},
		{Name: "pwd", Desc: "Print working directory", Run: runPwd},
		{Name: "ls", Desc: "List directory contents", Run: runLs},
		{Name: "cd", Args: "<dir>", Desc: "Change directory", Run: runCd},
		{Name: "mkdir", Args: "<name>", Desc: "Create directory", Run: runMkdir},
		{Name: "rm", Args: "<file>", Desc: "Remove file or directory", Run: runRm},
		{Name: "cat", Args: "<file>", Desc: "Display file contents", Run: runCat},
		{Name: "echo", Args: "<text>", Desc: "Print text", Run: runEcho},
		{Name: "clear", Desc: "Clear screen", Run: runClear},
		{Name: "sysinfo", Desc: "Show system information", Run: runSysinfo},
		{Name: "ps", Desc: "List running processes", Run: runPs},
		{Name: "ascii", Args: "<text>", Desc: "Generate ASCII art from text or prompt", Run: runASCII},
	}
}

func runHelp(_ context.Context, t *Terminal, _ []string) (string, error) {
	var sb strings.Builder
	sb.WriteString("Available Commands:\n")
	for _, c := range t.registry.commands() {
		fmt.Fprintf(&sb, "  %-13s - %s\n", c.synopsis(), c.Desc)
	}
	fmt.Fprintf(&sb, "  %-13s - %s", "<command>", "Execute any system command")
	return sb.String(), nil
}

func runExit(_ context.Context, t *Terminal, _ []string) (string, error) {
	t.running = false
	return farewell, nil
}

func runPwd(_ context.Context, t *Terminal, _ []string) (string, error) {
	return t.dir, nil
}

func runLs(_ context.Context, t *Terminal, _ []string) (string, error) {
	entries, err := t.listDir(t.dir)
	if errors.Is(err, fs.ErrPermission) {
		return "Permission denied", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to list %s: %w", t.dir, err)
	}
	if len(entries) == 0 {
		return "Directory is empty", nil
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		if e.IsDir {
			lines[i] = "📁 " + e.Name + "/"
		} else {
			lines[i] = "📄 " + e.Name
		}
	}
	return strings.Join(lines, "\n"), nil
}

func runCd(_ context.Context, t *Terminal, args []string) (string, error) {
	if len(args) == 0 {
		return "", usageError("cd <directory>")
	}

	target := args[0]
	var dir string
	if target == ".." {
		dir = filepath.Dir(t.dir)
	} else {
		dir = fsext.Resolve(t.dir, target)
	}

	if !fsext.IsDir(dir) {
		return "Directory not found: " + target, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	t.dir = abs
	return "Changed to: " + abs, nil
}

func runMkdir(_ context.Context, t *Terminal, args []string) (string, error) {
	if len(args) == 0 {
		return "", usageError("mkdir <directory_name>")
	}

	name := args[0]
	if err := os.MkdirAll(fsext.Resolve(t.dir, name), 0o755); err != nil {
		return "Failed to create directory: " + err.Error(), nil
	}
	return "Created directory: " + name, nil
}

func runRm(_ context.Context, t *Terminal, args []string) (string, error) {
	if len(args) == 0 {
		return "", usageError("rm <file_or_directory>")
	}

	target := args[0]
	path := fsext.Resolve(t.dir, target)
	if fsext.IsDir(path) {
		if err := os.RemoveAll(path); err != nil {
			return "Failed to remove: " + err.Error(), nil
		}
		return "Removed directory: " + target, nil
	}
	if err := os.Remove(path); err != nil {
		return "Failed to remove: " + err.Error(), nil
	}
	return "Removed file: " + target, nil
}

func runCat(_ context.Context, t *Terminal, args []string) (string, error) {
	if len(args) == 0 {
		return "", usageError("cat <file>")
	}

	content, err := os.ReadFile(fsext.Resolve(t.dir, args[0]))
	if errors.Is(err, fs.ErrNotExist) {
		return "File not found: " + args[0], nil
	}
	if err != nil {
		return "Error reading file: " + err.Error(), nil
	}
	return string(content), nil
}

func runEcho(_ context.Context, _ *Terminal, args []string) (string, error) {
	return strings.Join(args, " "), nil
}

// runClear only acts on an interactive terminal, so scripted output stays
// free of control sequences.
func runClear(_ context.Context, t *Terminal, _ []string) (string, error) {
	if !t.styled {
		return "", nil
	}
	if _, err := fmt.Fprint(t.out, ansi.EraseEntireScreen+ansi.CursorHomePosition); err != nil {
		return "", fmt.Errorf("failed to clear screen: %w", err)
	}
	return "", nil
}

func runSysinfo(ctx context.Context, t *Terminal, _ []string) (string, error) {
	info, err := t.monitor.Info(ctx)
	if err != nil {
		slog.Warn("System info unavailable", "error", err)
		return "Error getting system info: " + err.Error(), nil
	}

	var sb strings.Builder
	sb.WriteString("🖥️  System Information:\n")
	fmt.Fprintf(&sb, "   CPU Usage: %.1f%%\n", info.CPUPercent)
	fmt.Fprintf(&sb, "   Memory: %.1f%% used (%s / %s)\n",
		info.Memory.UsedPercent, humanize.IBytes(info.Memory.Used), humanize.IBytes(info.Memory.Total))
	fmt.Fprintf(&sb, "   Disk: %.1f%% used (%s / %s)\n",
		info.Disk.UsedPercent, humanize.IBytes(info.Disk.Used), humanize.IBytes(info.Disk.Total))
	fmt.Fprintf(&sb, "   Platform: %s", info.Platform)
	return sb.String(), nil
}

func runPs(ctx context.Context, t *Terminal, _ []string) (string, error) {
	procs, err := t.monitor.Processes(ctx, t.processLimit)
	if err != nil {
		slog.Warn("Process table unavailable", "error", err)
		return "Error listing processes: " + err.Error(), nil
	}

	lines := make([]string, len(procs))
	for i, p := range procs {
		lines[i] = fmt.Sprintf("PID: %6d | %-20s | CPU: %5.1f%%", p.PID, ansiext.Sanitize(p.Name), p.CPUPercent)
	}
	return strings.Join(lines, "\n"), nil
}

func runASCII(_ context.Context, t *Terminal, args []string) (string, error) {
	return t.art.Generate(args), nil
}

// passthrough hands line to the shell in the session directory. Nothing the
// command does to its own directory or environment carries over.
func (t *Terminal) passthrough(ctx context.Context, line string) (string, error) {
	stdout, stderr, err := t.shell.ExecIn(ctx, t.dir, line)
	slog.Debug("Passthrough finished", "command", line, "exit_code", shell.ExitCode(err))
	switch {
	case shell.IsInterrupt(err):
		slog.Info("Passthrough interrupted", "command", line, "error", err)
		return commandStopped, nil
	case err != nil && !shell.IsExitStatus(err):
		slog.Warn("Passthrough failed", "command", line, "error", err)
		return "Command failed: " + err.Error(), nil
	case stdout != "":
		return stdout, nil
	case stderr != "":
		return "Error: " + stderr, nil
	default:
		return commandSuccess, nil
	}
}
