// Package shell runs command lines on behalf of the terminal.
//
// Commands are interpreted by a POSIX shell emulator (mvdan.cc/sh/v3) so the
// same syntax works on every platform. On Windows, commands that only exist
// in cmd.exe or PowerShell are handed to the native shell instead.
//
// Each call is independent: the working directory and environment are fixed
// by the caller and nothing a command does (cd, export) outlives the call.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ShellType represents the type of shell to use
type ShellType int

const (
	ShellTypePOSIX ShellType = iota
	ShellTypeCmd
	ShellTypePowerShell
)

// Logger interface for optional logging
type Logger interface {
	InfoPersist(msg string, keysAndValues ...any)
}

type noopLogger struct{}

func (noopLogger) InfoPersist(msg string, keysAndValues ...any) {}

// BlockFunc is a function that determines if a command should be blocked
type BlockFunc func(args []string) bool

// Shell executes command lines.
type Shell struct {
	env        []string
	cwd        string
	mu         sync.Mutex
	logger     Logger
	blockFuncs []BlockFunc
	coreUtils  bool
}

// Options for creating a new shell
type Options struct {
	// WorkingDir is used by Exec. Defaults to the process working directory.
	WorkingDir string
	// Env defaults to the process environment.
	Env        []string
	Logger     Logger
	BlockFuncs []BlockFunc
	// CoreUtils serves cat, cp, ls, mkdir and friends from built-in Go
	// implementations instead of the host binaries.
	CoreUtils bool
}

// NewShell creates a new shell instance with the given options
func NewShell(opts *Options) *Shell {
	if opts == nil {
		opts = &Options{}
	}

	cwd := opts.WorkingDir
	if cwd == "" {
		cwd, _ = os.Getwd()
	}

	env := opts.Env
	if env == nil {
		env = os.Environ()
	}

	logger := opts.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	return &Shell{
		cwd:        cwd,
		env:        env,
		logger:     logger,
		blockFuncs: opts.BlockFuncs,
		coreUtils:  opts.CoreUtils,
	}
}

// Exec executes a command in the shell's default working directory.
func (s *Shell) Exec(ctx context.Context, command string) (string, string, error) {
	return s.ExecIn(ctx, s.GetWorkingDir(), command)
}

// ExecIn executes a command with dir as its working directory and returns
// the captured stdout and stderr.
func (s *Shell) ExecIn(ctx context.Context, dir, command string) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.determineShellType(command) {
	case ShellTypeCmd:
		return s.execWindows(ctx, dir, command, "cmd")
	case ShellTypePowerShell:
		return s.execWindows(ctx, dir, command, "powershell")
	default:
		return s.execPOSIX(ctx, dir, command)
	}
}

// GetWorkingDir returns the default working directory
func (s *Shell) GetWorkingDir() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cwd
}

// SetWorkingDir sets the default working directory
func (s *Shell) SetWorkingDir(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("directory does not exist: %w", err)
	}

	s.cwd = dir
	return nil
}

// GetEnv returns a copy of the environment variables
func (s *Shell) GetEnv() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	env := make([]string, len(s.env))
	copy(env, s.env)
	return env
}

// Windows-specific commands that should use native shell
var windowsNativeCommands = map[string]bool{
	"dir":      true,
	"type":     true,
	"copy":     true,
	"move":     true,
	"del":      true,
	"md":       true,
	"rd":       true,
	"rmdir":    true,
	"cls":      true,
	"ver":      true,
	"where":    true,
	"tasklist": true,
	"taskkill": true,
	"net":      true,
	"sc":       true,
	"reg":      true,
	"wmic":     true,
}

// determineShellType decides which shell to use based on platform and command
func (s *Shell) determineShellType(command string) ShellType {
	if runtime.GOOS != "windows" {
		return ShellTypePOSIX
	}

	parts := strings.Fields(command)
	if len(parts) == 0 {
		return ShellTypePOSIX
	}

	if windowsNativeCommands[strings.ToLower(parts[0])] {
		return ShellTypeCmd
	}

	if strings.Contains(command, "Get-") || strings.Contains(command, "Set-") ||
		strings.Contains(command, "New-") || strings.Contains(command, "$_") ||
		strings.Contains(command, "| Where-Object") || strings.Contains(command, "| ForEach-Object") {
		return ShellTypePowerShell
	}

	return ShellTypePOSIX
}

// CommandsBlocker creates a BlockFunc that blocks exact command matches
func CommandsBlocker(bannedCommands []string) BlockFunc {
	bannedSet := make(map[string]bool)
	for _, cmd := range bannedCommands {
		bannedSet[cmd] = true
	}

	return func(args []string) bool {
		if len(args) == 0 {
			return false
		}
		return bannedSet[args[0]]
	}
}

// ArgumentsBlocker creates a BlockFunc that blocks specific subcommands
func ArgumentsBlocker(blockedSubCommands [][]string) BlockFunc {
	return func(args []string) bool {
		for _, blocked := range blockedSubCommands {
			if len(args) < len(blocked) {
				continue
			}
			match := true
			for i, part := range blocked {
				if args[i] != part {
					match = false
					break
				}
			}
			if match {
				return true
			}
		}
		return false
	}
}

// ErrBlocked is returned when a block function refuses a command.
var ErrBlocked = errors.New("command is not allowed for security reasons")

func (s *Shell) blockHandler() func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
		return func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return next(ctx, args)
			}

			for _, blockFunc := range s.blockFuncs {
				if blockFunc(args) {
					return fmt.Errorf("%w: %s", ErrBlocked, strings.Join(args, " "))
				}
			}

			return next(ctx, args)
		}
	}
}

func (s *Shell) execWindows(ctx context.Context, dir, command string, shell string) (string, string, error) {
	var cmd *exec.Cmd

	switch shell {
	case "cmd":
		fullCommand := fmt.Sprintf("cd /d \"%s\" && %s", dir, command)
		cmd = exec.CommandContext(ctx, "cmd", "/C", fullCommand)
	case "powershell":
		fullCommand := fmt.Sprintf("Set-Location '%s'; %s", dir, command)
		cmd = exec.CommandContext(ctx, "powershell", "-Command", fullCommand)
	default:
		return "", "", fmt.Errorf("unsupported Windows shell: %s", shell)
	}

	cmd.Env = s.env
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	s.logger.InfoPersist("Windows command finished", "shell", shell, "command", command, "dir", dir, "err", err)
	return stdout.String(), stderr.String(), err
}

func (s *Shell) execPOSIX(ctx context.Context, dir, command string) (string, string, error) {
	line, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return "", "", fmt.Errorf("could not parse command: %w", err)
	}

	handlers := []func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc{s.blockHandler()}
	if s.coreUtils {
		handlers = append(handlers, s.coreUtilsHandler())
	}

	var stdout, stderr bytes.Buffer
	runner, err := interp.New(
		interp.StdIO(nil, &stdout, &stderr),
		interp.Interactive(false),
		interp.Env(expand.ListEnviron(s.env...)),
		interp.Dir(dir),
		interp.ExecHandlers(handlers...),
	)
	if err != nil {
		return "", "", fmt.Errorf("could not run command: %w", err)
	}

	err = runner.Run(ctx, line)
	s.logger.InfoPersist("POSIX command finished", "command", command, "dir", dir, "err", err)
	return stdout.String(), stderr.String(), err
}

// IsInterrupt checks if an error is due to interruption
func IsInterrupt(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// IsExitStatus reports whether err only carries a non-zero exit status, as
// opposed to a failure to run the command at all.
func IsExitStatus(err error) bool {
	if _, ok := interp.IsExitStatus(err); ok {
		return true
	}
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

// ExitCode extracts the exit code from an error
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if status, ok := interp.IsExitStatus(err); ok {
		return int(status)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
