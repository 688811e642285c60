package shell

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandBlocking(t *testing.T) {
	tests := []struct {
		name        string
		blockFuncs  []BlockFunc
		command     string
		shouldBlock bool
	}{
		{
			name: "block simple command",
			blockFuncs: []BlockFunc{
				func(args []string) bool {
					return len(args) > 0 && args[0] == "curl"
				},
			},
			command:     "curl https://example.com",
			shouldBlock: true,
		},
		{
			name: "allow non-blocked command",
			blockFuncs: []BlockFunc{
				func(args []string) bool {
					return len(args) > 0 && args[0] == "curl"
				},
			},
			command:     "echo hello",
			shouldBlock: false,
		},
		{
			name: "block subcommand",
			blockFuncs: []BlockFunc{
				func(args []string) bool {
					return len(args) >= 2 && args[0] == "nopebrew" && args[1] == "install"
				},
			},
			command:     "nopebrew install wget",
			shouldBlock: true,
		},
		{
			name: "allow different subcommand",
			blockFuncs: []BlockFunc{
				func(args []string) bool {
					return len(args) >= 2 && args[0] == "nopebrew" && args[1] == "install"
				},
			},
			command:     "nopebrew list",
			shouldBlock: false,
		},
		{
			name:        "block listed command",
			blockFuncs:  []BlockFunc{CommandsBlocker([]string{"shutdown", "reboot"})},
			command:     "reboot now",
			shouldBlock: true,
		},
		{
			name:        "block listed command inside a pipeline",
			blockFuncs:  []BlockFunc{CommandsBlocker([]string{"wget"})},
			command:     "echo x | wget -",
			shouldBlock: true,
		},
		{
			name:        "allow unlisted command",
			blockFuncs:  []BlockFunc{CommandsBlocker([]string{"shutdown"})},
			command:     "true",
			shouldBlock: false,
		},
		{
			name: "block global install with -g",
			blockFuncs: []BlockFunc{
				ArgumentsBlocker([][]string{
					{"nopenpm", "install", "-g"},
					{"nopenpm", "install", "--global"},
				}),
			},
			command:     "nopenpm install -g typescript",
			shouldBlock: true,
		},
		{
			name: "block global install with --global",
			blockFuncs: []BlockFunc{
				ArgumentsBlocker([][]string{
					{"nopenpm", "install", "-g"},
					{"nopenpm", "install", "--global"},
				}),
			},
			command:     "nopenpm install --global typescript",
			shouldBlock: true,
		},
		{
			name: "allow local install",
			blockFuncs: []BlockFunc{
				ArgumentsBlocker([][]string{
					{"nopenpm", "install", "-g"},
					{"nopenpm", "install", "--global"},
				}),
			},
			command:     "nopenpm install typescript",
			shouldBlock: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a temporary directory for each test
			tmpDir := t.TempDir()

			shell := NewShell(&Options{
				WorkingDir: tmpDir,
				BlockFuncs: tt.blockFuncs,
			})

			_, _, err := shell.Exec(context.Background(), tt.command)

			if tt.shouldBlock {
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrBlocked), "expected security error, got: %v", err)
				require.False(t, IsExitStatus(err))
				return
			}
			// Unblocked commands may still fail (command not found), just
			// not with the security error.
			require.False(t, errors.Is(err, ErrBlocked), "command was unexpectedly blocked: %v", err)
		})
	}
}

func TestBlockFuncsFromOptions(t *testing.T) {
	shell := NewShell(&Options{WorkingDir: t.TempDir()})
	_, _, err := shell.Exec(t.Context(), "nopenopenope")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrBlocked)
	require.Equal(t, 127, ExitCode(err))

	shell = NewShell(&Options{
		WorkingDir: t.TempDir(),
		BlockFuncs: []BlockFunc{
			CommandsBlocker([]string{"nopenopenope"}),
			ArgumentsBlocker([][]string{{"nopenpm", "install", "-g"}}),
		},
	})
	_, _, err = shell.Exec(t.Context(), "nopenopenope")
	require.ErrorIs(t, err, ErrBlocked)

	_, _, err = shell.Exec(t.Context(), "nopenpm install -g typescript")
	require.ErrorIs(t, err, ErrBlocked)

	_, _, err = shell.Exec(t.Context(), "nopenpm install typescript")
	require.NotErrorIs(t, err, ErrBlocked)
	require.True(t, IsExitStatus(err))
}
