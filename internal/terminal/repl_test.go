package terminal

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/require"
)

type readResult struct {
	line string
	err  error
}

type fakeReader struct {
	results []readResult
	prompts []string
	closed  bool
}

func (r *fakeReader) Readline() (string, error) {
	if len(r.results) == 0 {
		return "", io.EOF
	}
	next := r.results[0]
	r.results = r.results[1:]
	return next.line, next.err
}

func (r *fakeReader) SetPrompt(prompt string) {
	r.prompts = append(r.prompts, prompt)
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

func lines(ls ...string) *fakeReader {
	r := &fakeReader{}
	for _, l := range ls {
		r.results = append(r.results, readResult{line: l})
	}
	return r
}

func TestRun_ExitStopsLoop(t *testing.T) {
	f := newFixture(t)
	rl := lines("echo one", "", "exit", "echo never")

	require.NoError(t, f.term.Run(t.Context(), rl))
	require.True(t, rl.closed)

	out := f.out.String()
	require.True(t, strings.HasPrefix(out, "🚀 Simple Terminal "))
	require.Contains(t, out, "Type 'help' for available commands or 'exit' to quit.")
	require.Contains(t, out, "one\n\n")
	require.Contains(t, out, farewell+"\n\n")
	require.NotContains(t, out, "never")
	require.Len(t, rl.results, 1)
}

func TestRun_PromptFollowsDirectory(t *testing.T) {
	f := newFixture(t)
	rl := lines("mkdir sub", "cd sub", "exit")

	require.NoError(t, f.term.Run(t.Context(), rl))
	require.Len(t, rl.prompts, 3)
	require.Contains(t, rl.prompts[0], "terminal@")
	require.True(t, strings.HasSuffix(rl.prompts[0], f.dir+"$ "))
	require.True(t, strings.HasPrefix(rl.prompts[2], "terminal@sub: "))
}

func TestRun_InterruptShowsHint(t *testing.T) {
	f := newFixture(t)
	rl := &fakeReader{results: []readResult{
		{err: readline.ErrInterrupt},
		{line: "pwd"},
	}}

	require.NoError(t, f.term.Run(t.Context(), rl))
	out := f.out.String()
	require.Contains(t, out, interruptHint)
	require.Contains(t, out, f.dir)
	// End of input says goodbye.
	require.True(t, strings.HasSuffix(out, farewell+"\n"))
	require.True(t, f.term.Running())
}

func TestRun_ReadError(t *testing.T) {
	f := newFixture(t)
	rl := &fakeReader{results: []readResult{{err: errors.New("tty gone")}}}

	err := f.term.Run(t.Context(), rl)
	require.ErrorContains(t, err, "tty gone")
	require.True(t, rl.closed)
}

func TestRun_CanceledContext(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := f.term.Run(ctx, lines("echo hi"))
	require.ErrorIs(t, err, context.Canceled)
	require.NotContains(t, f.out.String(), "hi\n")
}

func TestPrompt(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, "terminal@"+filepath.Base(f.dir)+": "+f.dir+"$ ", f.term.Prompt())
	require.Equal(t, f.term.Prompt(), f.term.styledPrompt())

	f.term.styled = true
	require.Contains(t, f.term.styledPrompt(), "\x1b[")
}
