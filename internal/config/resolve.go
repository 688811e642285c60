package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/simpleterm/internal/env"
	"github.com/charmbracelet/simpleterm/internal/shell"
)

const commandSubstitutionTimeout = 30 * time.Second

type VariableResolver interface {
	ResolveValue(value string) (string, error)
}

type Shell interface {
	Exec(ctx context.Context, command string) (stdout, stderr string, err error)
}

type shellVariableResolver struct {
	shell Shell
	env   env.Env
}

func NewShellVariableResolver(env env.Env) VariableResolver {
	return &shellVariableResolver{
		env: env,
		shell: shell.NewShell(
			&shell.Options{
				Env: env.Env(),
			},
		),
	}
}

// ResolveValue resolves shell-like substitutions anywhere in value:
// - $(command) is replaced by the trimmed stdout of command
// - $VAR and ${VAR} are replaced by the variable, which must be set
func (r *shellVariableResolver) ResolveValue(value string) (string, error) {
	if value == "$" {
		return "", fmt.Errorf("invalid value format: %s", value)
	}
	if !strings.Contains(value, "$") {
		return value, nil
	}

	result, err := r.substituteCommands(value)
	if err != nil {
		return "", err
	}
	return substituteVars(result, r.env)
}

func (r *shellVariableResolver) substituteCommands(value string) (string, error) {
	result := value
	for {
		start := strings.Index(result, "$(")
		if start == -1 {
			return result, nil
		}

		end := matchingParen(result, start+2)
		if end == -1 {
			return "", fmt.Errorf("unmatched $( in value: %s", value)
		}

		command := result[start+2 : end]
		ctx, cancel := context.WithTimeout(context.Background(), commandSubstitutionTimeout)
		stdout, _, err := r.shell.Exec(ctx, command)
		cancel()
		if err != nil {
			return "", fmt.Errorf("command execution failed for '%s': %w", command, err)
		}

		result = result[:start] + strings.TrimSpace(stdout) + result[end+1:]
	}
}

// matchingParen returns the index of the ')' closing the group that starts
// at from, or -1.
func matchingParen(s string, from int) int {
	depth := 0
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

func substituteVars(value string, e env.Env) (string, error) {
	if strings.HasSuffix(value, "$") {
		return "", fmt.Errorf("incomplete variable reference at end of string: %s", value)
	}
	if strings.Count(value, "${") > strings.Count(value, "}") {
		return "", fmt.Errorf("unmatched ${ in value: %s", value)
	}

	var missing string
	result := os.Expand(value, func(name string) string {
		v := e.Get(name)
		if v == "" && missing == "" {
			missing = name
		}
		return v
	})
	if missing != "" {
		return "", fmt.Errorf("environment variable %q not set", missing)
	}
	return result, nil
}

type environmentVariableResolver struct {
	env env.Env
}

func NewEnvironmentVariableResolver(env env.Env) VariableResolver {
	return &environmentVariableResolver{
		env: env,
	}
}

// ResolveValue resolves a value of the form $VAR. Anything else is returned
// unchanged.
func (r *environmentVariableResolver) ResolveValue(value string) (string, error) {
	if !strings.HasPrefix(value, "$") {
		return value, nil
	}

	varName := strings.TrimPrefix(value, "$")
	resolvedValue := r.env.Get(varName)
	if resolvedValue == "" {
		return "", fmt.Errorf("environment variable %q not set", varName)
	}
	return resolvedValue, nil
}
