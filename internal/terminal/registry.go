package terminal

import (
	"context"
	"fmt"
	"strings"
)

type handlerFunc func(ctx context.Context, t *Terminal, args []string) (string, error)

type command struct {
	Name    string
	Aliases []string
	// Args is shown after the name in help output.
	Args string
	Desc string
	Run  handlerFunc
}

// synopsis is the left column of the help listing.
func (c command) synopsis() string {
	s := strings.Join(append([]string{c.Name}, c.Aliases...), "/")
	if c.Args != "" {
		s += " " + c.Args
	}
	return s
}

type registry struct {
	primary map[string]command
	lookup  map[string]string
	order   []string
}

func newRegistry() *registry {
	return &registry{
		primary: make(map[string]command),
		lookup:  make(map[string]string),
	}
}

func (r *registry) register(cmd command) error {
	cmd.Name = strings.ToLower(strings.TrimSpace(cmd.Name))
	if cmd.Name == "" {
		return fmt.Errorf("terminal registry: empty command name")
	}
	if cmd.Run == nil {
		return fmt.Errorf("terminal registry: %q has no handler", cmd.Name)
	}
	if _, ok := r.lookup[cmd.Name]; ok {
		return fmt.Errorf("terminal registry: duplicate command %q", cmd.Name)
	}

	r.primary[cmd.Name] = cmd
	r.lookup[cmd.Name] = cmd.Name
	r.order = append(r.order, cmd.Name)

	for _, alias := range cmd.Aliases {
		alias = strings.ToLower(strings.TrimSpace(alias))
		if alias == "" {
			continue
		}
		if _, ok := r.lookup[alias]; ok {
			return fmt.Errorf("terminal registry: duplicate alias %q", alias)
		}
		r.lookup[alias] = cmd.Name
	}
	return nil
}

func (r *registry) mustRegister(cmds ...command) {
	for _, cmd := range cmds {
		if err := r.register(cmd); err != nil {
			panic(err)
		}
	}
}

func (r *registry) resolve(name string) (command, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return command{}, false
	}
	if primary, ok := r.lookup[name]; ok {
		cmd, ok := r.primary[primary]
		return cmd, ok
	}
	return command{}, false
}

// commands returns the registered commands in registration order.
func (r *registry) commands() []command {
	out := make([]command, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.primary[name])
	}
	return out
}
