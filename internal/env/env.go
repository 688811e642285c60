// Package env abstracts the process environment so config resolution and
// the command passthrough can be tested without touching os.Environ.
package env

import (
	"maps"
	"os"
	"slices"
	"strings"
)

type Env interface {
	Get(key string) string
	Env() []string
}

type osEnv struct{}

// Get implements Env.
func (o *osEnv) Get(key string) string {
	return os.Getenv(key)
}

func (o *osEnv) Env() []string {
	env := os.Environ()
	if len(env) == 0 {
		return nil
	}
	return env
}

func New() Env {
	return &osEnv{}
}

type mapEnv struct {
	m map[string]string
}

// Get implements Env.
func (m *mapEnv) Get(key string) string {
	return m.m[key]
}

// Env implements Env. Entries are sorted by key.
func (m *mapEnv) Env() []string {
	if len(m.m) == 0 {
		return nil
	}
	env := make([]string, 0, len(m.m))
	for _, k := range slices.Sorted(maps.Keys(m.m)) {
		env = append(env, k+"="+m.m[k])
	}
	return env
}

func NewFromMap(m map[string]string) Env {
	if m == nil {
		m = make(map[string]string)
	}
	return &mapEnv{m: m}
}

type overlayEnv struct {
	base      Env
	overrides map[string]string
}

// Overlay returns an Env where overrides take precedence over base.
func Overlay(base Env, overrides map[string]string) Env {
	if len(overrides) == 0 {
		return base
	}
	return &overlayEnv{base: base, overrides: maps.Clone(overrides)}
}

// Get implements Env.
func (o *overlayEnv) Get(key string) string {
	if v, ok := o.overrides[key]; ok {
		return v
	}
	return o.base.Get(key)
}

// Env implements Env. Base entries keep their order; overridden keys are
// replaced in place and new keys are appended sorted.
func (o *overlayEnv) Env() []string {
	seen := make(map[string]bool, len(o.overrides))
	var env []string
	for _, kv := range o.base.Env() {
		k, _, _ := strings.Cut(kv, "=")
		if v, ok := o.overrides[k]; ok {
			env = append(env, k+"="+v)
			seen[k] = true
			continue
		}
		env = append(env, kv)
	}
	for _, k := range slices.Sorted(maps.Keys(o.overrides)) {
		if !seen[k] {
			env = append(env, k+"="+o.overrides[k])
		}
	}
	return env
}
