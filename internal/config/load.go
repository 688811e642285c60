package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/simpleterm/internal/env"
	"github.com/charmbracelet/simpleterm/internal/fsext"
	"github.com/charmbracelet/simpleterm/internal/log"
	"github.com/charmbracelet/simpleterm/internal/sysmon"
)

// LoadReader config via io.Reader.
func LoadReader(fd io.Reader) (*Config, error) {
	data, err := io.ReadAll(fd)
	if err != nil {
		return nil, err
	}

	var config Config
	err = json.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	return &config, err
}

// Load loads the configuration for workingDir from the default paths and
// sets up logging. Missing files are not an error.
func Load(workingDir string, debug bool) (*Config, error) {
	configPaths := []string{
		ConfigPath(),
		filepath.Join(workingDir, fmt.Sprintf("%s.json", appName)),
		filepath.Join(workingDir, fmt.Sprintf(".%s.json", appName)),
	}
	cfg, err := loadFromConfigPaths(configPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from paths %v: %w", configPaths, err)
	}

	cfg.setDefaults(workingDir)

	if debug {
		cfg.Options.Debug = true
	}

	dataDir, err := fsext.Expand(cfg.Options.DataDirectory)
	if err != nil {
		return nil, fmt.Errorf("invalid data directory %q: %w", cfg.Options.DataDirectory, err)
	}
	cfg.Options.DataDirectory = dataDir
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}

	log.Setup(cfg.LogFile(), cfg.Options.Debug)

	if err := cfg.resolveShellEnv(env.New(), NewShellVariableResolver(env.New())); err != nil {
		return nil, err
	}

	slog.Debug("Configuration loaded",
		"paths", configPaths,
		"data_directory", cfg.Options.DataDirectory,
		"core_utils", cfg.UseCoreUtils(),
	)
	return cfg, nil
}

func (c *Config) setDefaults(workingDir string) {
	c.workingDir = workingDir
	if c.Options == nil {
		c.Options = &Options{}
	}
	if c.Options.DataDirectory == "" {
		c.Options.DataDirectory = DefaultDataDirectory()
	}
	if c.Shell == nil {
		c.Shell = &ShellOptions{}
	}
	if c.Shell.Env == nil {
		c.Shell.Env = make(map[string]string)
	}
	if c.Monitor == nil {
		c.Monitor = &MonitorOptions{}
	}
	if c.Monitor.CPUSampleMs <= 0 {
		c.Monitor.CPUSampleMs = defaultCPUSampleMs
	}
	if c.Monitor.DiskPath == "" {
		c.Monitor.DiskPath = sysmon.DefaultDiskPath()
	}
	if c.Monitor.ProcessLimit <= 0 {
		c.Monitor.ProcessLimit = defaultProcessLimit
	}

	slices.Sort(c.Shell.BlockedCommands)
	c.Shell.BlockedCommands = slices.Compact(c.Shell.BlockedCommands)
}

// resolveShellEnv resolves Shell.Env values and layers them over base.
func (c *Config) resolveShellEnv(base env.Env, resolver VariableResolver) error {
	resolved := make(map[string]string, len(c.Shell.Env))
	for _, k := range slices.Sorted(maps.Keys(c.Shell.Env)) {
		v, err := resolver.ResolveValue(c.Shell.Env[k])
		if err != nil {
			return fmt.Errorf("failed to resolve shell.env %s: %w", k, err)
		}
		resolved[k] = v
	}
	c.shellEnv = env.Overlay(base, resolved).Env()
	return nil
}

func loadFromConfigPaths(configPaths []string) (*Config, error) {
	var configs []io.Reader

	for _, path := range configPaths {
		fd, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
		}
		defer fd.Close()

		configs = append(configs, fd)
	}

	return loadFromReaders(configs)
}

func loadFromReaders(readers []io.Reader) (*Config, error) {
	if len(readers) == 0 {
		return &Config{}, nil
	}

	merged, err := Merge(readers)
	if err != nil {
		return nil, fmt.Errorf("failed to merge configuration readers: %w", err)
	}

	return LoadReader(merged)
}
