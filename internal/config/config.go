package config

import (
	"runtime"
	"time"
)

const (
	appName = "simpleterm"

	defaultCPUSampleMs  = 1000
	defaultProcessLimit = 10
	historyFileName     = "history"
)

// Options are general settings.
type Options struct {
	DataDirectory string `json:"data_directory,omitempty" jsonschema:"description=Directory for logs and history,example=~/.local/share/simpleterm"`
	Debug         bool   `json:"debug,omitempty" jsonschema:"description=Enable debug logging,default=false"`
	// Seed makes random art reproducible. Zero draws a fresh seed per run.
	Seed    int64 `json:"seed,omitempty" jsonschema:"description=Seed for random art selection; 0 picks a random seed,default=0"`
	History *bool `json:"history,omitempty" jsonschema:"description=Persist command history in the data directory,default=true"`
}

// ShellOptions configure the passthrough for unrecognised commands.
type ShellOptions struct {
	BlockedCommands []string `json:"blocked_commands,omitempty" jsonschema:"description=Commands the passthrough refuses to run,example=shutdown,example=reboot"`
	// BlockedArguments refuses commands whose leading arguments match one of
	// the prefixes, such as ["npm", "install", "-g"].
	BlockedArguments [][]string `json:"blocked_arguments,omitempty" jsonschema:"description=Argument prefixes the passthrough refuses to run"`
	// CoreUtils serves cat, cp, ls, mkdir and similar from built-in
	// implementations. Defaults to true on Windows.
	CoreUtils *bool `json:"core_utils,omitempty" jsonschema:"description=Use built-in core utilities instead of host binaries"`
	// Env is added to the passthrough environment. Values may use $VAR,
	// ${VAR} and $(command).
	Env map[string]string `json:"env,omitempty" jsonschema:"description=Extra environment variables for passthrough commands"`
}

// MonitorOptions configure sysinfo and ps.
type MonitorOptions struct {
	CPUSampleMs  int    `json:"cpu_sample_ms,omitempty" jsonschema:"description=How long CPU usage is sampled in milliseconds,default=1000"`
	DiskPath     string `json:"disk_path,omitempty" jsonschema:"description=Mount point reported by sysinfo,default=/"`
	ProcessLimit int    `json:"process_limit,omitempty" jsonschema:"description=Maximum number of processes listed by ps,default=10"`
}

type Config struct {
	Options *Options        `json:"options,omitempty" jsonschema:"description=General application options"`
	Shell   *ShellOptions   `json:"shell,omitempty" jsonschema:"description=Passthrough command settings"`
	Monitor *MonitorOptions `json:"monitor,omitempty" jsonschema:"description=System monitoring settings"`

	// Resolved passthrough environment, in KEY=VALUE form.
	shellEnv   []string
	workingDir string
}

// WorkingDir returns the directory the configuration was loaded for.
func (c *Config) WorkingDir() string {
	return c.workingDir
}

// ShellEnv returns the passthrough environment with Shell.Env applied.
func (c *Config) ShellEnv() []string {
	return c.shellEnv
}

// HistoryFile returns the readline history path, or "" when disabled.
func (c *Config) HistoryFile() string {
	if c.Options.History != nil && !*c.Options.History {
		return ""
	}
	return joinData(c.Options.DataDirectory, historyFileName)
}

// LogFile returns the path of the rotating log file.
func (c *Config) LogFile() string {
	return joinData(c.Options.DataDirectory, "logs", appName+".log")
}

// UseCoreUtils reports whether the passthrough serves core utils in-process.
func (c *Config) UseCoreUtils() bool {
	if c.Shell.CoreUtils != nil {
		return *c.Shell.CoreUtils
	}
	return runtime.GOOS == "windows"
}

// CPUSample returns how long sysinfo samples CPU usage for.
func (c *Config) CPUSample() time.Duration {
	return time.Duration(c.Monitor.CPUSampleMs) * time.Millisecond
}
