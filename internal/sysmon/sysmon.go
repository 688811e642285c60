// Package sysmon samples host metrics and the process table.
package sysmon

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Usage is a used/total pair in bytes.
type Usage struct {
	Used        uint64
	Total       uint64
	UsedPercent float64
}

// Info is a point-in-time view of the host.
type Info struct {
	CPUPercent float64
	Memory     Usage
	Disk       Usage
	Platform   string
}

// Process is one row of the process table.
type Process struct {
	PID        int32
	Name       string
	CPUPercent float64
}

// Monitor is the metrics collaborator used by the terminal.
type Monitor interface {
	Info(ctx context.Context) (Info, error)
	Processes(ctx context.Context, limit int) ([]Process, error)
}

// Options configures a Monitor.
type Options struct {
	// CPUSample is how long CPU usage is measured for.
	CPUSample time.Duration
	// DiskPath is the mount whose usage is reported.
	DiskPath string
}

type hostMonitor struct {
	cpuSample time.Duration
	diskPath  string
}

// New returns a Monitor backed by the host.
func New(opts *Options) Monitor {
	if opts == nil {
		opts = &Options{}
	}
	m := &hostMonitor{
		cpuSample: opts.CPUSample,
		diskPath:  opts.DiskPath,
	}
	if m.cpuSample <= 0 {
		m.cpuSample = time.Second
	}
	if m.diskPath == "" {
		m.diskPath = DefaultDiskPath()
	}
	return m
}

// DefaultDiskPath is the root of the system volume.
func DefaultDiskPath() string {
	if runtime.GOOS == "windows" {
		return `C:\`
	}
	return "/"
}

func (m *hostMonitor) Info(ctx context.Context) (Info, error) {
	percents, err := cpu.PercentWithContext(ctx, m.cpuSample, false)
	if err != nil {
		return Info{}, fmt.Errorf("cpu: %w", err)
	}
	if len(percents) == 0 {
		return Info{}, fmt.Errorf("cpu: no samples")
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Info{}, fmt.Errorf("memory: %w", err)
	}

	du, err := disk.UsageWithContext(ctx, m.diskPath)
	if err != nil {
		return Info{}, fmt.Errorf("disk %s: %w", m.diskPath, err)
	}

	return Info{
		CPUPercent: percents[0],
		Memory:     Usage{Used: vm.Used, Total: vm.Total, UsedPercent: vm.UsedPercent},
		Disk:       Usage{Used: du.Used, Total: du.Total, UsedPercent: du.UsedPercent},
		Platform:   runtime.GOOS,
	}, nil
}

// Processes returns up to limit processes in PID order. Processes that exit
// or deny access while being read are skipped.
func (m *hostMonitor) Processes(ctx context.Context, limit int) ([]Process, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("process table: %w", err)
	}
	slices.SortFunc(procs, func(a, b *process.Process) int {
		return int(a.Pid) - int(b.Pid)
	})

	var out []Process
	for _, p := range procs {
		if limit > 0 && len(out) >= limit {
			break
		}
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		pct, err := p.CPUPercentWithContext(ctx)
		if err != nil {
			continue
		}
		out = append(out, Process{PID: p.Pid, Name: name, CPUPercent: pct})
	}
	return out, nil
}
