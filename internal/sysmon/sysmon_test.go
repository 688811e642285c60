package sysmon

import (
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInfo(t *testing.T) {
	m := New(&Options{CPUSample: 50 * time.Millisecond})

	info, err := m.Info(t.Context())
	require.NoError(t, err)
	require.Equal(t, runtime.GOOS, info.Platform)
	require.Greater(t, info.Memory.Total, uint64(0))
	require.LessOrEqual(t, info.Memory.Used, info.Memory.Total)
	require.Greater(t, info.Disk.Total, uint64(0))
	require.GreaterOrEqual(t, info.CPUPercent, 0.0)
}

func TestInfo_BadDiskPath(t *testing.T) {
	m := New(&Options{
		CPUSample: 10 * time.Millisecond,
		DiskPath:  "/definitely/not/a/mount/point",
	})

	_, err := m.Info(t.Context())
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk")
}

func TestProcesses(t *testing.T) {
	m := New(nil)

	procs, err := m.Processes(t.Context(), 5)
	require.NoError(t, err)
	require.NotEmpty(t, procs)
	require.LessOrEqual(t, len(procs), 5)
	for i := 1; i < len(procs); i++ {
		require.Less(t, procs[i-1].PID, procs[i].PID)
	}
}

func TestProcesses_NoLimitIncludesSelf(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("process names are not readable for all PIDs on Windows")
	}
	m := New(nil)

	procs, err := m.Processes(t.Context(), 0)
	require.NoError(t, err)

	self := int32(os.Getpid())
	found := false
	for _, p := range procs {
		if p.PID == self {
			found = true
			break
		}
	}
	require.True(t, found, "own pid %d not listed", self)
}

func TestNew_Defaults(t *testing.T) {
	m := New(nil).(*hostMonitor)
	require.Equal(t, time.Second, m.cpuSample)
	require.Equal(t, DefaultDiskPath(), m.diskPath)
}
