package sched

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.1, cfg.AgingFactor)
	assert.Equal(t, 10_000, cfg.MaxQueueSize)
	assert.True(t, cfg.Preemptive)
	assert.Equal(t, 10.0, cfg.TimeQuantum)
	assert.False(t, cfg.EnableLogging)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	assert.Equal(t, DefaultConfig(), Load(""))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	assert.Equal(t, DefaultConfig(), Load("does/not/exist.yml"))
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
aging_factor: 0.5
max_queue_size: 64
preemptive: false
enable_logging: true
`)

	cfg := Load(path)
	assert.Equal(t, 0.5, cfg.AgingFactor)
	assert.Equal(t, 64, cfg.MaxQueueSize)
	assert.False(t, cfg.Preemptive)
	assert.True(t, cfg.EnableLogging)
	// untouched keys keep their defaults
	assert.Equal(t, 10.0, cfg.TimeQuantum)
}

func TestLoadClampsBadValues(t *testing.T) {
	path := writeConfig(t, `
aging_factor: -1
max_queue_size: 0
time_quantum: -5
`)

	cfg := Load(path)
	assert.Equal(t, 0.1, cfg.AgingFactor)
	assert.Equal(t, 10_000, cfg.MaxQueueSize)
	assert.Equal(t, 10.0, cfg.TimeQuantum)
}

func TestLoadAllowsZeroAging(t *testing.T) {
	path := writeConfig(t, "aging_factor: 0\n")
	assert.Equal(t, 0.0, Load(path).AgingFactor)
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
