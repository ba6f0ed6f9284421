package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "step-scheduler", cfg.StepScheduler.General.InstanceName)
	assert.Equal(t, "info", cfg.StepScheduler.General.LogLevel)
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, 30*time.Second, cfg.StepScheduler.Server.ReadTimeout)
}

func TestLoadConfig(t *testing.T) {
	content := `
step-scheduler:
  general:
    instance_name: test-scheduler
  server:
    host: 127.0.0.1
    port: 9090
    read_timeout: 10s
  output:
    separator: ","
`
	path := filepath.Join(t.TempDir(), "scheduler.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "test-scheduler", cfg.StepScheduler.General.InstanceName)
	assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddr())
	assert.Equal(t, 10*time.Second, cfg.StepScheduler.Server.ReadTimeout)
	assert.Equal(t, ",", cfg.GetSeparator())
	// 未设置的字段应用默认值
	assert.Equal(t, "info", cfg.StepScheduler.General.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.StepScheduler.Server.WriteTimeout)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig("/nonexistent/scheduler.yaml")
	require.Error(t, err)
}
