package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 80, cfg.BarWidth)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 32*1024, cfg.ChunkSize)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estimator.yaml")
	content := `
data_dir: /tmp/datasets
bar_width: 100
timeout: 2m
log_verbosity: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/datasets", cfg.DataDir)
	assert.Equal(t, 100, cfg.BarWidth)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.Equal(t, 2, cfg.LogVerbosity)
	assert.Equal(t, 32*1024, cfg.ChunkSize, "unset fields keep defaults")
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "read config file")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "data_dir: [", "parse config file"},
		{"bad timeout", "timeout: soon", "invalid timeout"},
		{"zero width", "bar_width: 0", "bar_width must be > 0"},
		{"negative chunk", "chunk_size: -1", "chunk_size must be > 0"},
		{"negative verbosity", "log_verbosity: -3", "log_verbosity must be >= 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
