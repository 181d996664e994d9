// Package config loads the estimator CLI configuration from YAML.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/estimator/internal/download"
	"github.com/born-ml/estimator/internal/progress"
)

// Config defines configuration for the estimator CLI.
type Config struct {
	// DataDir is where downloads are stored.
	DataDir string `yaml:"data_dir"`

	// BarWidth is the progress line width.
	BarWidth int `yaml:"bar_width"`

	// Timeout bounds a single download request.
	Timeout time.Duration `yaml:"timeout"`

	// ChunkSize is the download read size in bytes.
	ChunkSize int `yaml:"chunk_size"`

	// LogVerbosity is the klog -v level.
	LogVerbosity int `yaml:"log_verbosity"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		DataDir:   "data",
		BarWidth:  progress.DefaultWidth,
		Timeout:   30 * time.Second,
		ChunkSize: download.DefaultChunkSize,
	}
}

// yamlConfig mirrors Config with a string timeout such as "45s".
type yamlConfig struct {
	DataDir      string `yaml:"data_dir"`
	BarWidth     *int   `yaml:"bar_width"`
	Timeout      string `yaml:"timeout"`
	ChunkSize    *int   `yaml:"chunk_size"`
	LogVerbosity int    `yaml:"log_verbosity"`
}

// LoadFromFile loads configuration from a YAML file. Missing fields keep
// their defaults.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config file")
	}
	return Parse(data)
}

// Parse decodes YAML configuration over the defaults and validates it.
func Parse(data []byte) (Config, error) {
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, errors.Wrap(err, "parse config file")
	}

	cfg := Default()
	if yc.DataDir != "" {
		cfg.DataDir = yc.DataDir
	}
	if yc.BarWidth != nil {
		cfg.BarWidth = *yc.BarWidth
	}
	if yc.Timeout != "" {
		d, err := time.ParseDuration(yc.Timeout)
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid timeout %q", yc.Timeout)
		}
		cfg.Timeout = d
	}
	if yc.ChunkSize != nil {
		cfg.ChunkSize = *yc.ChunkSize
	}
	cfg.LogVerbosity = yc.LogVerbosity

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	switch {
	case c.DataDir == "":
		return errors.New("data_dir must not be empty")
	case c.BarWidth <= 0:
		return errors.Errorf("bar_width must be > 0, got %d", c.BarWidth)
	case c.Timeout <= 0:
		return errors.Errorf("timeout must be > 0, got %s", c.Timeout)
	case c.ChunkSize <= 0:
		return errors.Errorf("chunk_size must be > 0, got %d", c.ChunkSize)
	case c.LogVerbosity < 0:
		return errors.Errorf("log_verbosity must be >= 0, got %d", c.LogVerbosity)
	}
	return nil
}
