package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Slide sizes in EMU.
const (
	WidescreenWidth  = 12192000
	WidescreenHeight = 6858000
)

// ValidLogLevels are the accepted values of LogLevel.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

type Config struct {
	OutputDir         string `yaml:"output_dir"`
	ScenarioDir       string `yaml:"scenario_dir"`
	Workers           int    `yaml:"workers"`
	IDBaseline        int    `yaml:"id_baseline"`
	DefaultTransition string `yaml:"default_transition"`
	SlideWidth        int64  `yaml:"slide_width"`
	SlideHeight       int64  `yaml:"slide_height"`
	AutoLayout        bool   `yaml:"auto_layout"`
	LogLevel          string `yaml:"log_level"`
	ShowStats         bool   `yaml:"show_stats"`
	BuildVersion      string `yaml:"-"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:         "output",
		ScenarioDir:       filepath.Join("internal", "scenarios"),
		Workers:           runtime.NumCPU(),
		IDBaseline:        10,
		DefaultTransition: "fade",
		SlideWidth:        WidescreenWidth,
		SlideHeight:       WidescreenHeight,
		AutoLayout:        true,
		LogLevel:          "info",
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("SLIDEANIM_OUTPUT_DIR"); dir != "" {
		c.OutputDir = dir
	}
	if level := os.Getenv("SLIDEANIM_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	if w := os.Getenv("SLIDEANIM_WORKERS"); w != "" {
		if n, err := strconv.Atoi(w); err == nil {
			c.Workers = n
		}
	}
}

// Validate checks the configuration for values the builder cannot use.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.IDBaseline < 1 {
		return fmt.Errorf("id_baseline must be at least 1, got %d", c.IDBaseline)
	}
	if c.SlideWidth <= 0 || c.SlideHeight <= 0 {
		return fmt.Errorf("invalid slide size %dx%d", c.SlideWidth, c.SlideHeight)
	}
	if c.DefaultTransition == "" {
		return fmt.Errorf("default_transition is empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is empty")
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if c.LogLevel == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.LogLevel, ValidLogLevels)
	}

	return nil
}
