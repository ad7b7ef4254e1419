package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings holds runtime options. Values come from Defaults, then an optional
// YAML file, then command line flags.
type Settings struct {
	Endpoint     string        `yaml:"endpoint"`
	Mode         string        `yaml:"mode"`
	Demo         bool          `yaml:"demo"`
	FPS          int           `yaml:"fps"`
	PollInterval time.Duration `yaml:"poll_interval"`
	Timeout      time.Duration `yaml:"timeout"`
	LogFile      string        `yaml:"log_file"`
	LogLevel     string        `yaml:"log_level"`
	RecordPath   string        `yaml:"record"`
	MetricsAddr  string        `yaml:"metrics_addr"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Endpoint:     DefaultEndpoint,
		Mode:         "live",
		FPS:          TargetFPS,
		PollInterval: PollInterval,
		Timeout:      RequestTimeout,
		LogLevel:     "info",
	}
}

// Load returns Defaults overlaid with the YAML file at path.
// An empty path returns the defaults unchanged.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return s, nil
}

// Validate reports the first invalid setting.
func (s Settings) Validate() error {
	if s.Mode != "live" && s.Mode != "video" {
		return fmt.Errorf("mode %q: must be live or video", s.Mode)
	}
	if s.FPS < 1 || s.FPS > 120 {
		return fmt.Errorf("fps %d: must be between 1 and 120", s.FPS)
	}
	if s.PollInterval <= 0 {
		return errors.New("poll interval must be positive")
	}
	if s.Timeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	if s.Endpoint == "" && !s.Demo {
		return errors.New("endpoint is required outside demo mode")
	}
	return nil
}
