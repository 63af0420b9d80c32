package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP HTTP       `yaml:"http"`
	Seed []SeedTask `yaml:"seed"`
}

type HTTP struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
}

// SeedTask is created when the server starts.
type SeedTask struct {
	Title     string `yaml:"title"`
	Completed bool   `yaml:"completed"`
}

func Default() Config {
	return Config{
		HTTP: HTTP{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			RequestTimeout:    3 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
	}
}

// Load starts from Default, overlays the YAML file at path (skipped when path
// is empty), then the TASK_TRACKER_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("TASK_TRACKER_ADDR")); v != "" {
		cfg.HTTP.Addr = v
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"TASK_TRACKER_REQUEST_TIMEOUT", &cfg.HTTP.RequestTimeout},
		{"TASK_TRACKER_SHUTDOWN_TIMEOUT", &cfg.HTTP.ShutdownTimeout},
	}
	for _, d := range durations {
		v := strings.TrimSpace(os.Getenv(d.key))
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = parsed
	}
	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return errors.New("http.addr is required")
	}
	if c.HTTP.ReadHeaderTimeout <= 0 {
		return errors.New("http.read_header_timeout must be positive")
	}
	if c.HTTP.RequestTimeout <= 0 {
		return errors.New("http.request_timeout must be positive")
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return errors.New("http.shutdown_timeout must be positive")
	}
	for i, s := range c.Seed {
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("seed[%d].title is required", i)
		}
	}
	return nil
}
