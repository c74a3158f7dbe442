// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. IDSWATCH_BACKEND_URL
const EnvPrefix = "IDSWATCH"

// Config holds the console configuration
type Config struct {
	BackendURL       string        `mapstructure:"backend_url"`
	PollInterval     time.Duration `mapstructure:"poll_interval"`
	RequestTimeout   time.Duration `mapstructure:"request_timeout"` // 0 = no timeout
	LogDir           string        `mapstructure:"log_dir"`
	HistoryRetention time.Duration `mapstructure:"history_retention"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() Config {
	return Config{
		BackendURL:       "http://localhost:5000",
		PollInterval:     2 * time.Second,
		LogDir:           filepath.Join(DataDir(), "logs"),
		HistoryRetention: time.Hour,
	}
}

// DataDir is where idswatch keeps its config and logs
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".idswatch"
	}
	return filepath.Join(home, ".idswatch")
}

// Load reads configuration from defaults, an optional YAML file and the environment.
// With an empty path the file is looked up as config.yaml in DataDir() and then the
// working directory; a missing file is not an error.
func Load(path string) (Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("backend_url", def.BackendURL)
	v.SetDefault("poll_interval", def.PollInterval)
	v.SetDefault("request_timeout", def.RequestTimeout)
	v.SetDefault("log_dir", def.LogDir)
	v.SetDefault("history_retention", def.HistoryRetention)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DataDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks that the configuration is usable
func (c Config) Validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil {
		return fmt.Errorf("invalid backend_url %q: %w", c.BackendURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid backend_url %q: scheme must be http or https", c.BackendURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid backend_url %q: missing host", c.BackendURL)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %s", c.PollInterval)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative, got %s", c.RequestTimeout)
	}
	if c.HistoryRetention <= 0 {
		return fmt.Errorf("history_retention must be positive, got %s", c.HistoryRetention)
	}
	return nil
}

// fileConfig is the on-disk layout. Durations are written as strings ("2s").
type fileConfig struct {
	BackendURL       string `yaml:"backend_url"`
	PollInterval     string `yaml:"poll_interval"`
	RequestTimeout   string `yaml:"request_timeout"`
	LogDir           string `yaml:"log_dir"`
	HistoryRetention string `yaml:"history_retention"`
}

// WriteDefault writes the default configuration to path. An existing file is left alone.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	def := DefaultConfig()
	data, err := yaml.Marshal(fileConfig{
		BackendURL:       def.BackendURL,
		PollInterval:     def.PollInterval.String(),
		RequestTimeout:   def.RequestTimeout.String(),
		LogDir:           def.LogDir,
		HistoryRetention: def.HistoryRetention.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	header := "# idswatch configuration\n# Every key can be overridden with an IDSWATCH_<KEY> environment variable.\n"
	return os.WriteFile(path, append([]byte(header), data...), 0644)
}
