// Package config holds the almanac runtime configuration.
//
// Values are layered by viper: built-in defaults, then an optional YAML file,
// then ALMANAC_* environment variables, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override (search.threads → ALMANAC_SEARCH_THREADS).
const EnvPrefix = "ALMANAC"

// Config is the full runtime configuration.
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Search  SearchConfig  `mapstructure:"search"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// InputConfig locates puzzle inputs.
type InputConfig struct {
	Dir     string `mapstructure:"dir"`
	Pattern string `mapstructure:"pattern"` // file name with one %d for the day number
}

// SearchConfig sizes the interval search worker pool.
type SearchConfig struct {
	Threads   int   `mapstructure:"threads"`    // 0 = all CPUs
	ChunkSize int64 `mapstructure:"chunk_size"` // 0 = auto
}

// OutputConfig selects the report writer.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoggingConfig controls the diagnostic logger (always stderr).
type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input:   InputConfig{Dir: "input", Pattern: "day%d.txt"},
		Search:  SearchConfig{},
		Output:  OutputConfig{Format: "text"},
		Logging: LoggingConfig{Level: "warn", Encoding: "console"},
	}
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("input.dir", d.Input.Dir)
	v.SetDefault("input.pattern", d.Input.Pattern)
	v.SetDefault("search.threads", d.Search.Threads)
	v.SetDefault("search.chunk_size", d.Search.ChunkSize)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.encoding", d.Logging.Encoding)
}

// New returns a viper instance with defaults and environment overrides wired.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile merges a YAML config file into v. With an explicit path the file
// must exist; otherwise ./almanac.yaml and ConfigFile() are tried and a
// missing file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}
	v.SetConfigName("almanac")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(ConfigDir())
	err := v.ReadInConfig()
	var nf viper.ConfigFileNotFoundError
	if err == nil || errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("read config: %w", err)
}

// Load unmarshals v and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return &cfg, nil
}

// ConfigDir returns the per-user config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "almanac")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".almanac"
	}
	return filepath.Join(home, ".config", "almanac")
}

// ConfigFile returns the per-user config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "almanac.yaml")
}
