package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"scorecli/internal/errors"
	"scorecli/internal/grading"
)

// envPrefix is the prefix for environment variable overrides,
// e.g. SCORE_SERVER_PORT, SCORE_LOGGING_LEVEL.
const envPrefix = "SCORE"

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Grading GradingConfig `yaml:"grading" envconfig:"GRADING"`
}

// ServerConfig contains HTTP server configuration for the report server
type ServerConfig struct {
	Port            int             `yaml:"port" envconfig:"PORT" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration   `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration   `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration   `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration   `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
	RateLimit       RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" validate:"min=0"`
	Burst   int     `yaml:"burst" envconfig:"BURST" validate:"min=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" validate:"required"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR" validate:"required"`
}

// GradingConfig contains the grading scale and pipeline selection
type GradingConfig struct {
	Thresholds grading.Thresholds `yaml:"thresholds" envconfig:"THRESHOLDS"`
	Pipeline   string             `yaml:"pipeline" envconfig:"PIPELINE" validate:"oneof=fold grouped"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     100,
				Burst:   50,
			},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/scorecli.log",
		},
		Paths: PathsConfig{
			DataDir:    "data",
			ReportsDir: "data/reports",
			LogsDir:    "logs",
		},
		Grading: GradingConfig{
			Thresholds: grading.DefaultThresholds(),
			Pipeline:   string(grading.PipelineFold),
		},
	}
}

// Load loads configuration in precedence order: defaults, then the YAML
// config file if one exists, then environment variables.
func Load() (*Config, error) {
	cfg := Default()

	configFile := configFilePath()
	if _, err := os.Stat(configFile); err == nil {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, errors.NewConfigError("failed to read config file", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.NewConfigError("failed to parse config file", err)
		}
	}

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, errors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.NewConfigError("config validation failed", err)
	}
	if !c.Grading.Thresholds.IsValid() {
		return errors.NewValidationError("grading thresholds must be strictly descending")
	}
	return nil
}

// Pipeline returns the configured aggregator implementation.
func (c *Config) Pipeline() grading.Pipeline {
	return grading.Pipeline(c.Grading.Pipeline)
}

// DatasetPath returns the conventional path of a generated dataset of
// the given size, e.g. data/student_scores_100.csv.
func (p PathsConfig) DatasetPath(numRecords int) string {
	return filepath.Join(p.DataDir, fmt.Sprintf("student_scores_%d.csv", numRecords))
}

// ReportPath resolves a file name inside the reports directory.
func (p PathsConfig) ReportPath(name string) string {
	return filepath.Join(p.ReportsDir, name)
}

// LogPath resolves a file name inside the logs directory.
func (p PathsConfig) LogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}

// EnsureDirectories creates the configured directories if missing.
func (p PathsConfig) EnsureDirectories() error {
	for _, dir := range []string{p.DataDir, p.ReportsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to create directory %s", dir), err)
		}
	}
	return nil
}

// configFilePath returns the config file location, overridable through
// SCORE_CONFIG_FILE.
func configFilePath() string {
	if path := os.Getenv(envPrefix + "_CONFIG_FILE"); path != "" {
		return path
	}
	return "scorecli.yaml"
}
