package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "lpreport/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// ReportConfig contains the report pipeline configuration. The defaults are
// the canonical values of the monthly landing page report run; the tool is
// fully functional with no flags, env vars or config file present.
type ReportConfig struct {
	MoMFile     string   `yaml:"mom_file" envconfig:"MOM_FILE" validate:"required"`
	YoYFile     string   `yaml:"yoy_file" envconfig:"YOY_FILE" validate:"required"`
	OutputFile  string   `yaml:"output_file" envconfig:"OUTPUT_FILE" validate:"required"`
	Channels    []string `yaml:"channels" envconfig:"CHANNELS" validate:"min=1,dive,required"`
	TopN        int      `yaml:"top_n" envconfig:"TOP_N" validate:"min=1"`
	MinSessions float64  `yaml:"min_sessions" envconfig:"MIN_SESSIONS" validate:"min=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format      string `yaml:"format" envconfig:"FORMAT"`
	Output      string `yaml:"output" envconfig:"OUTPUT"`
	FilePath    string `yaml:"file_path" envconfig:"FILE_PATH"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT"`
}

// Default returns the default configuration. Input and output paths match the
// dashboard export names the report has always been generated from.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			MoMFile:     "USDOnline-DashboardMk2_RLandingPagesMoM_Table.csv",
			YoYFile:     "USDOnline-DashboardMk2_RLandingPagesYoY_Table.csv",
			OutputFile:  "landing_page_top3_next_month_v5_update.md",
			Channels:    []string{"Organic Search", "Paid Search", "Paid Social"},
			TopN:        3,
			MinSessions: 20,
		},
		Logging: LoggingConfig{
			Level:       "info",
			Format:      "json",
			Output:      "console",
			FilePath:    "landing-report.log",
			Development: false,
		},
	}
}

// Load loads configuration in layers: defaults, then an optional YAML config
// file, then environment variables (prefix LPR), then validation.
func Load() (*Config, error) {
	cfg := Default()

	if configFile := getConfigFilePath(); configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, apperrors.NewConfigError(fmt.Sprintf("failed to load config from %s", configFile), err)
		}
	}

	if err := envconfig.Process("LPR", cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile overlays configuration from a YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate normalizes and validates the configuration
func (c *Config) validate() error {
	// Only structured JSON and plain text handlers exist
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output != "console" && c.Logging.Output != "file" && c.Logging.Output != "both" {
		c.Logging.Output = "console"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "landing-report.log"
	}

	if err := validator.New().Struct(c); err != nil {
		return apperrors.NewConfigError("config validation failed", err)
	}
	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use defaults and env vars only
}
