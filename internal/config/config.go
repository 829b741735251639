package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes environment overrides, e.g. SCHED_SERVER_ADDR
const EnvPrefix = "SCHED"

// Config represents application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Server   ServerConfig   `mapstructure:"server"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // Empty logs to the console
	Level string `mapstructure:"level"`
}

// ServerConfig represents HTTP API configuration
type ServerConfig struct {
	Addr            string `mapstructure:"addr"`
	Mode            string `mapstructure:"mode"` // gin mode: debug, release or test
	ShutdownTimeout string `mapstructure:"shutdown_timeout"`
}

// ScheduleConfig represents schedule computation rules
type ScheduleConfig struct {
	StrictAnchor bool   `mapstructure:"strict_anchor"` // Reject anchors that are not Saturdays
	MinYear      int    `mapstructure:"min_year"`
	MaxYear      int    `mapstructure:"max_year"`
	OutputFormat string `mapstructure:"output_format"` // text, csv or json
}

// Load loads configuration from file, .env and environment.
// A missing config file is not an error; defaults apply.
func Load(configPath string) (*Config, error) {
	// .env never overrides variables already set
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.sched-shifter")
		v.AddConfigPath("/etc/sched-shifter")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("server.addr", ":8000")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("schedule.strict_anchor", true)
	v.SetDefault("schedule.min_year", 2024)
	v.SetDefault("schedule.max_year", 2100)
	v.SetDefault("schedule.output_format", "text")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be 'debug', 'release' or 'test', got '%s'", c.Server.Mode)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}

	if c.Schedule.MinYear > c.Schedule.MaxYear {
		return fmt.Errorf("schedule.min_year (%d) must not exceed schedule.max_year (%d)",
			c.Schedule.MinYear, c.Schedule.MaxYear)
	}

	switch c.Schedule.OutputFormat {
	case "text", "csv", "json":
	default:
		return fmt.Errorf("schedule.output_format must be 'text', 'csv' or 'json', got '%s'", c.Schedule.OutputFormat)
	}

	return nil
}

// GetShutdownTimeout returns the graceful shutdown timeout
func (c *ServerConfig) GetShutdownTimeout() time.Duration {
	if c.ShutdownTimeout == "" {
		return 10 * time.Second
	}
	duration, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return duration
}

// GetLevel returns the zap level, info when unparseable
func (c *LogConfig) GetLevel() zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return zapcore.InfoLevel
	}
	return level
}
