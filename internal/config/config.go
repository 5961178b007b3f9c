// Package config loads runtime settings from environment variables and an
// optional config file.
package config

import (
	"log/slog"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	DBPath   string
	Workers  int
	LogLevel string
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/stealer-parsers")

	viper.AutomaticEnv()
	viper.SetDefault("STEALER_DB_PATH", "stealer.db")
	viper.SetDefault("STEALER_WORKERS", 1)
	viper.SetDefault("STEALER_LOG_LEVEL", "info")

	// Config file is optional; environment variables and defaults cover
	// everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("Error reading config file", "error", err)
		}
	}

	return &Config{
		DBPath:   viper.GetString("STEALER_DB_PATH"),
		Workers:  viper.GetInt("STEALER_WORKERS"),
		LogLevel: viper.GetString("STEALER_LOG_LEVEL"),
	}, nil
}

// SetupLogger builds the process-wide structured logger.
func SetupLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
