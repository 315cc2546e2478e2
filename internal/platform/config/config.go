// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppName   string
	Port      string
	DataDir   string
	LogLevel  string
	LogFormat string
}

// Load reads configuration from env vars. A .env file in the working
// directory is merged in when present; real env vars win.
func Load() Config {
	// Missing .env is the normal case in containers.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("APP_NAME", "petresq")
	v.SetDefault("PORT", "3000")
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.AutomaticEnv()

	return Config{
		AppName:   v.GetString("APP_NAME"),
		Port:      strings.TrimPrefix(v.GetString("PORT"), ":"),
		DataDir:   v.GetString("DATA_DIR"),
		LogLevel:  strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat: strings.ToLower(v.GetString("LOG_FORMAT")),
	}
}
