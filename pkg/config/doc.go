// Package config loads typed configuration structs from environment
// variables, with an optional .env file for local development.
//
// Parsing is done by github.com/caarlos0/env/v11 and the .env file is read
// with github.com/joho/godotenv. Every configuration type is parsed once and
// cached, so Load can be called from anywhere without re-reading the
// environment.
//
//	type AppConfig struct {
//	    Name     string `env:"APP_NAME" envDefault:"signup"`
//	    Env      string `env:"APP_ENV" envDefault:"development"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
package config
