package config

import (
	"time"
)

// DefaultFreeCurrencyAPIURL is the versioned root of the freecurrencyapi.com API.
const DefaultFreeCurrencyAPIURL = "https://api.freecurrencyapi.com/v1"

type FreeCurrencyAPI struct {
	ApiKey string `envconfig:"API_KEY"`
	ApiUrl string `envconfig:"API_URL" default:"https://api.freecurrencyapi.com/v1"`
	// HTTPTimeout bounds a single upstream request. Zero means no timeout.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[fxconvert]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env             string           `envconfig:"APP_ENV" default:"development"`
	Server          *Server          `envconfig:"SERVER"`
	Log             *Log             `envconfig:"LOG"`
	RateLimit       *RateLimit       `envconfig:"RATE_LIMIT"`
	FreeCurrencyAPI *FreeCurrencyAPI `envconfig:"FREECURRENCYAPI"`
}

// Validate checks the settings the conversion pipeline cannot run without.
func (c *App) Validate() error {
	if c.FreeCurrencyAPI == nil || c.FreeCurrencyAPI.ApiKey == "" {
		return &ConfigurationError{Key: "FREECURRENCYAPI_API_KEY", Reason: "is required"}
	}
	if c.FreeCurrencyAPI.HTTPTimeout < 0 {
		return &ConfigurationError{Key: "FREECURRENCYAPI_HTTP_TIMEOUT", Reason: "must not be negative"}
	}
	return nil
}
