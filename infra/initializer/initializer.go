package initializer

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/fxconvert/infra/provider/freecurrencyapi"
	"github.com/amirasaad/fxconvert/pkg/app"
	"github.com/amirasaad/fxconvert/pkg/config"
)

// InitializeDependencies validates cfg, sets up the default logger and builds
// the rate provider. It fails fast when the API key is missing.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	return InitializeDependenciesWithOutput(cfg, os.Stdout)
}

// InitializeDependenciesWithOutput is InitializeDependencies with the logger
// writing to w. Terminal front ends pass stderr or io.Discard.
func InitializeDependenciesWithOutput(cfg *config.App, w io.Writer) (*app.Deps, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := NewLogger(w, cfg.Log)
	slog.SetDefault(logger)
	logger.Info("Initializing exchange rate provider",
		"url", cfg.FreeCurrencyAPI.ApiUrl,
		"api_key", config.MaskValue(cfg.FreeCurrencyAPI.ApiKey),
		"timeout", cfg.FreeCurrencyAPI.HTTPTimeout,
	)

	return &app.Deps{
		RateFetcher: freecurrencyapi.New(*cfg.FreeCurrencyAPI, logger),
		Logger:      logger,
	}, nil
}
