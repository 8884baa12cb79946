package app

import (
	"log/slog"

	"github.com/amirasaad/fxconvert/pkg/config"
	"github.com/amirasaad/fxconvert/pkg/provider"
	conversionsvc "github.com/amirasaad/fxconvert/pkg/service/conversion"
)

// Deps contains the infrastructure the application services are built from.
type Deps struct {
	RateFetcher provider.RateFetcher
	Logger      *slog.Logger
}

type App struct {
	Deps              *Deps
	Config            *config.App
	ConversionService *conversionsvc.Service
}

func New(deps *Deps, cfg *config.App) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &App{
		Deps:              deps,
		Config:            cfg,
		ConversionService: conversionsvc.New(deps.RateFetcher),
	}
}

// HealthChecker returns the rate fetcher's health probe, if it has one.
func (a *App) HealthChecker() (provider.HealthChecker, bool) {
	hc, ok := a.Deps.RateFetcher.(provider.HealthChecker)
	return hc, ok
}
