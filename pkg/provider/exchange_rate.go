package provider

import (
	"context"

	"github.com/amirasaad/fxconvert/pkg/money"
)

// RateFetcher fetches live exchange rates from an external source.
type RateFetcher interface {
	// FetchRate returns units of target per one unit of base. Failures are
	// reported as *conversion.Failure values.
	FetchRate(ctx context.Context, base, target money.Code) (float64, error)

	// Name returns the provider's name for logging and identification.
	Name() string
}

// HealthChecker is implemented by providers that can probe their upstream
// without spending conversion quota.
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}
