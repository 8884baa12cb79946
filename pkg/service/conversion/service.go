// Package conversion provides the conversion service: validate a draft,
// fetch the live rate, and compute the converted amount. It keeps no state
// and does no logging; callers log and render its outcomes.
package conversion

import (
	"context"
	"errors"

	"github.com/amirasaad/fxconvert/pkg/conversion"
	"github.com/amirasaad/fxconvert/pkg/provider"
)

var errNilFetcher = errors.New("no rate fetcher configured")

// Service runs conversion attempts against a single rate fetcher.
// It is safe for concurrent use.
type Service struct {
	fetcher provider.RateFetcher
}

// New creates a conversion service backed by fetcher.
func New(fetcher provider.RateFetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Validate checks a draft without side effects.
func (s *Service) Validate(draft conversion.Draft) (conversion.Request, error) {
	return conversion.Validate(draft)
}

// Convert fetches the rate for req and applies it. Every error returned is a
// *conversion.Failure; nothing is retried.
func (s *Service) Convert(ctx context.Context, req conversion.Request) (conversion.Result, error) {
	if s.fetcher == nil {
		return conversion.Result{}, conversion.NewUnexpectedFailure(errNilFetcher)
	}

	rate, err := s.fetcher.FetchRate(ctx, req.Base, req.Target)
	if err != nil {
		return conversion.Result{}, conversion.AsFailure(err)
	}

	return conversion.Result{
		ConvertedAmount: req.Amount * rate,
		Rate:            rate,
	}, nil
}

// ConvertDraft validates draft and, when valid, converts it. Invalid drafts
// never reach the fetcher.
func (s *Service) ConvertDraft(
	ctx context.Context,
	draft conversion.Draft,
) (conversion.Request, conversion.Result, error) {
	req, err := s.Validate(draft)
	if err != nil {
		return conversion.Request{}, conversion.Result{}, err
	}
	res, err := s.Convert(ctx, req)
	if err != nil {
		return req, conversion.Result{}, err
	}
	return req, res, nil
}

// Swap exchanges base and target. Any result held for the old draft is stale.
func (s *Service) Swap(draft conversion.Draft) conversion.Draft {
	return draft.Swap()
}
