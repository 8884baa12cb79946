package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/amirasaad/fxconvert/pkg/app"
	"github.com/amirasaad/fxconvert/pkg/config"
	"github.com/amirasaad/fxconvert/pkg/money"
	"github.com/amirasaad/fxconvert/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

// Pair records one FetchRate call.
type Pair struct {
	Base   money.Code
	Target money.Code
}

// StubRateFetcher returns a fixed rate or error and records its calls.
type StubRateFetcher struct {
	mu        sync.Mutex
	Rate      float64
	Err       error
	HealthErr error
	calls     []Pair
}

func (f *StubRateFetcher) FetchRate(_ context.Context, base, target money.Code) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Pair{Base: base, Target: target})
	return f.Rate, f.Err
}

func (f *StubRateFetcher) Name() string { return "stub" }

func (f *StubRateFetcher) CheckHealth(context.Context) error { return f.HealthErr }

// Calls returns the pairs requested so far.
func (f *StubRateFetcher) Calls() []Pair {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Pair(nil), f.calls...)
}

// NewTestApp builds the full fiber app around fetcher with quiet logging.
func NewTestApp(fetcher *StubRateFetcher, rateLimit *config.RateLimit) *fiber.App {
	if rateLimit == nil {
		rateLimit = &config.RateLimit{MaxRequests: 1000, Window: time.Minute}
	}
	cfg := &config.App{
		Env:             "test",
		RateLimit:       rateLimit,
		FreeCurrencyAPI: &config.FreeCurrencyAPI{ApiKey: "test"},
	}
	deps := &app.Deps{
		RateFetcher: fetcher,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return webapi.SetupApp(app.New(deps, cfg))
}

// E2ETestSuite drives the HTTP API against a stub rate fetcher.
type E2ETestSuite struct {
	suite.Suite
	Fetcher *StubRateFetcher
	App     *fiber.App
}

func (s *E2ETestSuite) SetupTest() {
	s.Fetcher = &StubRateFetcher{Rate: 0.75}
	s.App = NewTestApp(s.Fetcher, nil)
}

// MakeRequest sends a request with an optional JSON body.
func (s *E2ETestSuite) MakeRequest(method, path, body string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := s.App.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// DecodeJSON reads and closes resp.Body into v.
func (s *E2ETestSuite) DecodeJSON(resp *http.Response, v any) {
	defer resp.Body.Close() //nolint:errcheck
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(v))
}
