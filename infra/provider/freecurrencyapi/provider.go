// Package freecurrencyapi implements provider.RateFetcher against
// https://freecurrencyapi.com.
package freecurrencyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/amirasaad/fxconvert/pkg/config"
	"github.com/amirasaad/fxconvert/pkg/conversion"
	"github.com/amirasaad/fxconvert/pkg/money"
	"github.com/amirasaad/fxconvert/pkg/provider"
)

const providerName = "freecurrencyapi"

var (
	errMissingData = errors.New("response has no data object")
	errInvalidRate = errors.New("rate is not a finite number")
)

// Provider fetches latest rates from freecurrencyapi.com.
type Provider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a provider from cfg. A zero cfg.HTTPTimeout leaves requests
// unbounded.
func New(cfg config.FreeCurrencyAPI, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	baseURL := cfg.ApiUrl
	if baseURL == "" {
		baseURL = config.DefaultFreeCurrencyAPIURL
	}
	return &Provider{
		apiKey:  cfg.ApiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger.With("provider", providerName),
	}
}

// Name returns the provider's name
func (p *Provider) Name() string {
	return providerName
}

// LatestURL builds the request URL for a single base/target pair.
func (p *Provider) LatestURL(base, target money.Code) string {
	q := url.Values{}
	q.Set("apikey", p.apiKey)
	q.Set("base_currency", string(base))
	q.Set("currencies", string(target))
	return p.baseURL + "/latest?" + q.Encode()
}

// FetchRate fetches the latest rate for base→target.
func (p *Provider) FetchRate(ctx context.Context, base, target money.Code) (float64, error) {
	p.logger.Debug("Fetching exchange rate", "base", base, "target", target)

	body, err := p.get(ctx, p.LatestURL(base, target))
	if err != nil {
		return 0, err
	}

	rate, err := parseRate(body, target)
	if err != nil {
		p.logger.Warn("Unusable exchange rate response", "base", base, "target", target, "error", err)
		return 0, err
	}

	p.logger.Debug("Exchange rate fetched", "base", base, "target", target, "rate", rate)
	return rate, nil
}

// CheckHealth calls the status endpoint, which does not count against the
// conversion quota.
func (p *Provider) CheckHealth(ctx context.Context) error {
	q := url.Values{}
	q.Set("apikey", p.apiKey)
	_, err := p.get(ctx, p.baseURL+"/status?"+q.Encode())
	return err
}

// get performs the GET and classifies transport and status failures.
func (p *Provider) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, conversion.NewUnexpectedFailure(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		// Do only returns *url.Error, i.e. the request never got a response.
		p.logger.Warn("Exchange rate request failed", "error", redact(err, p.apiKey))
		return nil, conversion.NewNetworkFailure(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		p.logger.Warn("Failed to read exchange rate response", "status", resp.StatusCode, "error", err)
		return nil, conversion.NewNetworkFailure(fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		p.logger.Warn("Exchange rate API returned non-success status", "status", resp.StatusCode)
		return nil, classifyStatus(resp.StatusCode)
	}
	return body, nil
}

func classifyStatus(status int) *conversion.Failure {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return conversion.NewAuthFailure(status)
	case http.StatusTooManyRequests:
		return conversion.NewRateLimitFailure()
	default:
		return conversion.NewHTTPFailure(status)
	}
}

// parseRate extracts data[target] from a latest-rates body.
func parseRate(body []byte, target money.Code) (float64, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return 0, conversion.NewMalformedResponseFailure(conversion.MsgMalformedResponse,
			fmt.Errorf("failed to decode response: %w", err))
	}
	raw, ok := envelope["data"]
	if !ok || isNull(raw) {
		return 0, conversion.NewMalformedResponseFailure(conversion.MsgMalformedResponse, errMissingData)
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		return 0, conversion.NewMalformedResponseFailure(conversion.MsgMalformedResponse,
			fmt.Errorf("%w: %w", errMissingData, err))
	}

	entry, ok := data[string(target)]
	if !ok || isNull(entry) {
		return 0, conversion.NewUnknownCurrencyFailure(target)
	}

	rate, err := coerceRate(entry)
	if err != nil {
		return 0, conversion.NewMalformedResponseFailure(conversion.MsgInvalidRate, err)
	}
	return rate, nil
}

// coerceRate accepts a JSON number or a numeric string.
func coerceRate(raw json.RawMessage) (float64, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, err
	}

	var (
		rate float64
		err  error
	)
	switch n := v.(type) {
	case json.Number:
		rate, err = n.Float64()
	case string:
		rate, err = strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, fmt.Errorf("%w: got %T", errInvalidRate, v)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errInvalidRate, err)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, errInvalidRate
	}
	return rate, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// redact keeps the API key out of logged transport errors, which embed the URL.
func redact(err error, secret string) string {
	msg := err.Error()
	if secret == "" {
		return msg
	}
	return strings.ReplaceAll(msg, url.QueryEscape(secret), config.MaskValue(secret))
}

var (
	_ provider.RateFetcher   = (*Provider)(nil)
	_ provider.HealthChecker = (*Provider)(nil)
)
