package conversion

import (
	"errors"
	"fmt"

	"github.com/amirasaad/fxconvert/pkg/money"
)

// Kind classifies why a conversion attempt failed.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuth
	KindRateLimit
	KindHTTP
	KindMalformedResponse
	KindUnknownCurrency
	KindNetwork
	KindUnexpected
)

var kindNames = map[Kind]string{
	KindValidation:        "validation",
	KindAuth:              "auth",
	KindRateLimit:         "rate_limit",
	KindHTTP:              "http",
	KindMalformedResponse: "malformed_response",
	KindUnknownCurrency:   "unknown_currency",
	KindNetwork:           "network",
	KindUnexpected:        "unexpected",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// kindError lets errors.Is match any Failure of a given kind.
type kindError Kind

func (k kindError) Error() string { return Kind(k).String() + " error" }

// Sentinels for errors.Is checks against a Failure's kind.
var (
	ErrValidation        error = kindError(KindValidation)
	ErrAuth              error = kindError(KindAuth)
	ErrRateLimit         error = kindError(KindRateLimit)
	ErrHTTP              error = kindError(KindHTTP)
	ErrMalformedResponse error = kindError(KindMalformedResponse)
	ErrUnknownCurrency   error = kindError(KindUnknownCurrency)
	ErrNetwork           error = kindError(KindNetwork)
	ErrUnexpected        error = kindError(KindUnexpected)
)

// User-facing messages.
const (
	MsgInvalidBase       = "Base currency must be a 3-letter uppercase code."
	MsgInvalidTarget     = "Destination currency must be a 3-letter uppercase code."
	MsgInvalidAmount     = "Amount must be a positive number."
	MsgAuth              = "Invalid or unauthorized API key. Please check your API configuration."
	MsgRateLimit         = "API rate limit exceeded. Please wait and try again."
	MsgMalformedResponse = "Unexpected API response format. Please try again later."
	MsgInvalidRate       = "Received invalid exchange rate from server."
	MsgNetwork           = "Network failure. Please check your internet connection and try again."
	MsgUnexpected        = "Unexpected error occurred. Please try again."
)

// Failure is the single error type a conversion attempt fails with.
// Message is always safe to show to the user.
type Failure struct {
	Kind    Kind
	Message string
	// Status is the upstream HTTP status for KindHTTP, KindAuth and KindRateLimit.
	Status int
	// Currency names the missing code for KindUnknownCurrency.
	Currency money.Code
	Err      error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Is reports whether target is the sentinel for f's kind.
func (f *Failure) Is(target error) bool {
	k, ok := target.(kindError)
	return ok && Kind(k) == f.Kind
}

// NewValidationFailure reports user-fixable input.
func NewValidationFailure(msg string) *Failure {
	return &Failure{Kind: KindValidation, Message: msg}
}

// NewAuthFailure reports a rejected API key (401 or 403).
func NewAuthFailure(status int) *Failure {
	return &Failure{Kind: KindAuth, Message: MsgAuth, Status: status}
}

// NewRateLimitFailure reports an upstream 429.
func NewRateLimitFailure() *Failure {
	return &Failure{Kind: KindRateLimit, Message: MsgRateLimit, Status: 429}
}

// NewHTTPFailure reports any other non-success status.
func NewHTTPFailure(status int) *Failure {
	return &Failure{
		Kind:    KindHTTP,
		Message: fmt.Sprintf("Request failed with status %d. Please try again.", status),
		Status:  status,
	}
}

// NewMalformedResponseFailure reports an API contract violation. msg is
// MsgMalformedResponse or MsgInvalidRate.
func NewMalformedResponseFailure(msg string, err error) *Failure {
	return &Failure{Kind: KindMalformedResponse, Message: msg, Err: err}
}

// NewUnknownCurrencyFailure reports that the response carried no rate for code.
func NewUnknownCurrencyFailure(code money.Code) *Failure {
	return &Failure{
		Kind:     KindUnknownCurrency,
		Message:  fmt.Sprintf("Could not find exchange rate for %s.", code),
		Currency: code,
	}
}

// NewNetworkFailure wraps a transport-level error.
func NewNetworkFailure(err error) *Failure {
	return &Failure{Kind: KindNetwork, Message: MsgNetwork, Err: err}
}

// NewUnexpectedFailure wraps anything that fits no other kind.
func NewUnexpectedFailure(err error) *Failure {
	return &Failure{Kind: KindUnexpected, Message: MsgUnexpected, Err: err}
}

// AsFailure returns err as a *Failure, classifying anything else as
// KindUnexpected. A nil err yields nil.
func AsFailure(err error) *Failure {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return NewUnexpectedFailure(err)
}
