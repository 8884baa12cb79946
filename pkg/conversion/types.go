// Package conversion holds the currency conversion domain: the raw draft a
// user submits, the validated request, the result, and the failure taxonomy
// every layer reports through.
package conversion

import "github.com/amirasaad/fxconvert/pkg/money"

// Draft is the raw, unvalidated input of a conversion form.
type Draft struct {
	Base   string `json:"base"`
	Target string `json:"target"`
	Amount string `json:"amount"`
}

// DefaultDraft is the form state before the user touches anything.
func DefaultDraft() Draft {
	return Draft{Base: string(money.CAD), Target: string(money.USD), Amount: "1"}
}

// Swap returns a copy of d with base and target exchanged.
// Callers are expected to discard any result held for d.
func (d Draft) Swap() Draft {
	return Draft{Base: d.Target, Target: d.Base, Amount: d.Amount}
}

// Request is a validated conversion request. Build it with Validate; both
// codes are three uppercase letters and Amount is finite and positive.
type Request struct {
	Base   money.Code `json:"base"`
	Target money.Code `json:"target"`
	Amount float64    `json:"amount"`
}

// Result is the outcome of a successful conversion.
type Result struct {
	ConvertedAmount float64 `json:"converted_amount"`
	// Rate is units of Target per one unit of Base.
	Rate float64 `json:"rate"`
}
