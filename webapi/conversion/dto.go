package conversion

import (
	"encoding/json"

	"github.com/amirasaad/fxconvert/pkg/conversion"
	"github.com/amirasaad/fxconvert/pkg/money"
)

// Amount accepts either a JSON string or a JSON number and keeps the text
// as written, so validation sees exactly what the client sent.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

// ConvertRequest is the body of POST /api/conversions and /api/conversions/swap.
type ConvertRequest struct {
	Base   string `json:"base" validate:"max=16"`
	Target string `json:"target" validate:"max=16"`
	Amount Amount `json:"amount" validate:"max=64"`
}

// ConvertQuery is the query string of GET /api/conversions.
type ConvertQuery struct {
	Base   string `query:"base" validate:"max=16"`
	Target string `query:"target" validate:"max=16"`
	Amount string `query:"amount" validate:"max=64"`
}

func (r ConvertRequest) Draft() conversion.Draft {
	return conversion.Draft{Base: r.Base, Target: r.Target, Amount: string(r.Amount)}
}

func (q ConvertQuery) Draft() conversion.Draft {
	return conversion.Draft{Base: q.Base, Target: q.Target, Amount: q.Amount}
}

// ConversionResponse is the data of a successful conversion.
type ConversionResponse struct {
	Base             money.Code `json:"base"`
	Target           money.Code `json:"target"`
	Amount           float64    `json:"amount"`
	ConvertedAmount  float64    `json:"converted_amount"`
	Rate             float64    `json:"rate"`
	ConvertedDisplay string     `json:"converted_display"`
	RateDisplay      string     `json:"rate_display"`
	Summary          string     `json:"summary"`
	RateSummary      string     `json:"rate_summary"`
}

// ToResponse converts a successful attempt into its response DTO.
func ToResponse(draft conversion.Draft, req conversion.Request, res conversion.Result) *ConversionResponse {
	return &ConversionResponse{
		Base:             req.Base,
		Target:           req.Target,
		Amount:           req.Amount,
		ConvertedAmount:  res.ConvertedAmount,
		Rate:             res.Rate,
		ConvertedDisplay: money.Format(res.ConvertedAmount),
		RateDisplay:      money.Format(res.Rate),
		Summary:          conversion.ResultLine(draft.Amount, req, res),
		RateSummary:      conversion.RateLine(req, res),
	}
}
