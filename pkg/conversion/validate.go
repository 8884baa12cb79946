package conversion

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/amirasaad/fxconvert/pkg/money"
	"github.com/go-playground/validator/v10"
)

// draftFields mirrors Draft after amount parsing. Field order is the order
// rules are reported in.
type draftFields struct {
	Base   string  `validate:"len=3,alpha,uppercase"`
	Target string  `validate:"len=3,alpha,uppercase"`
	Amount float64 `validate:"finite,gt=0"`
}

var fieldMessages = map[string]string{
	"Base":   MsgInvalidBase,
	"Target": MsgInvalidTarget,
	"Amount": MsgInvalidAmount,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks d and returns the Request it describes. Rules run in
// order: base code, target code, amount; the first failure wins and is
// returned as a KindValidation *Failure. Codes are not trimmed or upper-cased.
func Validate(d Draft) (Request, error) {
	fields := draftFields{
		Base:   d.Base,
		Target: d.Target,
		Amount: parseAmount(d.Amount),
	}
	if err := validate.Struct(fields); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return Request{}, NewValidationFailure(fieldMessages[verrs[0].Field()])
		}
		return Request{}, NewUnexpectedFailure(err)
	}
	return Request{
		Base:   money.Code(fields.Base),
		Target: money.Code(fields.Target),
		Amount: fields.Amount,
	}, nil
}

// parseAmount returns NaN for anything that is not a plain decimal number,
// so the finite rule rejects it. Hex literals and digit separators, which
// strconv would otherwise accept, are refused.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "_xX") {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
