package money

import "errors"

// ErrInvalidCurrency is returned when a currency code is not three uppercase letters.
var ErrInvalidCurrency = errors.New("invalid currency code")

// ParseCode converts s to a Code, rejecting anything that is not exactly three
// uppercase ASCII letters. The input is not normalised.
func ParseCode(s string) (Code, error) {
	c := Code(s)
	if !c.IsValid() {
		return "", ErrInvalidCurrency
	}
	return c, nil
}
