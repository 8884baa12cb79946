package conversion

import (
	"errors"
	"testing"

	"github.com/amirasaad/fxconvert/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		want  Request
	}{
		{"default form", DefaultDraft(), Request{Base: money.CAD, Target: money.USD, Amount: 1}},
		{"decimal amount", Draft{"GBP", "AUD", "12.5"}, Request{Base: money.GBP, Target: money.AUD, Amount: 12.5}},
		{"unlisted codes", Draft{"EUR", "JPY", "3"}, Request{Base: "EUR", Target: "JPY", Amount: 3}},
		{"same currency", Draft{"USD", "USD", "2"}, Request{Base: money.USD, Target: money.USD, Amount: 2}},
		{"padded amount", Draft{"CAD", "USD", " 5 "}, Request{Base: money.CAD, Target: money.USD, Amount: 5}},
		{"exponent amount", Draft{"CAD", "USD", "1e3"}, Request{Base: money.CAD, Target: money.USD, Amount: 1000}},
		{"tiny amount", Draft{"CAD", "USD", "0.0001"}, Request{Base: money.CAD, Target: money.USD, Amount: 0.0001}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.draft)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		msg   string
	}{
		{"lowercase base", Draft{"us", "USD", "1"}, MsgInvalidBase},
		{"long base", Draft{"1234", "USD", "1"}, MsgInvalidBase},
		{"empty base", Draft{"", "USD", "1"}, MsgInvalidBase},
		{"mixed case base", Draft{"Usd", "USD", "1"}, MsgInvalidBase},
		{"digit in base", Draft{"U5D", "USD", "1"}, MsgInvalidBase},
		{"padded base", Draft{" USD", "CAD", "1"}, MsgInvalidBase},
		{"non ascii base", Draft{"ÄBC", "CAD", "1"}, MsgInvalidBase},
		{"base checked before target", Draft{"us", "ca", "abc"}, MsgInvalidBase},
		{"lowercase target", Draft{"USD", "us", "1"}, MsgInvalidTarget},
		{"long target", Draft{"USD", "1234", "1"}, MsgInvalidTarget},
		{"empty target", Draft{"USD", "", "1"}, MsgInvalidTarget},
		{"target checked before amount", Draft{"USD", "cad", "-1"}, MsgInvalidTarget},
		{"zero amount", Draft{"CAD", "USD", "0"}, MsgInvalidAmount},
		{"negative amount", Draft{"CAD", "USD", "-5"}, MsgInvalidAmount},
		{"text amount", Draft{"CAD", "USD", "abc"}, MsgInvalidAmount},
		{"empty amount", Draft{"CAD", "USD", ""}, MsgInvalidAmount},
		{"infinite amount", Draft{"CAD", "USD", "Infinity"}, MsgInvalidAmount},
		{"nan amount", Draft{"CAD", "USD", "NaN"}, MsgInvalidAmount},
		{"overflowing amount", Draft{"CAD", "USD", "1e400"}, MsgInvalidAmount},
		{"digit separators", Draft{"CAD", "USD", "1_000"}, MsgInvalidAmount},
		{"hex float amount", Draft{"CAD", "USD", "0x1p4"}, MsgInvalidAmount},
		{"hex amount", Draft{"CAD", "USD", "0x10"}, MsgInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.draft)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var f *Failure
			require.ErrorAs(t, err, &f)
			assert.Equal(t, KindValidation, f.Kind)
			assert.Equal(t, tt.msg, f.Message)
			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestValidate_Idempotent(t *testing.T) {
	for _, d := range []Draft{DefaultDraft(), {"us", "USD", "1"}, {"CAD", "USD", "abc"}} {
		r1, err1 := Validate(d)
		r2, err2 := Validate(d)
		assert.Equal(t, r1, r2)
		assert.Equal(t, err1, err2)
	}
}

func TestDraft_Swap(t *testing.T) {
	d := Draft{Base: "CAD", Target: "USD", Amount: "5"}
	assert.Equal(t, Draft{Base: "USD", Target: "CAD", Amount: "5"}, d.Swap())
	assert.Equal(t, d, d.Swap().Swap())
	// original untouched
	assert.Equal(t, "CAD", d.Base)
}

func TestDisplayLines(t *testing.T) {
	req := Request{Base: money.CAD, Target: money.USD, Amount: 10}
	res := Result{ConvertedAmount: 7.5, Rate: 0.75}

	assert.Equal(t, "10 CAD = 7.5000 USD", ResultLine("10", req, res))
	assert.Equal(t, "Exchange rate: 1 CAD = 0.7500 USD", RateLine(req, res))
}
