package conversion

import (
	"context"
	"errors"
	"testing"

	"github.com/amirasaad/fxconvert/pkg/conversion"
	"github.com/amirasaad/fxconvert/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRateFetcher is a mock implementation of provider.RateFetcher.
type MockRateFetcher struct {
	mock.Mock
}

func (m *MockRateFetcher) FetchRate(ctx context.Context, base, target money.Code) (float64, error) {
	args := m.Called(ctx, base, target)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRateFetcher) Name() string {
	return m.Called().String(0)
}

func TestConvert_Success(t *testing.T) {
	fetcher := new(MockRateFetcher)
	fetcher.On("FetchRate", mock.Anything, money.CAD, money.USD).Return(0.75, nil)
	svc := New(fetcher)

	res, err := svc.Convert(context.Background(), conversion.Request{
		Base:   money.CAD,
		Target: money.USD,
		Amount: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, conversion.Result{ConvertedAmount: 7.5, Rate: 0.75}, res)
	fetcher.AssertExpectations(t)
}

func TestConvert_Deterministic(t *testing.T) {
	fetcher := new(MockRateFetcher)
	fetcher.On("FetchRate", mock.Anything, money.GBP, money.AUD).Return(1.9, nil)
	svc := New(fetcher)
	req := conversion.Request{Base: money.GBP, Target: money.AUD, Amount: 3}

	first, err := svc.Convert(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Convert(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.InDelta(t, 5.7, first.ConvertedAmount, 1e-9)
	fetcher.AssertNumberOfCalls(t, "FetchRate", 2)
}

func TestConvert_FailurePassthrough(t *testing.T) {
	failures := []*conversion.Failure{
		conversion.NewAuthFailure(401),
		conversion.NewRateLimitFailure(),
		conversion.NewHTTPFailure(500),
		conversion.NewMalformedResponseFailure(conversion.MsgMalformedResponse, nil),
		conversion.NewUnknownCurrencyFailure(money.USD),
		conversion.NewNetworkFailure(errors.New("dial tcp: connection refused")),
	}
	for _, want := range failures {
		t.Run(want.Kind.String(), func(t *testing.T) {
			fetcher := new(MockRateFetcher)
			fetcher.On("FetchRate", mock.Anything, money.CAD, money.USD).Return(0.0, want)

			_, err := New(fetcher).Convert(context.Background(), conversion.Request{
				Base: money.CAD, Target: money.USD, Amount: 1,
			})
			var got *conversion.Failure
			require.ErrorAs(t, err, &got)
			assert.Same(t, want, got)
		})
	}
}

func TestConvert_UnexpectedError(t *testing.T) {
	cause := errors.New("something odd")
	fetcher := new(MockRateFetcher)
	fetcher.On("FetchRate", mock.Anything, money.CAD, money.USD).Return(0.0, cause)

	_, err := New(fetcher).Convert(context.Background(), conversion.Request{
		Base: money.CAD, Target: money.USD, Amount: 1,
	})
	assert.ErrorIs(t, err, conversion.ErrUnexpected)
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, conversion.MsgUnexpected)
}

func TestConvert_NoFetcher(t *testing.T) {
	_, err := New(nil).Convert(context.Background(), conversion.Request{
		Base: money.CAD, Target: money.USD, Amount: 1,
	})
	assert.ErrorIs(t, err, conversion.ErrUnexpected)
}

func TestConvertDraft(t *testing.T) {
	fetcher := new(MockRateFetcher)
	fetcher.On("FetchRate", mock.Anything, money.CAD, money.USD).Return(0.75, nil)
	svc := New(fetcher)

	req, res, err := svc.ConvertDraft(context.Background(), conversion.Draft{
		Base: "CAD", Target: "USD", Amount: "10",
	})
	require.NoError(t, err)
	assert.Equal(t, conversion.Request{Base: money.CAD, Target: money.USD, Amount: 10}, req)
	assert.InDelta(t, 7.5, res.ConvertedAmount, 1e-12)
}

func TestConvertDraft_InvalidSkipsFetch(t *testing.T) {
	fetcher := new(MockRateFetcher)
	svc := New(fetcher)

	_, _, err := svc.ConvertDraft(context.Background(), conversion.Draft{
		Base: "CAD", Target: "USD", Amount: "0",
	})
	assert.ErrorIs(t, err, conversion.ErrValidation)
	assert.EqualError(t, err, conversion.MsgInvalidAmount)
	fetcher.AssertNotCalled(t, "FetchRate", mock.Anything, mock.Anything, mock.Anything)
}

func TestConvertDraft_FailureKeepsRequest(t *testing.T) {
	fetcher := new(MockRateFetcher)
	fetcher.On("FetchRate", mock.Anything, money.CAD, money.USD).
		Return(0.0, conversion.NewUnknownCurrencyFailure(money.USD))

	req, res, err := New(fetcher).ConvertDraft(context.Background(), conversion.DefaultDraft())
	assert.ErrorIs(t, err, conversion.ErrUnknownCurrency)
	assert.Equal(t, money.CAD, req.Base)
	assert.Zero(t, res)
}

func TestValidate_Idempotent(t *testing.T) {
	svc := New(new(MockRateFetcher))
	draft := conversion.Draft{Base: "us", Target: "USD", Amount: "1"}

	_, err1 := svc.Validate(draft)
	_, err2 := svc.Validate(draft)
	assert.Equal(t, err1, err2)
	assert.EqualError(t, err1, conversion.MsgInvalidBase)
}

func TestSwap(t *testing.T) {
	svc := New(new(MockRateFetcher))
	got := svc.Swap(conversion.Draft{Base: "CAD", Target: "USD", Amount: "5"})
	assert.Equal(t, conversion.Draft{Base: "USD", Target: "CAD", Amount: "5"}, got)
}
