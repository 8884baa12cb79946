package currency_test

import (
	"net/http"
	"testing"

	"github.com/amirasaad/fxconvert/pkg/money"
	"github.com/amirasaad/fxconvert/webapi/testutils"
	"github.com/stretchr/testify/suite"
)

type CurrencyTestSuite struct {
	testutils.E2ETestSuite
}

func TestCurrencyTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyTestSuite))
}

func (s *CurrencyTestSuite) TestListSupportedCurrencies() {
	resp := s.MakeRequest(http.MethodGet, "/api/currencies", "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Data []money.Currency `json:"data"`
	}
	s.DecodeJSON(resp, &body)
	s.Equal(money.Supported(), body.Data)
}

func (s *CurrencyTestSuite) TestGetCurrency() {
	resp := s.MakeRequest(http.MethodGet, "/api/currencies/GBP", "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Data money.Currency `json:"data"`
	}
	s.DecodeJSON(resp, &body)
	s.Equal("British Pound", body.Data.Name)
}

func (s *CurrencyTestSuite) TestGetCurrency_Errors() {
	resp := s.MakeRequest(http.MethodGet, "/api/currencies/gbp", "")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck

	resp = s.MakeRequest(http.MethodGet, "/api/currencies/EUR", "")
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck
}
