package currency

import (
	"github.com/amirasaad/fxconvert/pkg/money"
	"github.com/amirasaad/fxconvert/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the currency listing endpoints.
func Routes(app *fiber.App) {
	group := app.Group("/api/currencies")
	group.Get("/", ListSupportedCurrencies())
	group.Get("/:code", GetCurrency())
}

// ListSupportedCurrencies returns the currencies offered in pickers.
func ListSupportedCurrencies() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Supported currencies fetched successfully", money.Supported())
	}
}

// GetCurrency returns a supported currency by code.
func GetCurrency() fiber.Handler {
	return func(c *fiber.Ctx) error {
		code, err := money.ParseCode(c.Params("code"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid currency code",
				"Currency code must be a 3-letter uppercase code")
		}
		cur, ok := money.Lookup(code)
		if !ok {
			return common.ErrorResponseJSON(c, fiber.StatusNotFound, "Currency not found", string(code)+" is not a supported currency")
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currency fetched successfully", cur)
	}
}
