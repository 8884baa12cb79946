package conversion

import (
	"log/slog"

	"github.com/amirasaad/fxconvert/pkg/conversion"
	conversionsvc "github.com/amirasaad/fxconvert/pkg/service/conversion"
	"github.com/amirasaad/fxconvert/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the conversion endpoints.
func Routes(app *fiber.App, svc *conversionsvc.Service, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("handler", "conversion")

	group := app.Group("/api/conversions")
	group.Post("/", Convert(svc, logger))
	group.Get("/", ConvertFromQuery(svc, logger))
	group.Post("/swap", Swap(svc))
}

// Convert returns a handler converting the JSON body.
func Convert(svc *conversionsvc.Service, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ConvertRequest](c)
		if input == nil {
			return err // error response already written
		}
		return convert(c, svc, logger, input.Draft())
	}
}

// ConvertFromQuery returns a handler converting base, target and amount
// taken from the query string.
func ConvertFromQuery(svc *conversionsvc.Service, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindQueryAndValidate[ConvertQuery](c)
		if input == nil {
			return err // error response already written
		}
		return convert(c, svc, logger, input.Draft())
	}
}

// Swap returns a handler exchanging base and target of the posted draft.
// Nothing is converted; clients drop any result they hold.
func Swap(svc *conversionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ConvertRequest](c)
		if input == nil {
			return err // error response already written
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currencies swapped", svc.Swap(input.Draft()))
	}
}

func convert(c *fiber.Ctx, svc *conversionsvc.Service, logger *slog.Logger, draft conversion.Draft) error {
	log := logger.With("request_id", c.Locals("requestid"), "base", draft.Base, "target", draft.Target)

	req, res, err := svc.ConvertDraft(c.UserContext(), draft)
	if err != nil {
		f := conversion.AsFailure(err)
		if f.Kind == conversion.KindValidation {
			log.Debug("Conversion rejected", "reason", f.Message)
		} else {
			log.Warn("Conversion failed", "kind", f.Kind, "error", f.Message)
		}
		return common.FailureResponseJSON(c, f)
	}

	log.Info("Conversion completed", "amount", req.Amount, "rate", res.Rate)
	return common.SuccessResponseJSON(c, fiber.StatusOK, "Conversion successful", ToResponse(draft, req, res))
}
