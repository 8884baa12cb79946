// Package common holds the response envelopes and helpers shared by the web
// handlers.
package common

import (
	"errors"

	"github.com/amirasaad/fxconvert/pkg/conversion"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

// SuccessResponseJSON writes a Response envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseJSON returns a response following RFC 9457 Problem Details
func ErrorResponseJSON(
	c *fiber.Ctx,
	status int,
	title string,
	detail any,
) error {
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
	}
	if detail != nil {
		if s, ok := detail.(string); ok {
			pd.Detail = s
		} else {
			pd.Errors = detail
		}
	}
	return writeProblem(c, pd)
}

// FailureResponseJSON renders a conversion failure. The detail is the
// user-displayable failure message and the type names the failure kind.
func FailureResponseJSON(c *fiber.Ctx, err error) error {
	f := conversion.AsFailure(err)
	status := FailureToStatusCode(f)
	return writeProblem(c, ProblemDetails{
		Type:   "urn:fxconvert:conversion:" + f.Kind.String(),
		Title:  titles[f.Kind],
		Status: status,
		Detail: f.Message,
	})
}

func writeProblem(c *fiber.Ctx, pd ProblemDetails) error {
	pd.Instance = c.OriginalURL()
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(pd.Status).JSON(pd, "application/problem+json")
}

var titles = map[conversion.Kind]string{
	conversion.KindValidation:        "Invalid conversion request",
	conversion.KindAuth:              "Exchange rate provider rejected credentials",
	conversion.KindRateLimit:         "Exchange rate provider rate limit exceeded",
	conversion.KindHTTP:              "Exchange rate provider error",
	conversion.KindMalformedResponse: "Malformed exchange rate response",
	conversion.KindUnknownCurrency:   "Unknown currency",
	conversion.KindNetwork:           "Exchange rate provider unreachable",
	conversion.KindUnexpected:        "Internal Server Error",
}

// FailureToStatusCode maps conversion failures to HTTP status codes.
// Upstream problems are reported as gateway errors, not relayed verbatim.
func FailureToStatusCode(f *conversion.Failure) int {
	switch f.Kind {
	case conversion.KindValidation:
		return fiber.StatusBadRequest
	case conversion.KindUnknownCurrency:
		return fiber.StatusUnprocessableEntity
	case conversion.KindAuth, conversion.KindHTTP, conversion.KindMalformedResponse:
		return fiber.StatusBadGateway
	case conversion.KindRateLimit:
		return fiber.StatusServiceUnavailable
	case conversion.KindNetwork:
		return fiber.StatusGatewayTimeout
	default:
		return fiber.StatusInternalServerError
	}
}

var validate = validator.New()

// BindAndValidate parses the request body and validates it using go-playground/validator.
// Returns a pointer to the struct (populated), or writes an error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	return validated(c, &input)
}

// BindQueryAndValidate is BindAndValidate for query string parameters.
func BindQueryAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.QueryParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid query parameters", err.Error())
	}
	return validated(c, &input)
}

func validated[T any](c *fiber.Ctx, input *T) (*T, error) {
	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
			return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", fields)
		}
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
	}
	return input, nil
}
