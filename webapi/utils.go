package webapi

import (
	"errors"

	"github.com/andeanbank/corebank/pkg/domain/ledger"
	"github.com/andeanbank/corebank/pkg/domain/money"
	"github.com/andeanbank/corebank/pkg/service/auth"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Response is the standard envelope for success cases.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseJSON writes an RFC 9457 problem response.
func ErrorResponseJSON(c *fiber.Ctx, status int, title string, detail any) error {
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
	pd.Instance = c.OriginalURL()
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(pd)
}

// DomainErrorJSON maps a domain error onto the right status code and
// writes the problem response.
func DomainErrorJSON(c *fiber.Ctx, err error) error {
	return ErrorResponseJSON(c, ErrorToStatusCode(err), err.Error(), nil)
}

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ledger.ErrAmountMustBePositive),
		errors.Is(err, ledger.ErrInvalidDescription),
		errors.Is(err, ledger.ErrInvalidMovementKind),
		errors.Is(err, ledger.ErrSameAccountTransfer),
		errors.Is(err, money.ErrInvalidCurrencyCode),
		errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, money.ErrCurrencyMismatch):
		return fiber.StatusBadRequest
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrEmailAlreadyRegistered),
		errors.Is(err, ledger.ErrAccountNumberTaken),
		errors.Is(err, ledger.ErrAccountHasHistory):
		return fiber.StatusConflict
	case errors.Is(err, ledger.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body into T and validates it with
// go-playground/validator. On failure it writes the error response and
// returns a non-nil error.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := validate.Struct(input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
	}
	return &input, nil
}

var validate = validator.New()

// requestToken returns the parsed JWT the auth middleware stored.
func requestToken(c *fiber.Ctx) (*jwt.Token, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	return token, ok
}

// accountFromPath parses the :id route parameter and enforces that the
// caller either owns that account or is an administrator.
func accountFromPath(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account id", err.Error())
	}
	token, ok := requestToken(c)
	if !ok {
		return uuid.Nil, ErrorResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", "missing user context")
	}
	if auth.IsAdmin(token) {
		return id, nil
	}
	callerID, err := auth.CurrentAccountID(token)
	if err != nil || callerID != id {
		return uuid.Nil, ErrorResponseJSON(c, fiber.StatusForbidden, "Forbidden", "not the account owner")
	}
	return id, nil
}

// requireAdmin rejects callers without the admin role.
func requireAdmin(c *fiber.Ctx) (ok bool, err error) {
	token, found := requestToken(c)
	if !found || !auth.IsAdmin(token) {
		return false, ErrorResponseJSON(c, fiber.StatusForbidden, "Forbidden", "administrator role required")
	}
	return true, nil
}
