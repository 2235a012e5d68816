package webapi

import (
	"github.com/andeanbank/corebank/pkg/config"
	"github.com/andeanbank/corebank/pkg/currency"
	"github.com/andeanbank/corebank/pkg/domain/ledger"
	"github.com/andeanbank/corebank/pkg/middleware"
	"github.com/andeanbank/corebank/pkg/service/directory"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// OpenAccountRequest is the body for POST /admin/accounts.
type OpenAccountRequest struct {
	FullName       string  `json:"full_name" validate:"required,min=2,max=100"`
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required,min=8"`
	Role           string  `json:"role" validate:"omitempty,oneof=ADMIN USER"`
	Currency       string  `json:"currency" validate:"omitempty,len=3"`
	InitialBalance float64 `json:"initial_balance" validate:"omitempty,gte=0"`
}

// AdminRoutes registers the administrator-only directory endpoints.
func AdminRoutes(app *fiber.App, directorySvc *directory.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Jwt)
	app.Get("/admin/accounts", protected, ListAccounts(directorySvc))
	app.Post("/admin/accounts", protected, OpenAccount(directorySvc))
	app.Get("/admin/accounts/:id", protected, GetAccount(directorySvc))
	app.Delete("/admin/accounts/:id", protected, CloseAccount(directorySvc))
}

// ListAccounts returns a handler serving the full directory with
// per-account movement and facility counts.
// @Summary List all accounts
// @Tags admin
// @Produce json
// @Success 200 {object} Response
// @Failure 403 {object} ProblemDetails
// @Router /admin/accounts [get]
// @Security BearerAuth
func ListAccounts(svc *directory.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := requireAdmin(c); !ok {
			return err
		}
		summaries, err := svc.List(c.Context())
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		out := make([]*AccountSummaryDTO, 0, len(summaries))
		for _, s := range summaries {
			out = append(out, toAccountSummaryDTO(s))
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Accounts retrieved", out)
	}
}

// OpenAccount returns a handler opening a new account, optionally seeded
// with an initial deposit.
// @Summary Open a new account
// @Tags admin
// @Accept json
// @Produce json
// @Param request body OpenAccountRequest true "Account"
// @Success 201 {object} Response
// @Failure 400 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails "Email already registered"
// @Router /admin/accounts [post]
// @Security BearerAuth
func OpenAccount(svc *directory.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := requireAdmin(c); !ok {
			return err
		}
		req, err := BindAndValidate[OpenAccountRequest](c)
		if err != nil {
			return err
		}
		acct, err := svc.Open(c.Context(), directory.OpenParams{
			FullName:       req.FullName,
			Email:          req.Email,
			Password:       req.Password,
			Role:           ledger.Role(req.Role),
			Currency:       currency.Code(req.Currency),
			InitialBalance: req.InitialBalance,
		})
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Account opened", toAccountDTO(acct))
	}
}

// GetAccount returns a handler serving a single account by id.
// @Summary Get an account
// @Tags admin
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} Response
// @Failure 404 {object} ProblemDetails
// @Router /admin/accounts/{id} [get]
// @Security BearerAuth
func GetAccount(svc *directory.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := requireAdmin(c); !ok {
			return err
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account id", err.Error())
		}
		acct, err := svc.Get(c.Context(), id)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Account retrieved", toAccountDTO(acct))
	}
}

// CloseAccount returns a handler closing an account. Accounts with
// movements, credits or loans cannot be closed.
// @Summary Close an account
// @Tags admin
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} Response
// @Failure 404 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails "Account has history"
// @Router /admin/accounts/{id} [delete]
// @Security BearerAuth
func CloseAccount(svc *directory.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := requireAdmin(c); !ok {
			return err
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account id", err.Error())
		}
		if err := svc.Close(c.Context(), id); err != nil {
			return DomainErrorJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Account closed", nil)
	}
}
