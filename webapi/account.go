package webapi

import (
	"github.com/andeanbank/corebank/pkg/config"
	"github.com/andeanbank/corebank/pkg/domain/ledger"
	"github.com/andeanbank/corebank/pkg/middleware"
	"github.com/andeanbank/corebank/pkg/service/directory"
	ledgersvc "github.com/andeanbank/corebank/pkg/service/ledger"
	"github.com/gofiber/fiber/v2"
)

// MovementRequest is the body for deposits, withdrawals, payments and
// recharges.
type MovementRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required,min=1,max=255"`
}

// TransferRequest is the body for transfers to another account number.
type TransferRequest struct {
	ToAccountNumber string  `json:"to_account_number" validate:"required,len=12,numeric"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Description     string  `json:"description" validate:"omitempty,max=255"`
}

// AccountRoutes registers the customer-facing account endpoints. All of
// them require authentication; :id must be the caller's own account
// unless the caller is an administrator.
//
// Routes:
//   - GET    /account/:id/balance      : current balance.
//   - GET    /account/:id/movements    : ledger movements, newest first.
//   - GET    /account/:id/certificate  : clearance certificate.
//   - GET    /account/:id/facilities   : credits and loans.
//   - POST   /account/:id/deposit      : credit funds.
//   - POST   /account/:id/withdraw     : debit funds.
//   - POST   /account/:id/payment      : pay a bill.
//   - POST   /account/:id/recharge     : top up a phone.
//   - POST   /account/:id/transfer     : move funds to another account.
func AccountRoutes(
	app *fiber.App,
	ledgerSvc *ledgersvc.Service,
	directorySvc *directory.Service,
	cfg *config.App,
) {
	protected := middleware.JwtProtected(cfg.Jwt)
	app.Get("/account/:id/balance", protected, GetBalance(ledgerSvc))
	app.Get("/account/:id/movements", protected, ListMovements(ledgerSvc))
	app.Get("/account/:id/certificate", protected, GetCertificate(directorySvc))
	app.Get("/account/:id/facilities", protected, ListFacilities(directorySvc))
	app.Post("/account/:id/deposit", protected, ApplyMovement(ledgerSvc, ledger.KindDeposit))
	app.Post("/account/:id/withdraw", protected, ApplyMovement(ledgerSvc, ledger.KindWithdrawal))
	app.Post("/account/:id/payment", protected, ApplyMovement(ledgerSvc, ledger.KindPayment))
	app.Post("/account/:id/recharge", protected, ApplyMovement(ledgerSvc, ledger.KindRecharge))
	app.Post("/account/:id/transfer", protected, Transfer(ledgerSvc))
}

// GetBalance returns a handler serving the current account balance.
// @Summary Get account balance
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} Response
// @Failure 404 {object} ProblemDetails
// @Router /account/{id}/balance [get]
// @Security BearerAuth
func GetBalance(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := accountFromPath(c)
		if err != nil {
			return err
		}
		balance, err := svc.GetBalance(c.Context(), id)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Balance retrieved", fiber.Map{
			"balance":  balance.AmountFloat(),
			"currency": balance.Currency().String(),
		})
	}
}

// ListMovements returns a handler serving the account's ledger, newest
// first.
// @Summary List account movements
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} Response
// @Failure 404 {object} ProblemDetails
// @Router /account/{id}/movements [get]
// @Security BearerAuth
func ListMovements(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := accountFromPath(c)
		if err != nil {
			return err
		}
		movements, err := svc.ListMovements(c.Context(), id)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Movements retrieved", toMovementDTOs(movements))
	}
}

// GetCertificate returns a handler issuing the clearance certificate.
// @Summary Get clearance certificate
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} Response
// @Failure 404 {object} ProblemDetails
// @Router /account/{id}/certificate [get]
// @Security BearerAuth
func GetCertificate(svc *directory.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := accountFromPath(c)
		if err != nil {
			return err
		}
		cert, err := svc.Certificate(c.Context(), id)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Certificate issued", toCertificateDTO(cert))
	}
}

// ListFacilities returns a handler serving the account's credits and
// loans.
// @Summary List account credits and loans
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} Response
// @Failure 404 {object} ProblemDetails
// @Router /account/{id}/facilities [get]
// @Security BearerAuth
func ListFacilities(svc *directory.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := accountFromPath(c)
		if err != nil {
			return err
		}
		credits, loans, err := svc.Facilities(c.Context(), id)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Facilities retrieved", fiber.Map{
			"credits": toCreditDTOs(credits),
			"loans":   toLoanDTOs(loans),
		})
	}
}

// ApplyMovement returns a handler applying a single-account movement of
// the given kind.
// @Summary Apply a single-account movement
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body MovementRequest true "Movement"
// @Success 201 {object} Response
// @Failure 400 {object} ProblemDetails
// @Failure 422 {object} ProblemDetails "Insufficient funds"
// @Router /account/{id}/deposit [post]
// @Security BearerAuth
func ApplyMovement(svc *ledgersvc.Service, kind ledger.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := accountFromPath(c)
		if err != nil {
			return err
		}
		req, err := BindAndValidate[MovementRequest](c)
		if err != nil {
			return err
		}
		mv, err := svc.ApplyMovement(c.Context(), id, kind, req.Amount, req.Description)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Movement applied", toMovementDTO(mv))
	}
}

// Transfer returns a handler moving funds to another account, resolved
// by its external account number before the orchestrator runs.
// @Summary Transfer funds to another account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Source account ID"
// @Param request body TransferRequest true "Transfer"
// @Success 201 {object} Response
// @Failure 400 {object} ProblemDetails "Self transfer or bad amount"
// @Failure 404 {object} ProblemDetails "Destination account not found"
// @Failure 422 {object} ProblemDetails "Insufficient funds"
// @Router /account/{id}/transfer [post]
// @Security BearerAuth
func Transfer(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := accountFromPath(c)
		if err != nil {
			return err
		}
		req, err := BindAndValidate[TransferRequest](c)
		if err != nil {
			return err
		}
		dest, err := svc.LookupCounterparty(c.Context(), req.ToAccountNumber)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		tr, err := svc.Transfer(c.Context(), id, dest.ID, req.Amount, req.Description)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Transfer completed", toTransferDTO(tr))
	}
}
