package webapi

import (
	"github.com/andeanbank/corebank/pkg/service/auth"
	"github.com/gofiber/fiber/v2"
)

// LoginRequest carries the credentials for /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthRoutes registers the authentication endpoints.
func AuthRoutes(app *fiber.App, authSvc *auth.Service) {
	app.Post("/auth/login", Login(authSvc))
}

// Login returns a handler exchanging credentials for a signed token.
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} Response
// @Failure 401 {object} ProblemDetails "Invalid credentials"
// @Router /auth/login [post]
func Login(svc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := BindAndValidate[LoginRequest](c)
		if err != nil {
			return err
		}
		acct, err := svc.Login(c.Context(), req.Email, req.Password)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		token, err := svc.GenerateToken(c.Context(), acct)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Login successful", fiber.Map{
			"token":   token,
			"account": toAccountDTO(acct),
		})
	}
}
