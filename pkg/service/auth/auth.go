// Package auth implements the authentication capability the ledger core
// consumes: given credentials, return an authenticated identity or
// nothing. JWT is the only strategy shipped; the interface keeps the
// door open.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/andeanbank/corebank/pkg/config"
	"github.com/andeanbank/corebank/pkg/domain/ledger"
	"github.com/andeanbank/corebank/pkg/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Strategy abstracts how an identity is established and serialized.
type Strategy interface {
	Login(ctx context.Context, email, password string) (*ledger.Account, error)
	GenerateToken(ctx context.Context, a *ledger.Account) (string, error)
}

// Service wraps a Strategy with logging.
type Service struct {
	strategy Strategy
	logger   *slog.Logger
}

// New creates an auth Service using the given strategy.
func New(strategy Strategy, logger *slog.Logger) *Service {
	return &Service{strategy: strategy, logger: logger}
}

// NewWithJWT creates an auth Service with the JWT strategy.
func NewWithJWT(deps config.Deps) *Service {
	return New(NewJWTStrategy(deps.Uow, deps.Cfg.Jwt, deps.Logger), deps.Logger)
}

// Login authenticates an email/password pair.
func (s *Service) Login(ctx context.Context, email, password string) (a *ledger.Account, err error) {
	log := s.logger.With("operation", "Login", "email", email)
	a, err = s.strategy.Login(ctx, email, password)
	if err != nil {
		log.Warn("login failed", "error", err)
		return
	}
	log.Info("login successful", "accountID", a.ID)
	return
}

// GenerateToken serializes an authenticated identity.
func (s *Service) GenerateToken(ctx context.Context, a *ledger.Account) (string, error) {
	token, err := s.strategy.GenerateToken(ctx, a)
	if err != nil {
		s.logger.Error("token generation failed", "accountID", a.ID, "error", err)
		return "", err
	}
	return token, nil
}

// JWTStrategy authenticates against the account directory and issues
// HS256 tokens.
type JWTStrategy struct {
	uow    repository.UnitOfWork
	cfg    config.Jwt
	logger *slog.Logger
}

// NewJWTStrategy creates a JWTStrategy.
func NewJWTStrategy(uow repository.UnitOfWork, cfg config.Jwt, logger *slog.Logger) *JWTStrategy {
	return &JWTStrategy{uow: uow, cfg: cfg, logger: logger}
}

// Login implements Strategy. An unknown email and a wrong password are
// indistinguishable to the caller.
func (s *JWTStrategy) Login(ctx context.Context, email, password string) (*ledger.Account, error) {
	var acct *ledger.Account
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acct, err = accounts.GetByEmail(email)
		return err
	})
	if err != nil {
		if errors.Is(err, ledger.ErrAccountNotFound) {
			return nil, ledger.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return nil, ledger.ErrInvalidCredentials
	}
	return acct, nil
}

// GenerateToken implements Strategy.
func (s *JWTStrategy) GenerateToken(_ context.Context, a *ledger.Account) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["account_id"] = a.ID.String()
	claims["email"] = a.Email
	claims["role"] = string(a.Role)
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	return token.SignedString([]byte(s.cfg.Secret))
}

// CurrentAccountID extracts the authenticated account id from a parsed
// token.
func CurrentAccountID(token *jwt.Token) (uuid.UUID, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("unexpected claims type")
	}
	raw, ok := claims["account_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing account_id claim")
	}
	return uuid.Parse(raw)
}

// IsAdmin reports whether a parsed token carries the admin role.
func IsAdmin(token *jwt.Token) bool {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return ledger.Role(role) == ledger.RoleAdmin
}
