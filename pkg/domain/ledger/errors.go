package ledger

import "errors"

var (
	// ErrAmountMustBePositive is returned when an operation amount is zero
	// or negative.
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrInvalidDescription is returned when a movement is created without
	// a description.
	ErrInvalidDescription = errors.New("description must not be empty")

	// ErrInvalidMovementKind is returned when a movement kind is not one of
	// the enumerated kinds.
	ErrInvalidMovementKind = errors.New("invalid movement kind")

	// ErrInsufficientFunds is returned when a debit exceeds the account
	// balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountNotFound is returned when an account or transfer
	// counterparty cannot be found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSameAccountTransfer is returned when a transfer names the same
	// account as source and destination.
	ErrSameAccountTransfer = errors.New("cannot transfer to own account")

	// ErrEmailAlreadyRegistered is returned when an account is opened with
	// an email that is already taken.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrAccountNumberTaken is returned when a generated account number
	// collides with an existing one.
	ErrAccountNumberTaken = errors.New("account number already taken")

	// ErrAccountHasHistory is returned when closing an account that still
	// owns movements, credits or loans.
	ErrAccountHasHistory = errors.New("account has recorded history")

	// ErrNilAccount is returned when a nil account is passed to an
	// operation.
	ErrNilAccount = errors.New("nil account")

	// ErrInvalidCredentials is returned on a failed login. It deliberately
	// does not distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
