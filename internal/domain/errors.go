package domain

import "errors"

var (
	// ErrNotFound is returned when a photo or processor identity is unknown
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when the caller lacks the required role or ownership
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidTransition is returned when a state machine guard fails,
	// e.g. double-mint or colorizing an already-colorized photo
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrInsufficientPayment is returned when the bound payment is below the configured fee
	ErrInsufficientPayment = errors.New("insufficient payment")

	// ErrAlreadyRegistered is returned when a processor identity registers twice
	ErrAlreadyRegistered = errors.New("processor already registered")

	// ErrReputationOutOfRange is returned when a reputation value falls outside [0,100]
	ErrReputationOutOfRange = errors.New("reputation out of range")

	// ErrInsufficientEscrow is returned when a disbursement would exceed the pooled
	// balance. This is an internal invariant violation, not a user error.
	ErrInsufficientEscrow = errors.New("insufficient escrow")

	// ErrEmptyTreasury is returned when a withdrawal is attempted against a zero pool
	ErrEmptyTreasury = errors.New("treasury is empty")
)
