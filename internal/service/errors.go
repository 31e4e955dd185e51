package service

import "errors"

var (
	ErrInvalidStatus        = errors.New("invalid status")
	ErrAlreadyApproved      = errors.New("application already approved")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrDuplicateCheckout    = errors.New("idempotent key already used")
	ErrPaymentNotConfigured = errors.New("payment processing not available")
)
