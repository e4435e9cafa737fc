package atmcore

import "errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrSameAccount         = errors.New("source and destination account are the same")
	ErrInvalidAmount       = errors.New("amount must be positive")
)
