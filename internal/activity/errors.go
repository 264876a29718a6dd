package activity

import "errors"

var (
	ErrEmptyTitle     = errors.New("title can't be empty")
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrMissingDate    = errors.New("start date is required")
	ErrBudgetExceeded = errors.New("monthly budget exceeded")
	ErrNotFound       = errors.New("activity not found")
)
