package domain

import "errors"

var (
	ErrNotFound         = errors.New("resource not found")
	ErrDuplicateRecord  = errors.New("sleep record already exists for this date")
	ErrNoRecordsInRange = errors.New("no records in range")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrUserBlacklisted  = errors.New("user is blacklisted")
	ErrUserWithdrawn    = errors.New("user account is withdrawn")
)
