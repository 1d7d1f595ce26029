package model

import "errors"

var (
	// Auth errors. ErrInvalidCredentials covers both an unknown username and
	// a wrong password; callers must never disambiguate the two.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Entity errors
	ErrUserNotFound   = errors.New("user not found")
	ErrTicketNotFound = errors.New("ticket not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
