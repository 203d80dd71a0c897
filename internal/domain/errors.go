package domain

import "errors"

var (
	ErrUsage        = errors.New("tickets file path required")
	ErrFileNotFound = errors.New("file not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrNoTickets    = errors.New("no tickets found for route")
)
