package services

import "errors"

// Error kinds surfaced to the HTTP layer. Controllers map ErrInvalidInput and
// ErrInvalidDate to 400, ErrNotFound to 404 and everything else to 500.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidDate  = errors.New("invalid date")
)
