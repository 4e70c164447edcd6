package entities

import "errors"

// Domain errors
var (
	// Scratch store errors
	ErrUploadNotFound    = errors.New("upload not found")
	ErrInvalidUploadName = errors.New("invalid upload name")
)
