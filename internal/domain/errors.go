package domain

import "errors"

var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyCart is returned when checkout is attempted on an empty cart
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInternal is returned when an internal error occurs
	ErrInternal = errors.New("internal error")
)
