package domain

import "errors"

var (

	// registration/login errors
	ErrDuplicateUser      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// session errors
	ErrSessionInvalid  = errors.New("session invalid or expired")
	ErrTooManyAttempts = errors.New("too many login attempts")

	// checkout errors
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidPromoCode = errors.New("invalid promo code")
	ErrUnknownVendor    = errors.New("unknown restaurant")
)
