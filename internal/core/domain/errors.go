package domain

import "errors"

// Identity operations.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRegistration = errors.New("invalid registration")
	ErrInvalidRole         = errors.New("invalid role")
	ErrAccountExists       = errors.New("account already exists")
	ErrAccountNotFound     = errors.New("account not found")
)

// ErrStorageRead marks a durable session record that could not be decoded.
// The session store recovers from it locally and reports the visitor as anonymous.
var ErrStorageRead = errors.New("session storage read failure")

var ErrForbidden = errors.New("access forbidden")

// Registries.
var (
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrPaymentMethodInactive = errors.New("payment method is inactive")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrFavoriteNotFound      = errors.New("favorite not found")
	ErrInvalidFavorite       = errors.New("invalid favorite")
)
