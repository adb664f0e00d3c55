package models

import (
	"errors"
)

var (
	ErrNoRecord              = errors.New("models: no matching record found")
	ErrInvalidCredentials    = errors.New("models: invalid credentials")
	ErrDuplicateEmail        = errors.New("models: duplicate email")
	ErrUserNotFound          = errors.New("models: user not found")
	ErrEventNotFound         = errors.New("event not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrConcertNotFound       = errors.New("concert not found")
	ErrArtistNotFound        = errors.New("artist not found")
	ErrSponsorNotFound       = errors.New("sponsor not found")
	ErrProductNotFound       = errors.New("product not found")
	ErrAccommodationNotFound = errors.New("accommodation not found")
	ErrRegistrationNotFound  = errors.New("registration not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrDuplicateRegistration = errors.New("user is already registered for this event")
	ErrRegistrationClosed    = errors.New("registration is closed for this event")
)

// Payment handshake errors.
var (
	ErrInvalidOrderRequest = errors.New("product_id, size and quantity are required")
	ErrProductPriceMissing = errors.New("product has no price")
	ErrInvalidSignature    = errors.New("invalid signature")
	ErrGatewayUnconfigured = errors.New("payment gateway is not configured")
	ErrDuplicatePayment    = errors.New("payment already recorded")
)
