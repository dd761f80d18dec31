package code

// HTTP status codes.
const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown server error.
	ErrUnknown
	// ErrBind - 400: request body could not be bound.
	ErrBind
	// ErrValidation - 400: request failed schema validation.
	ErrValidation
	// ErrTokenMissing - 401: no token supplied.
	ErrTokenMissing
	// ErrTokenInvalid - 401: token malformed, expired or badly signed.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// Admin account error codes (101xxx).
const (
	// ErrAdminNotFound - 404: admin account does not exist.
	ErrAdminNotFound int = iota + 101000
	// ErrAdminAlreadyExists - 400: username or email already taken.
	ErrAdminAlreadyExists
	// ErrInvalidCredentials - 401: login rejected. Deliberately covers both
	// unknown username and wrong password.
	ErrInvalidCredentials
	// ErrLastAdmin - 403: the last remaining account cannot be deleted.
	ErrLastAdmin
)

// Booking error codes (102xxx).
const (
	// ErrBookingNotFound - 404: booking does not exist.
	ErrBookingNotFound int = iota + 102000
)

// Contact error codes (103xxx).
const (
	// ErrContactNotFound - 404: contact message does not exist.
	ErrContactNotFound int = iota + 103000
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
)
