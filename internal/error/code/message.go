package code

var codeMessageMap = map[int]string{
	ErrSuccess:         "success",
	ErrUnknown:         "server error",
	ErrBind:            "invalid request body",
	ErrValidation:      "request validation failed",
	ErrTokenMissing:    "no token, authorization denied",
	ErrTokenInvalid:    "token is not valid",
	ErrTooManyRequests: "too many requests",

	ErrAdminNotFound:      "Admin not found",
	ErrAdminAlreadyExists: "Admin already exists",
	ErrInvalidCredentials: "Invalid credentials",
	ErrLastAdmin:          "cannot delete the last admin account",

	ErrBookingNotFound: "Booking not found",
	ErrContactNotFound: "Contact not found",

	ErrDatabase: "database error",
}

var codeStatusMap = map[int]int{
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenMissing:    StatusUnauthorized,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	ErrAdminNotFound:      StatusNotFound,
	ErrAdminAlreadyExists: StatusBadRequest,
	ErrInvalidCredentials: StatusUnauthorized,
	ErrLastAdmin:          StatusForbidden,

	ErrBookingNotFound: StatusNotFound,
	ErrContactNotFound: StatusNotFound,

	ErrDatabase: StatusInternalServerError,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
