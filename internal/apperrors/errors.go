package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the resource is not in a state that allows the operation.
var ErrConflict = errors.New("conflict")

// ErrUnprocessable indicates a well-formed request that cannot be honoured with current balances or limits.
var ErrUnprocessable = errors.New("unprocessable request")

// classifiedError is a specific failure that also matches its broader class with errors.Is.
type classifiedError struct {
	msg   string
	class error
}

func (e *classifiedError) Error() string { return e.msg }
func (e *classifiedError) Unwrap() error { return e.class }

func classified(class error, msg string) error {
	return &classifiedError{msg: msg, class: class}
}

// Rate and quote issuance failures.
var (
	ErrInvalidAmount           = classified(ErrValidation, "amount must be greater than zero")
	ErrUnsupportedCurrency     = classified(ErrValidation, "unsupported currency")
	ErrNoActiveRate            = classified(ErrValidation, "no active exchange rate")
	ErrAmountBelowMinimum      = classified(ErrValidation, "amount below minimum")
	ErrAmountAboveMaximum      = classified(ErrValidation, "amount above maximum")
	ErrAmountTooSmallAfterFees = classified(ErrValidation, "amount too small after fees")
	ErrAmbiguousRate           = classified(ErrConflict, "multiple active exchange rates for currency pair")
	ErrOverlappingRate         = classified(ErrConflict, "an active exchange rate already covers this window")
)

// Exchange execution failures.
var (
	ErrQuoteNotFound       = classified(ErrNotFound, "quote not found")
	ErrQuoteUnauthorized   = classified(ErrForbidden, "unauthorized: quote belongs to another user")
	ErrQuoteNotActive      = classified(ErrConflict, "quote is not active")
	ErrQuoteExpired        = classified(ErrConflict, "quote has expired")
	ErrQuoteConsumed       = classified(ErrConflict, "quote was consumed by a concurrent execution")
	ErrWalletNotFound      = classified(ErrNotFound, "wallet not found for currency")
	ErrWalletNotActive     = classified(ErrConflict, "wallet is not active")
	ErrInsufficientBalance = classified(ErrUnprocessable, "insufficient balance")
	ErrLimitExceeded       = classified(ErrUnprocessable, "transaction limit exceeded")
)

// Authentication failures.
var (
	ErrInvalidCredentials  = classified(ErrUnauthorized, "invalid email or password")
	ErrRefreshTokenExpired = classified(ErrUnauthorized, "refresh token expired")
	ErrResetTokenInvalid   = classified(ErrUnauthorized, "password reset token is invalid or expired")
)

// AppError carries an HTTP status alongside a client-safe message.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError creates an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrConflict)
}

// HTTPStatus maps an error onto the status code its class calls for.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
