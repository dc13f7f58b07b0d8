package domain

import "errors"

// Category sentinels for domain-level error discrimination. Services wrap
// these so callers can branch without string matching.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
)

// Error couples a client-facing message with a category sentinel. The
// message is what ends up in the response envelope; the category is what
// errors.Is answers to.
type Error struct {
	Category error
	Message  string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Category }

// Well-known failures with their exact client-facing messages.
var (
	ErrMissingDetails       = &Error{ErrBadRequest, "Missing Details"}
	ErrCredentialsRequired  = &Error{ErrBadRequest, "Email and password are required"}
	ErrUserExists           = &Error{ErrConflict, "User already exist"}
	ErrInvalidEmail         = &Error{ErrUnauthorized, "Invalid email"}
	ErrInvalidPassword      = &Error{ErrUnauthorized, "Invalid password"}
	ErrAlreadyVerified      = &Error{ErrConflict, "Account already verified"}
	ErrUserNotFound         = &Error{ErrNotFound, "User not found"}
	ErrInvalidOTP           = &Error{ErrUnauthorized, "Invalid OTP"}
	ErrOTPExpired           = &Error{ErrUnauthorized, "OTP has expired"}
	ErrNotAuthorized        = &Error{ErrUnauthorized, "Not Authorized. Login Again"}
	ErrOTPDetailsRequired   = &Error{ErrBadRequest, "Missing details"}
	ErrEmailRequired        = &Error{ErrBadRequest, "Email is required"}
	ErrResetDetailsRequired = &Error{ErrBadRequest, "Email, OTP, and new password are required"}
)
