package usecase

import "errors"

// Service errors, mapped to HTTP statuses at the handler boundary.
var (
	// ErrUserExists: a verified account with that email already exists.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidOTP covers missing, mismatched and expired codes alike,
	// so callers cannot probe which accounts have a pending code.
	ErrInvalidOTP = errors.New("invalid or expired OTP")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")

	// ErrInvalidID: a path parameter is not a well-formed UUID.
	ErrInvalidID = errors.New("invalid ID")

	// ErrTooManyRequests: reset-OTP resend attempted inside the cooldown.
	ErrTooManyRequests = errors.New("please wait before retrying")

	// ErrForbidden: caller is neither the resource owner nor allowed here.
	ErrForbidden = errors.New("access denied")
)
