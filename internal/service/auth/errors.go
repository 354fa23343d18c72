package auth

import "errors"

var (
	ErrInvalidPhone        = errors.New("invalid phone number format")
	ErrInvalidNationalCode = errors.New("national code must be exactly 10 digits")
	ErrNationalCodeExists  = errors.New("national code already registered to another account")
	ErrOTPExpired          = errors.New("OTP has expired or does not exist")
	ErrOTPInvalid          = errors.New("OTP code is incorrect")
	ErrOTPMaxAttempts      = errors.New("too many incorrect OTP attempts")
	ErrAccountSuspended    = errors.New("account is suspended")
	ErrUserNotFound        = errors.New("user not found")
	ErrSessionNotFound     = errors.New("session not found or expired")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrIdentityMismatch    = errors.New("national code does not match the phone number holder")
	ErrAlreadyApproved     = errors.New("identity already approved")
)
