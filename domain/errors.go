package domain

import (
	"errors"
	"fmt"
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
	ErrSessionCorrupt  = errors.New("stored session is corrupt")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Authentication errors
var (
	ErrPhoneInvalid  = errors.New("phone number must be 10 digits")
	ErrOTPInvalid    = errors.New("otp must be 6 digits")
	ErrLoginRejected = errors.New("login rejected by platform")
)

// Purchase-flow errors
var (
	ErrNoPackageSelected = errors.New("no package selected")
	ErrPackageInvalid    = errors.New("invalid package selection")
	ErrCouponInvalid     = errors.New("invalid coupon code")
	ErrMethodInvalid     = errors.New("unsupported payment method")
)

// Creator-onboarding errors
var (
	ErrApplicationIncomplete = errors.New("registration form is incomplete")
	ErrApplicantExists       = errors.New("Creator applicant already exists.")
)

// Upstream platform errors
var (
	ErrPlatformUnavailable = errors.New("platform service unavailable")
	ErrVerificationFailed  = errors.New("payment verification failed")
)

// PlatformError carries a server-reported business error so handlers can
// surface the platform's own message when one is available.
type PlatformError struct {
	StatusCode int
	Message    string
}

func (e *PlatformError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("platform request failed with status %d", e.StatusCode)
}
