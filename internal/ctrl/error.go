package ctrl

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a resource already exists.
var ErrAlreadyExists = errors.New("already exists")

var ErrPhoneNotVerified = errors.New("phone not verified")
var ErrOtpInvalid = errors.New("otp is not valid")
var ErrOtpExpired = errors.New("otp expired")
var ErrRefreshTokenInvalid = errors.New("refresh token invalid")
var ErrRefreshTokenExpired = errors.New("refresh token expired")
var ErrDeviceAlreadyPaired = errors.New("device is already paired to another user")
var ErrDeviceNotFound = errors.New("device not found")
var ErrUnauthorizedDeviceAccess = errors.New("not authorized to access this device")
var ErrForbidden = errors.New("forbidden")

// AccountLockedError rejects a login while the lock window is still open.
type AccountLockedError struct {
	UnlockAt time.Time
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account locked until %s", e.UnlockAt.Format(time.RFC3339))
}

// OtpRateLimitedError rejects OTP generation while the rate-limit marker is
// still live.
type OtpRateLimitedError struct {
	RetryAfter time.Duration
}

func (e *OtpRateLimitedError) Error() string {
	return fmt.Sprintf("otp rate limited, retry after %s", e.RetryAfter)
}
