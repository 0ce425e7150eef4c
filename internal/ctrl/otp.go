package ctrl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"

	"github.com/almousleck/glasslink/internal/cache"
	"github.com/opentracing/opentracing-go"
)

const (
	otpCodeKey  = "otp:code:%v"
	otpLimitKey = "otp:limit:%v"
)

// generateOtp produces a fresh 6-digit code for the phone. The code key is
// overwritten in place, so any previously issued code dies immediately. The
// rate-limit marker is claimed with SETNX: whichever call sets it wins, and
// everyone else is rejected until it expires.
func (c *Controller) generateOtp(ctx context.Context, phone string) (string, error) {
	const op = "otp.generate.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	limitKey := fmt.Sprintf(otpLimitKey, phone)
	ok, err := c.cache.SetNX(ctx, c.conf.OtpRateLimit, limitKey, "1")
	if err != nil {
		return "", err
	}

	if !ok {
		retry := c.cache.TTL(ctx, limitKey)
		if retry <= 0 {
			retry = c.conf.OtpRateLimit
		}
		return "", &OtpRateLimitedError{RetryAfter: retry}
	}

	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}

	code := fmt.Sprintf("%06d", n.Int64())
	if err = c.cache.Set(ctx, c.conf.OtpExpiry, fmt.Sprintf(otpCodeKey, phone), code); err != nil {
		return "", err
	}

	return code, nil
}

// validateOtp reports whether a live code for the phone matches. No side
// effects: the caller decides when to clear.
func (c *Controller) validateOtp(ctx context.Context, phone, code string) error {
	const op = "otp.validate.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	stored, err := c.cache.Get(ctx, fmt.Sprintf(otpCodeKey, phone))
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return ErrOtpExpired
		}
		return err
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return ErrOtpInvalid
	}

	return nil
}

// clearOtp burns the live code so it cannot be replayed. A delete failure is
// returned: a code that survived validation stays redeemable until its TTL,
// and callers must not treat the verification as settled.
func (c *Controller) clearOtp(ctx context.Context, phone string) error {
	return c.cache.Delete(ctx, fmt.Sprintf(otpCodeKey, phone))
}
