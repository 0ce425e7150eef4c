package ctrl

import (
	"context"
	"errors"
	"time"

	md "github.com/almousleck/glasslink/internal/models"
	"github.com/almousleck/glasslink/internal/repo"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// RecordLoginFailure counts a failed attempt. The increment happens in a
// single statement so concurrent failures are all counted. An unknown
// identifier is a logged no-op: the caller observes the same outcome either
// way and cannot probe for account existence.
func (c *Controller) RecordLoginFailure(ctx context.Context, identifier string) error {
	const op = "lockout.RecordLoginFailure.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	id, phone, attempts, err := c.repo.IncrementFailedAttempts(ctx, identifier)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			zap.L().Warn("login failed for unknown identifier", zap.String("op", op))
			return nil
		}
		return err
	}

	zap.L().Info(
		"failed login attempt recorded",
		zap.String("op", op),
		zap.String("userID", id.String()),
		zap.Int("attempts", attempts),
		zap.Int("max", c.conf.MaxLoginAttempts),
	)

	// Warning threshold is derived from the limit, one attempt before it.
	if attempts == c.conf.MaxLoginAttempts-1 {
		if err = c.notify.SendLoginWarning(ctx, phone, c.conf.MaxLoginAttempts-attempts); err != nil {
			zap.L().Warn("failed to send login warning", zap.String("op", op), zap.Error(err))
		}
		return nil
	}

	if attempts >= c.conf.MaxLoginAttempts {
		now := time.Now()
		if err = c.repo.LockUser(ctx, id, now); err != nil {
			return err
		}

		unlockAt := now.Add(c.conf.LockDuration)
		zap.L().Warn(
			"account locked",
			zap.String("op", op),
			zap.String("userID", id.String()),
			zap.Time("unlockAt", unlockAt),
		)

		if err = c.notify.SendAccountLocked(ctx, phone, unlockAt); err != nil {
			zap.L().Warn("failed to send lock notification", zap.String("op", op), zap.Error(err))
		}
	}

	return nil
}

// RecordLoginSuccess resets the counter and lock state after a successful
// authentication.
func (c *Controller) RecordLoginSuccess(ctx context.Context, identifier string) error {
	const op = "lockout.RecordLoginSuccess.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.repo.ResetLockout(ctx, identifier)
}

// CheckAccountLock fails with AccountLockedError while the lock window is
// open. An expired lock is cleared here and the login proceeds.
func (c *Controller) CheckAccountLock(ctx context.Context, identifier string) error {
	const op = "lockout.CheckAccountLock.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	user, err := c.repo.GetUserByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil
		}
		return err
	}

	if !user.Locked || user.LockedAt == nil {
		return nil
	}

	unlockAt := user.LockedAt.Add(c.conf.LockDuration)
	if time.Now().Before(unlockAt) {
		zap.L().Warn(
			"locked account login attempt",
			zap.String("op", op),
			zap.String("userID", user.ID.String()),
		)
		return &AccountLockedError{UnlockAt: unlockAt}
	}

	zap.L().Info(
		"account auto-unlocked",
		zap.String("op", op),
		zap.String("userID", user.ID.String()),
	)
	return c.repo.ResetLockout(ctx, identifier)
}

// UnlockAccount is the administrative reset. The requester must hold the
// admin role; the target identifier is reset unconditionally.
func (c *Controller) UnlockAccount(ctx context.Context, admin, identifier string) error {
	const op = "lockout.UnlockAccount.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	requester, err := c.repo.GetUserByIdentifier(ctx, admin)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrForbidden
		}
		return err
	}

	if requester.Role != md.RoleAdmin {
		return ErrForbidden
	}

	if err = c.repo.ResetLockout(ctx, identifier); err != nil {
		return err
	}

	zap.L().Info(
		"account manually unlocked",
		zap.String("op", op),
		zap.String("admin", admin),
	)
	return nil
}
