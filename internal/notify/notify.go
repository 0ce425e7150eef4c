// Package notify holds the transports behind the ctrl.Notifier capability
// port. The core never learns how a message travels; pick a transport in
// main based on config.
package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Console logs every notification instead of sending it. Default transport
// for dev and test environments.
type Console struct{}

func NewConsole() *Console {
	return &Console{}
}

func (c *Console) SendOtp(_ context.Context, phone, code string, expiry time.Duration) error {
	zap.L().Info(
		"OTP notification",
		zap.String("phone", phone),
		zap.String("code", code),
		zap.Duration("expiresIn", expiry),
	)
	return nil
}

func (c *Console) SendAccountLocked(_ context.Context, phone string, unlockAt time.Time) error {
	zap.L().Info(
		"account locked notification",
		zap.String("phone", phone),
		zap.Time("unlockAt", unlockAt),
	)
	return nil
}

func (c *Console) SendLoginWarning(_ context.Context, phone string, attemptsRemaining int) error {
	zap.L().Info(
		"login warning notification",
		zap.String("phone", phone),
		zap.Int("attemptsRemaining", attemptsRemaining),
	)
	return nil
}

func (c *Console) SendPhoneVerified(_ context.Context, phone string) error {
	zap.L().Info(
		"phone verified notification",
		zap.String("phone", phone),
	)
	return nil
}

func (c *Console) SendPasswordChanged(_ context.Context, phone string) error {
	zap.L().Info(
		"password changed notification",
		zap.String("phone", phone),
	)
	return nil
}
