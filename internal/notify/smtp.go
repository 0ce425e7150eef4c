package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/almousleck/glasslink/internal/config"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// EmailGateway delivers SMS through a carrier email-to-SMS gateway:
// messages are mailed to <phone>@<gateway-domain>.
type EmailGateway struct {
	server string
	port   int
	user   string
	pass   string
	domain string
}

func NewEmailGateway(conf config.Config) *EmailGateway {
	return &EmailGateway{
		server: conf.Email.Server,
		port:   conf.Email.Port,
		user:   conf.Email.User,
		pass:   conf.Email.Pass,
		domain: conf.Email.SmsGatewayDomain,
	}
}

func (g *EmailGateway) SendOtp(ctx context.Context, phone, code string, expiry time.Duration) error {
	return g.send(
		phone, "Verification code",
		fmt.Sprintf(
			"Your verification code is %s. It expires in %d minutes.",
			code, int(expiry.Minutes()),
		),
	)
}

func (g *EmailGateway) SendAccountLocked(ctx context.Context, phone string, unlockAt time.Time) error {
	return g.send(
		phone, "Account locked",
		fmt.Sprintf(
			"Your account has been locked after repeated failed logins. Try again after %s.",
			unlockAt.Format(time.RFC1123),
		),
	)
}

func (g *EmailGateway) SendLoginWarning(ctx context.Context, phone string, attemptsRemaining int) error {
	return g.send(
		phone, "Login warning",
		fmt.Sprintf(
			"Failed login detected. %d attempt(s) remaining before your account is locked.",
			attemptsRemaining,
		),
	)
}

func (g *EmailGateway) SendPhoneVerified(ctx context.Context, phone string) error {
	return g.send(phone, "Phone verified", "Your phone number has been verified.")
}

func (g *EmailGateway) SendPasswordChanged(ctx context.Context, phone string) error {
	return g.send(phone, "Password changed", "Your password has been changed.")
}

func (g *EmailGateway) send(phone, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", g.user)
	m.SetHeader("To", fmt.Sprintf("%s@%s", phone, g.domain))
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(g.server, g.port, g.user, g.pass)
	if err := d.DialAndSend(m); err != nil {
		zap.L().Error(
			"failed to send notification",
			zap.String("phone", phone),
			zap.Error(err),
		)
		return err
	}

	return nil
}
