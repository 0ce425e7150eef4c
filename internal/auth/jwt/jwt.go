package jwt

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/almousleck/glasslink/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type Port interface {
	NewAccess(ctx context.Context, username string) (string, error)
	ParseClaims(ctx context.Context, tokenStr string) (Claims, error)
	RemainingTTL(ctx context.Context, tokenStr string) (time.Duration, error)
	NewRefresh() (string, error)
	Fingerprint(token string) string
	RefreshExpiry() time.Time
}

type Core struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

type Claims struct {
	jwt.RegisteredClaims
}

func New(conf config.Config) *Core {
	return &Core{
		secret:     []byte(conf.Auth.JWT.Secret),
		issuer:     conf.Auth.JWT.Issuer,
		accessTTL:  conf.Auth.AccessTokenTTL,
		refreshTTL: conf.Auth.RefreshTokenTTL,
	}
}

// NewAccess issues a signed access token with subject = username.
func (c *Core) NewAccess(ctx context.Context, username string) (string, error) {
	const op = "auth.NewAccess.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	now := time.Now()
	signed, err := jwt.NewWithClaims(
		jwt.SigningMethodHS256, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   username,
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(c.accessTTL)),
				Issuer:    c.issuer,
			},
		},
	).SignedString(c.secret)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.String("op", op),
			zap.Error(err),
		)

		return "", ErrWhileCreatingToken
	}

	return signed, nil
}

// ParseClaims verifies signature and expiry. Every structural or
// cryptographic failure collapses to ErrInvalidToken; the underlying cause
// is only logged.
func (c *Core) ParseClaims(ctx context.Context, tokenStr string) (Claims, error) {
	const op = "auth.ParseClaims.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims := Claims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, &claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			return c.secret, nil
		},
	)
	if err != nil {
		zap.L().Debug(
			"failed to parse claims",
			zap.String("op", op),
			zap.Error(err),
		)

		return claims, ErrInvalidToken
	}

	if !token.Valid {
		zap.L().Debug(
			"token is invalid",
			zap.String("op", op),
		)

		return claims, ErrInvalidToken
	}

	return claims, nil
}

// RemainingTTL reports how long a still-valid access token has to live.
// Used to size the blacklist entry at revocation time.
func (c *Core) RemainingTTL(ctx context.Context, tokenStr string) (time.Duration, error) {
	claims, err := c.ParseClaims(ctx, tokenStr)
	if err != nil {
		return 0, err
	}

	if claims.ExpiresAt == nil {
		return 0, ErrInvalidToken
	}

	return time.Until(claims.ExpiresAt.Time), nil
}

// NewRefresh produces an opaque high-entropy refresh token. The raw value
// goes to the client; only Fingerprint(token) is ever persisted.
func (c *Core) NewRefresh() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", ErrWhileCreatingToken
	}

	return hex.EncodeToString(buf), nil
}

func (c *Core) Fingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (c *Core) RefreshExpiry() time.Time {
	return time.Now().Add(c.refreshTTL)
}
