package ctrl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/almousleck/glasslink/internal/auth"
	"github.com/almousleck/glasslink/internal/dto"
	md "github.com/almousleck/glasslink/internal/models"
	"github.com/almousleck/glasslink/internal/repo"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

const blacklistKey = "auth:blacklist:%v"

type authCtrl interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.OtpResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	VerifyOtp(ctx context.Context, req *dto.OtpVerifyRequest) error
	ResendOtp(ctx context.Context, phone string) (*dto.OtpResponse, error)
	ForgotPassword(ctx context.Context, phone string) (*dto.OtpResponse, error)
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
	Refresh(ctx context.Context, refresh string) (*dto.TokenPair, error)
	Logout(ctx context.Context, access, refresh string) error
	IsBlacklisted(ctx context.Context, token string) bool
	UnlockAccount(ctx context.Context, admin, identifier string) error
}

// genPair issues a fresh access+refresh pair, rotating out any refresh
// token the identity still holds.
func (c *Controller) genPair(ctx context.Context, user *md.User) (*dto.TokenPair, error) {
	const op = "auth.genPair.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	access, err := c.au.NewAccess(ctx, user.Username)
	if err != nil {
		return nil, err
	}

	refresh, err := c.au.NewRefresh()
	if err != nil {
		return nil, err
	}

	if err = c.repo.DeleteRefreshTokensByUser(ctx, user.ID); err != nil {
		return nil, err
	}

	err = c.repo.CreateRefreshToken(ctx, user.ID, c.au.Fingerprint(refresh), c.au.RefreshExpiry())
	if err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		Access:  access,
		Refresh: refresh,
	}, nil
}

func (c *Controller) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.OtpResponse, error) {
	const op = "auth.Register.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	hash, err := c.pw.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	id, err := c.repo.CreateUser(ctx, req, hash, md.RoleUser)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	code, err := c.generateOtp(ctx, req.Phone)
	if err != nil {
		return nil, err
	}

	if err = c.notify.SendOtp(ctx, req.Phone, code, c.conf.OtpExpiry); err != nil {
		zap.L().Warn("failed to send otp", zap.String("op", op), zap.Error(err))
	}

	zap.L().Info(
		"user registered",
		zap.String("op", op),
		zap.String("userID", id.String()),
	)

	return c.otpResponse("verification code sent", code), nil
}

func (c *Controller) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	const op = "auth.Login.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.CheckAccountLock(ctx, req.Identifier); err != nil {
		return nil, err
	}

	user, err := c.repo.GetUserByIdentifier(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Burn the same bcrypt cost a wrong password pays, then fail the
			// same way: neither response nor timing may reveal account
			// existence.
			_ = c.pw.Compare(auth.DummyHash, []byte(req.Password))
			if ferr := c.RecordLoginFailure(ctx, req.Identifier); ferr != nil {
				zap.L().Error("failed to record login failure", zap.String("op", op), zap.Error(ferr))
			}
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err = c.pw.Compare([]byte(user.Password), []byte(req.Password)); err != nil {
		if ferr := c.RecordLoginFailure(ctx, req.Identifier); ferr != nil {
			zap.L().Error("failed to record login failure", zap.String("op", op), zap.Error(ferr))
		}
		return nil, auth.ErrInvalidCredentials
	}

	if !user.PhoneVerified {
		return nil, ErrPhoneNotVerified
	}

	if err = c.RecordLoginSuccess(ctx, req.Identifier); err != nil {
		return nil, err
	}

	pair, err := c.genPair(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		TokenPair: *pair,
		Username:  user.Username,
		Role:      user.Role,
	}, nil
}

func (c *Controller) VerifyOtp(ctx context.Context, req *dto.OtpVerifyRequest) error {
	const op = "auth.VerifyOtp.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.validateOtp(ctx, req.Phone, req.Code); err != nil {
		return err
	}

	if err := c.clearOtp(ctx, req.Phone); err != nil {
		return err
	}

	if err := c.repo.SetPhoneVerified(ctx, req.Phone); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := c.notify.SendPhoneVerified(ctx, req.Phone); err != nil {
		zap.L().Warn("failed to send verification notice", zap.String("op", op), zap.Error(err))
	}

	return nil
}

func (c *Controller) ResendOtp(ctx context.Context, phone string) (*dto.OtpResponse, error) {
	const op = "auth.ResendOtp.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.repo.GetUserByPhone(ctx, phone); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	code, err := c.generateOtp(ctx, phone)
	if err != nil {
		return nil, err
	}

	if err = c.notify.SendOtp(ctx, phone, code, c.conf.OtpExpiry); err != nil {
		zap.L().Warn("failed to send otp", zap.String("op", op), zap.Error(err))
	}

	return c.otpResponse("verification code resent", code), nil
}

func (c *Controller) ForgotPassword(ctx context.Context, phone string) (*dto.OtpResponse, error) {
	const op = "auth.ForgotPassword.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.repo.GetUserByPhone(ctx, phone); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	code, err := c.generateOtp(ctx, phone)
	if err != nil {
		return nil, err
	}

	if err = c.notify.SendOtp(ctx, phone, code, c.conf.OtpExpiry); err != nil {
		zap.L().Warn("failed to send otp", zap.String("op", op), zap.Error(err))
	}

	return c.otpResponse("password reset code sent", code), nil
}

func (c *Controller) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	const op = "auth.ResetPassword.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	user, err := c.repo.GetUserByPhone(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err = c.validateOtp(ctx, req.Phone, req.Code); err != nil {
		return err
	}

	if err = c.clearOtp(ctx, req.Phone); err != nil {
		return err
	}

	hash, err := c.pw.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	if err = c.repo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	// Whoever proved phone control gets the lockout cleared as well.
	if err = c.repo.ResetLockout(ctx, req.Phone); err != nil {
		return err
	}

	if err = c.notify.SendPasswordChanged(ctx, req.Phone); err != nil {
		zap.L().Warn("failed to send password change notice", zap.String("op", op), zap.Error(err))
	}

	return nil
}

// Refresh redeems a single-use refresh token for a new pair. The store
// deletes atomically, so a token redeems at most once no matter how many
// callers race on it.
func (c *Controller) Refresh(ctx context.Context, refresh string) (*dto.TokenPair, error) {
	const op = "auth.Refresh.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	row, err := c.repo.RedeemRefreshToken(ctx, c.au.Fingerprint(refresh))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrRefreshTokenInvalid
		}
		return nil, err
	}

	if time.Now().After(row.ExpiresAt) {
		return nil, ErrRefreshTokenExpired
	}

	user, err := c.repo.GetUserByID(ctx, row.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrRefreshTokenInvalid
		}
		return nil, err
	}

	return c.genPair(ctx, user)
}

// Logout blacklists the access token for exactly its remaining validity and
// revokes the refresh token. An undecodable access token never blocks the
// refresh revocation.
func (c *Controller) Logout(ctx context.Context, access, refresh string) error {
	const op = "auth.Logout.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	ttl, err := c.au.RemainingTTL(ctx, access)
	if err != nil {
		zap.L().Warn("could not blacklist access token", zap.String("op", op), zap.Error(err))
	} else if ttl > 0 {
		if err = c.cache.Set(ctx, ttl, fmt.Sprintf(blacklistKey, access), "revoked"); err != nil {
			zap.L().Warn("failed to insert blacklist entry", zap.String("op", op), zap.Error(err))
		}
	}

	return c.repo.RevokeRefreshToken(ctx, c.au.Fingerprint(refresh))
}

func (c *Controller) IsBlacklisted(ctx context.Context, token string) bool {
	return c.cache.Exists(ctx, fmt.Sprintf(blacklistKey, token))
}

func (c *Controller) otpResponse(msg, code string) *dto.OtpResponse {
	res := &dto.OtpResponse{
		Message:   msg,
		ExpiresIn: int(c.conf.OtpExpiry.Seconds()),
	}

	if c.conf.OtpInResponse {
		res.Code = code
	}

	return res
}
