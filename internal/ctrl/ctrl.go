package ctrl

import (
	"context"
	"io"
	"time"

	"github.com/almousleck/glasslink/internal/auth"
	"github.com/almousleck/glasslink/internal/auth/jwt"
	"github.com/almousleck/glasslink/internal/config"
	"github.com/almousleck/glasslink/internal/dto"
	md "github.com/almousleck/glasslink/internal/models"
	"github.com/google/uuid"
)

type userRepo interface {
	GetUserByIdentifier(ctx context.Context, identifier string) (*md.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*md.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*md.User, error)
	CreateUser(ctx context.Context, req *dto.RegisterRequest, hash, role string) (uuid.UUID, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, hash string) error
	SetPhoneVerified(ctx context.Context, phone string) error
	IncrementFailedAttempts(ctx context.Context, identifier string) (uuid.UUID, string, int, error)
	LockUser(ctx context.Context, userID uuid.UUID, at time.Time) error
	ResetLockout(ctx context.Context, identifier string) error
}

type authRepo interface {
	CreateRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	DeleteRefreshTokensByUser(ctx context.Context, userID uuid.UUID) error
	RedeemRefreshToken(ctx context.Context, tokenHash string) (*md.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
}

type deviceRepo interface {
	GetDeviceBySerial(ctx context.Context, serial string) (*md.Device, error)
	CreateDevice(ctx context.Context, d *md.Device) (uuid.UUID, error)
	BindDeviceOwner(ctx context.Context, serial string, ownerID uuid.UUID, name string) error
	ListDevicesByOwner(
		ctx context.Context,
		ownerID uuid.UUID,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedDeviceResponse, error)
	UpdateDeviceTelemetry(ctx context.Context, serial string, battery *int, ip *string, at time.Time) error
	SetDeviceStatus(ctx context.Context, serial, status string, connectTime *time.Time) error
	UpdateFirmware(ctx context.Context, serial, version string) error
	UnpairDevice(ctx context.Context, serial string) error
}

type AppRepo interface {
	userRepo
	authRepo
	deviceRepo
}

type AppCtrl interface {
	authCtrl
	deviceCtrl
}

type CacheService interface {
	io.Closer
	Get(ctx context.Context, key string) (string, error)
	GetToStruct(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, t time.Duration, key string, val any) error
	SetNX(ctx context.Context, t time.Duration, key string, val any) (bool, error)
	Exists(ctx context.Context, key string) bool
	TTL(ctx context.Context, key string) time.Duration
	Delete(ctx context.Context, keys ...string) error
	InvalidateKeysByPattern(ctx context.Context, pattern string)
}

// Notifier is the outbound capability set. Transports are pluggable; every
// call happens after the state change it reports has committed.
type Notifier interface {
	SendOtp(ctx context.Context, phone, code string, expiry time.Duration) error
	SendAccountLocked(ctx context.Context, phone string, unlockAt time.Time) error
	SendLoginWarning(ctx context.Context, phone string, attemptsRemaining int) error
	SendPhoneVerified(ctx context.Context, phone string) error
	SendPasswordChanged(ctx context.Context, phone string) error
}

type Controller struct {
	au     jwt.Port
	pw     auth.Port
	repo   AppRepo
	cache  CacheService
	notify Notifier
	conf   config.AuthConfig
}

func New(
	au jwt.Port,
	pw auth.Port,
	repo AppRepo,
	cache CacheService,
	notify Notifier,
	conf config.AuthConfig,
) *Controller {
	return &Controller{
		au:     au,
		pw:     pw,
		repo:   repo,
		cache:  cache,
		notify: notify,
		conf:   conf,
	}
}
