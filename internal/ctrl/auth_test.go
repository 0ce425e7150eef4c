package ctrl

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/almousleck/glasslink/internal/auth"
	"github.com/almousleck/glasslink/internal/auth/jwt"
	"github.com/almousleck/glasslink/internal/dto"
	"github.com/almousleck/glasslink/internal/models"
	"github.com/almousleck/glasslink/internal/repo"
	"github.com/almousleck/glasslink/tests/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestController_Login(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockJWT := mocks.NewMockTokenPort(ctrlMock)
	mockPw := mocks.NewMockPasswordPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockNotify := mocks.NewMockNotifier(ctrlMock)

	ctx := context.Background()
	svc := New(mockJWT, mockPw, mockRepo, mockCache, mockNotify, testAuthConf())

	testID := uuid.New()
	testUser := &models.User{
		ID:            testID,
		Username:      "talek",
		Phone:         "+4915112345678",
		Password:      "$2a$10$hashedpassword",
		Role:          models.RoleUser,
		PhoneVerified: true,
	}

	testRequest := &dto.LoginRequest{
		Identifier: "talek",
		Password:   "validpassword123!",
	}

	lockedAt := time.Now().Add(-time.Minute)

	tests := []struct {
		name     string
		setup    func()
		check    func(t *testing.T, res *dto.AuthResponse, err error)
	}{
		{
			name: "Success",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByIdentifier(gomock.Any(), testRequest.Identifier).
					Return(testUser, nil).
					Times(2)
				mockPw.EXPECT().
					Compare([]byte(testUser.Password), []byte(testRequest.Password)).
					Return(nil)
				mockRepo.EXPECT().
					ResetLockout(gomock.Any(), testRequest.Identifier).
					Return(nil)
				mockJWT.EXPECT().
					NewAccess(gomock.Any(), testUser.Username).
					Return("access-token", nil)
				mockJWT.EXPECT().
					NewRefresh().
					Return("refresh-token", nil)
				mockRepo.EXPECT().
					DeleteRefreshTokensByUser(gomock.Any(), testID).
					Return(nil)
				mockJWT.EXPECT().
					Fingerprint("refresh-token").
					Return("fp")
				mockJWT.EXPECT().
					RefreshExpiry().
					Return(time.Now().Add(168 * time.Hour))
				mockRepo.EXPECT().
					CreateRefreshToken(gomock.Any(), testID, "fp", gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, res *dto.AuthResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, "access-token", res.Access)
				assert.Equal(t, "refresh-token", res.Refresh)
				assert.Equal(t, testUser.Username, res.Username)
				assert.Equal(t, models.RoleUser, res.Role)
			},
		},
		{
			name: "UnknownUserLooksLikeBadPassword",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByIdentifier(gomock.Any(), testRequest.Identifier).
					Return(nil, repo.ErrNotFound).
					Times(2)
				// The dummy compare keeps this path as slow as a wrong
				// password against a real account.
				mockPw.EXPECT().
					Compare(auth.DummyHash, []byte(testRequest.Password)).
					Return(auth.ErrInvalidCredentials)
				mockRepo.EXPECT().
					IncrementFailedAttempts(gomock.Any(), testRequest.Identifier).
					Return(uuid.Nil, "", 0, repo.ErrNotFound)
			},
			check: func(t *testing.T, res *dto.AuthResponse, err error) {
				assert.Nil(t, res)
				assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
			},
		},
		{
			name: "WrongPasswordCountsFailure",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByIdentifier(gomock.Any(), testRequest.Identifier).
					Return(testUser, nil).
					Times(2)
				mockPw.EXPECT().
					Compare([]byte(testUser.Password), []byte(testRequest.Password)).
					Return(auth.ErrInvalidCredentials)
				mockRepo.EXPECT().
					IncrementFailedAttempts(gomock.Any(), testRequest.Identifier).
					Return(testID, testUser.Phone, 1, nil)
			},
			check: func(t *testing.T, res *dto.AuthResponse, err error) {
				assert.Nil(t, res)
				assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
			},
		},
		{
			name: "LockedAccountShortCircuits",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByIdentifier(gomock.Any(), testRequest.Identifier).
					Return(&models.User{ID: testID, Locked: true, LockedAt: &lockedAt}, nil)
			},
			check: func(t *testing.T, res *dto.AuthResponse, err error) {
				assert.Nil(t, res)
				var locked *AccountLockedError
				assert.ErrorAs(t, err, &locked)
			},
		},
		{
			name: "UnverifiedPhone",
			setup: func() {
				unverified := *testUser
				unverified.PhoneVerified = false
				mockRepo.EXPECT().
					GetUserByIdentifier(gomock.Any(), testRequest.Identifier).
					Return(&unverified, nil).
					Times(2)
				mockPw.EXPECT().
					Compare([]byte(testUser.Password), []byte(testRequest.Password)).
					Return(nil)
			},
			check: func(t *testing.T, res *dto.AuthResponse, err error) {
				assert.Nil(t, res)
				assert.ErrorIs(t, err, ErrPhoneNotVerified)
			},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.setup()
				res, err := svc.Login(ctx, testRequest)
				tt.check(t, res, err)
			},
		)
	}
}

func TestController_Register(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockJWT := mocks.NewMockTokenPort(ctrlMock)
	mockPw := mocks.NewMockPasswordPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockNotify := mocks.NewMockNotifier(ctrlMock)

	ctx := context.Background()
	conf := testAuthConf()
	svc := New(mockJWT, mockPw, mockRepo, mockCache, mockNotify, conf)

	testRequest := &dto.RegisterRequest{
		Username: "talek",
		Phone:    "+4915112345678",
		Password: "validpassword123!",
	}

	t.Run(
		"Success", func(t *testing.T) {
			mockPw.EXPECT().
				Hash(testRequest.Password).
				Return("hashed", nil)
			mockRepo.EXPECT().
				CreateUser(gomock.Any(), testRequest, "hashed", models.RoleUser).
				Return(uuid.New(), nil)
			mockCache.EXPECT().
				SetNX(gomock.Any(), conf.OtpRateLimit, gomock.Any(), "1").
				Return(true, nil)
			mockCache.EXPECT().
				Set(gomock.Any(), conf.OtpExpiry, gomock.Any(), gomock.Any()).
				Return(nil)
			mockNotify.EXPECT().
				SendOtp(gomock.Any(), testRequest.Phone, gomock.Any(), conf.OtpExpiry).
				Return(nil)

			res, err := svc.Register(ctx, testRequest)
			require.NoError(t, err)
			assert.Len(t, res.Code, 6)
			assert.Equal(t, int(conf.OtpExpiry.Seconds()), res.ExpiresIn)
		},
	)

	t.Run(
		"Duplicate", func(t *testing.T) {
			mockPw.EXPECT().
				Hash(testRequest.Password).
				Return("hashed", nil)
			mockRepo.EXPECT().
				CreateUser(gomock.Any(), testRequest, "hashed", models.RoleUser).
				Return(uuid.Nil, repo.ErrAlreadyExists)

			_, err := svc.Register(ctx, testRequest)
			assert.ErrorIs(t, err, ErrAlreadyExists)
		},
	)
}

func TestController_Refresh(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockJWT := mocks.NewMockTokenPort(ctrlMock)
	mockPw := mocks.NewMockPasswordPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockNotify := mocks.NewMockNotifier(ctrlMock)

	ctx := context.Background()
	svc := New(mockJWT, mockPw, mockRepo, mockCache, mockNotify, testAuthConf())

	testID := uuid.New()
	testUser := &models.User{
		ID:       testID,
		Username: "talek",
	}

	tests := []struct {
		name    string
		setup   func()
		wantErr error
	}{
		{
			name: "Success",
			setup: func() {
				mockJWT.EXPECT().
					Fingerprint("old-refresh").
					Return("old-fp")
				mockRepo.EXPECT().
					RedeemRefreshToken(gomock.Any(), "old-fp").
					Return(
						&models.RefreshToken{
							UserID:    testID,
							TokenHash: "old-fp",
							ExpiresAt: time.Now().Add(time.Hour),
						}, nil,
					)
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testID).
					Return(testUser, nil)
				mockJWT.EXPECT().
					NewAccess(gomock.Any(), testUser.Username).
					Return("access-token", nil)
				mockJWT.EXPECT().
					NewRefresh().
					Return("new-refresh", nil)
				mockRepo.EXPECT().
					DeleteRefreshTokensByUser(gomock.Any(), testID).
					Return(nil)
				mockJWT.EXPECT().
					Fingerprint("new-refresh").
					Return("new-fp")
				mockJWT.EXPECT().
					RefreshExpiry().
					Return(time.Now().Add(168 * time.Hour))
				mockRepo.EXPECT().
					CreateRefreshToken(gomock.Any(), testID, "new-fp", gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "AlreadyRedeemed",
			setup: func() {
				mockJWT.EXPECT().
					Fingerprint("old-refresh").
					Return("old-fp")
				mockRepo.EXPECT().
					RedeemRefreshToken(gomock.Any(), "old-fp").
					Return(nil, repo.ErrNotFound)
			},
			wantErr: ErrRefreshTokenInvalid,
		},
		{
			name: "Expired",
			setup: func() {
				mockJWT.EXPECT().
					Fingerprint("old-refresh").
					Return("old-fp")
				mockRepo.EXPECT().
					RedeemRefreshToken(gomock.Any(), "old-fp").
					Return(
						&models.RefreshToken{
							UserID:    testID,
							TokenHash: "old-fp",
							ExpiresAt: time.Now().Add(-time.Hour),
						}, nil,
					)
			},
			wantErr: ErrRefreshTokenExpired,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.setup()
				pair, err := svc.Refresh(ctx, "old-refresh")
				if tt.wantErr != nil {
					assert.Nil(t, pair)
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					require.NoError(t, err)
					assert.Equal(t, "access-token", pair.Access)
					assert.Equal(t, "new-refresh", pair.Refresh)
				}
			},
		)
	}
}

func TestController_Logout(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockJWT := mocks.NewMockTokenPort(ctrlMock)
	mockPw := mocks.NewMockPasswordPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockNotify := mocks.NewMockNotifier(ctrlMock)

	ctx := context.Background()
	svc := New(mockJWT, mockPw, mockRepo, mockCache, mockNotify, testAuthConf())

	t.Run(
		"BlacklistsForRemainingTTL", func(t *testing.T) {
			mockJWT.EXPECT().
				RemainingTTL(gomock.Any(), "access-token").
				Return(10*time.Minute, nil)
			mockCache.EXPECT().
				Set(gomock.Any(), 10*time.Minute, fmt.Sprintf(blacklistKey, "access-token"), "revoked").
				Return(nil)
			mockJWT.EXPECT().
				Fingerprint("refresh-token").
				Return("fp")
			mockRepo.EXPECT().
				RevokeRefreshToken(gomock.Any(), "fp").
				Return(nil)

			assert.NoError(t, svc.Logout(ctx, "access-token", "refresh-token"))
		},
	)

	t.Run(
		"UndecodableAccessStillRevokesRefresh", func(t *testing.T) {
			mockJWT.EXPECT().
				RemainingTTL(gomock.Any(), "garbage").
				Return(time.Duration(0), jwt.ErrInvalidToken)
			mockJWT.EXPECT().
				Fingerprint("refresh-token").
				Return("fp")
			mockRepo.EXPECT().
				RevokeRefreshToken(gomock.Any(), "fp").
				Return(nil)

			assert.NoError(t, svc.Logout(ctx, "garbage", "refresh-token"))
		},
	)
}

func TestController_VerifyOtp(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockJWT := mocks.NewMockTokenPort(ctrlMock)
	mockPw := mocks.NewMockPasswordPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockNotify := mocks.NewMockNotifier(ctrlMock)

	ctx := context.Background()
	svc := New(mockJWT, mockPw, mockRepo, mockCache, mockNotify, testAuthConf())

	testPhone := "+4915112345678"
	codeKey := fmt.Sprintf(otpCodeKey, testPhone)
	req := &dto.OtpVerifyRequest{Phone: testPhone, Code: "123456"}

	t.Run(
		"Success", func(t *testing.T) {
			mockCache.EXPECT().
				Get(gomock.Any(), codeKey).
				Return("123456", nil)
			mockCache.EXPECT().
				Delete(gomock.Any(), codeKey)
			mockRepo.EXPECT().
				SetPhoneVerified(gomock.Any(), testPhone).
				Return(nil)
			mockNotify.EXPECT().
				SendPhoneVerified(gomock.Any(), testPhone).
				Return(nil)

			assert.NoError(t, svc.VerifyOtp(ctx, req))
		},
	)

	t.Run(
		"WrongCodeKeepsOtpAlive", func(t *testing.T) {
			mockCache.EXPECT().
				Get(gomock.Any(), codeKey).
				Return("999999", nil)

			assert.ErrorIs(t, svc.VerifyOtp(ctx, req), ErrOtpInvalid)
		},
	)

	// The code must be burned before the phone is marked verified. If the
	// delete fails the code is still redeemable, so the call fails and the
	// phone stays unverified.
	t.Run(
		"UnburnedCodeFailsVerification", func(t *testing.T) {
			delErr := errors.New("redis: connection refused")
			mockCache.EXPECT().
				Get(gomock.Any(), codeKey).
				Return("123456", nil)
			mockCache.EXPECT().
				Delete(gomock.Any(), codeKey).
				Return(delErr)

			assert.ErrorIs(t, svc.VerifyOtp(ctx, req), delErr)
		},
	)
}

func TestController_ResetPassword(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockJWT := mocks.NewMockTokenPort(ctrlMock)
	mockPw := mocks.NewMockPasswordPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockNotify := mocks.NewMockNotifier(ctrlMock)

	ctx := context.Background()
	svc := New(mockJWT, mockPw, mockRepo, mockCache, mockNotify, testAuthConf())

	testID := uuid.New()
	testPhone := "+4915112345678"
	codeKey := fmt.Sprintf(otpCodeKey, testPhone)
	req := &dto.ResetPasswordRequest{
		Phone:       testPhone,
		Code:        "123456",
		NewPassword: "newvalidpassword!",
	}

	t.Run(
		"SuccessClearsLockout", func(t *testing.T) {
			mockRepo.EXPECT().
				GetUserByPhone(gomock.Any(), testPhone).
				Return(&models.User{ID: testID, Phone: testPhone}, nil)
			mockCache.EXPECT().
				Get(gomock.Any(), codeKey).
				Return("123456", nil)
			mockCache.EXPECT().
				Delete(gomock.Any(), codeKey)
			mockPw.EXPECT().
				Hash(req.NewPassword).
				Return("newhash", nil)
			mockRepo.EXPECT().
				UpdatePassword(gomock.Any(), testID, "newhash").
				Return(nil)
			mockRepo.EXPECT().
				ResetLockout(gomock.Any(), testPhone).
				Return(nil)
			mockNotify.EXPECT().
				SendPasswordChanged(gomock.Any(), testPhone).
				Return(nil)

			assert.NoError(t, svc.ResetPassword(ctx, req))
		},
	)

	t.Run(
		"UnknownPhone", func(t *testing.T) {
			mockRepo.EXPECT().
				GetUserByPhone(gomock.Any(), testPhone).
				Return(nil, repo.ErrNotFound)

			assert.ErrorIs(t, svc.ResetPassword(ctx, req), ErrNotFound)
		},
	)

	t.Run(
		"HashFailure", func(t *testing.T) {
			mockRepo.EXPECT().
				GetUserByPhone(gomock.Any(), testPhone).
				Return(&models.User{ID: testID, Phone: testPhone}, nil)
			mockCache.EXPECT().
				Get(gomock.Any(), codeKey).
				Return("123456", nil)
			mockCache.EXPECT().
				Delete(gomock.Any(), codeKey)
			mockPw.EXPECT().
				Hash(req.NewPassword).
				Return("", errors.New("bcrypt error"))

			assert.Error(t, svc.ResetPassword(ctx, req))
		},
	)

	t.Run(
		"UnburnedCodeFailsReset", func(t *testing.T) {
			delErr := errors.New("redis: connection refused")
			mockRepo.EXPECT().
				GetUserByPhone(gomock.Any(), testPhone).
				Return(&models.User{ID: testID, Phone: testPhone}, nil)
			mockCache.EXPECT().
				Get(gomock.Any(), codeKey).
				Return("123456", nil)
			mockCache.EXPECT().
				Delete(gomock.Any(), codeKey).
				Return(delErr)

			assert.ErrorIs(t, svc.ResetPassword(ctx, req), delErr)
		},
	)
}
