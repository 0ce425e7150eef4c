package ctrl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/almousleck/glasslink/internal/dto"
	"github.com/almousleck/glasslink/internal/models"
	"github.com/almousleck/glasslink/internal/repo"
	"github.com/almousleck/glasslink/tests/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestController_PairDevice(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockJWT := mocks.NewMockTokenPort(ctrlMock)
	mockPw := mocks.NewMockPasswordPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockNotify := mocks.NewMockNotifier(ctrlMock)

	ctx := context.Background()
	svc := New(mockJWT, mockPw, mockRepo, mockCache, mockNotify, testAuthConf())

	userID := uuid.New()
	otherID := uuid.New()
	testUser := &models.User{ID: userID, Username: "talek"}
	testSerial := "GLX-0001"
	req := &dto.PairDeviceRequest{Serial: testSerial, Name: "My Glasses"}

	pairedDevice := &models.Device{
		ID:      uuid.New(),
		Serial:  testSerial,
		Name:    "My Glasses",
		OwnerID: &userID,
		Status:  models.DeviceStatusOffline,
	}

	t.Run(
		"NewDeviceIsCreated", func(t *testing.T) {
			mockRepo.EXPECT().
				GetUserByIdentifier(gomock.Any(), "talek").
				Return(testUser, nil)
			mockRepo.EXPECT().
				GetDeviceBySerial(gomock.Any(), testSerial).
				Return(nil, repo.ErrNotFound)
			mockRepo.EXPECT().
				CreateDevice(gomock.Any(), gomock.Any()).
				Return(pairedDevice.ID, nil)
			mockRepo.EXPECT().
				GetDeviceBySerial(gomock.Any(), testSerial).
				Return(pairedDevice, nil)
			mockCache.EXPECT().
				Exists(gomock.Any(), fmt.Sprintf(deviceOnlineKey, testSerial)).
				Return(false)

			res, err := svc.PairDevice(ctx, "talek", req)
			require.NoError(t, err)
			assert.Equal(t, testSerial, res.Serial)
			assert.False(t, res.Online)
			assert.Equal(t, models.DeviceStatusOffline, res.Status)
		},
	)

	t.Run(
		"OwnedByAnotherUser", func(t *testing.T) {
			mockRepo.EXPECT().
				GetUserByIdentifier(gomock.Any(), "talek").
				Return(testUser, nil)
			mockRepo.EXPECT().
				GetDeviceBySerial(gomock.Any(), testSerial).
				Return(&models.Device{Serial: testSerial, OwnerID: &otherID}, nil)

			_, err := svc.PairDevice(ctx, "talek", req)
			assert.ErrorIs(t, err, ErrDeviceAlreadyPaired)
		},
	)

	t.Run(
		"OrphanedDeviceIsRebound", func(t *testing.T) {
			mockRepo.EXPECT().
				GetUserByIdentifier(gomock.Any(), "talek").
				Return(testUser, nil)
			mockRepo.EXPECT().
				GetDeviceBySerial(gomock.Any(), testSerial).
				Return(&models.Device{Serial: testSerial}, nil)
			mockRepo.EXPECT().
				BindDeviceOwner(gomock.Any(), testSerial, userID, req.Name).
				Return(nil)
			mockRepo.EXPECT().
				GetDeviceBySerial(gomock.Any(), testSerial).
				Return(pairedDevice, nil)
			mockCache.EXPECT().
				Exists(gomock.Any(), fmt.Sprintf(deviceOnlineKey, testSerial)).
				Return(false)

			res, err := svc.PairDevice(ctx, "talek", req)
			require.NoError(t, err)
			assert.Equal(t, testSerial, res.Serial)
		},
	)
}

func TestController_Heartbeat(t *testing.T) {
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

	userID := uuid.New()
	testSerial := "GLX-0001"
	battery := 80
	ip := "10.0.0.7"

	t.Run(
		"Success", func(t *testing.T) {
			mockRepo.EXPECT().
				GetDeviceBySerial(gomock.Any(), testSerial).
				Return(
					&models.Device{
						Serial:       testSerial,
						OwnerID:      &userID,
						BatteryLevel: 50,
						IP:           "10.0.0.1",
					}, nil,
				)
			mockCache.EXPECT().
				Set(gomock.Any(), conf.HeartbeatTTL, fmt.Sprintf(deviceOnlineKey, testSerial), "1").
				Return(nil)
			mockRepo.EXPECT().
				UpdateDeviceTelemetry(gomock.Any(), testSerial, &battery, &ip, gomock.Any()).
				Return(nil)

			err := svc.Heartbeat(
				ctx, &dto.HeartbeatRequest{Serial: testSerial, BatteryLevel: &battery, IP: &ip},
			)
			assert.NoError(t, err)
		},
	)

	t.Run(
		"UnchangedTelemetryIsSkipped", func(t *testing.T) {
			mockRepo.EXPECT().
				GetDeviceBySerial(gomock.Any(), testSerial).
				Return(
					&models.Device{
						Serial:       testSerial,
						OwnerID:      &userID,
						BatteryLevel: battery,
						IP:           ip,
					}, nil,
				)
			mockCache.EXPECT().
				Set(gomock.Any(), conf.HeartbeatTTL, fmt.Sprintf(deviceOnlineKey, testSerial), "1").
				Return(nil)
			mockRepo.EXPECT().
				UpdateDeviceTelemetry(gomock.Any(), testSerial, nil, nil, gomock.Any()).
				Return(nil)

			err := svc.Heartbeat(
				ctx, &dto.HeartbeatRequest{Serial: testSerial, BatteryLevel: &battery, IP: &ip},
			)
			assert.NoError(t, err)
		},
	)

	t.Run(
		"UnpairedDeviceIsRejected", func(t *testing.T) {
			mockRepo.EXPECT().
				GetDeviceBySerial(gomock.Any(), testSerial).
				Return(&models.Device{Serial: testSerial}, nil)

			err := svc.Heartbeat(ctx, &dto.HeartbeatRequest{Serial: testSerial})
			assert.ErrorIs(t, err, ErrDeviceNotFound)
		},
	)

	t.Run(
		"UnknownSerial", func(t *testing.T) {
			mockRepo.EXPECT().
				GetDeviceBySerial(gomock.Any(), testSerial).
				Return(nil, repo.ErrNotFound)

			err := svc.Heartbeat(ctx, &dto.HeartbeatRequest{Serial: testSerial})
			assert.ErrorIs(t, err, ErrDeviceNotFound)
		},
	)
}

func TestController_DevicePresence(t *testing.T) {
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

	testSerial := "GLX-0001"
	presenceKey := fmt.Sprintf(deviceOnlineKey, testSerial)

	t.Run(
		"MarkOnline", func(t *testing.T) {
			mockRepo.EXPECT().
				GetDeviceBySerial(gomock.Any(), testSerial).
				Return(&models.Device{Serial: testSerial}, nil)
			mockCache.EXPECT().
				Set(gomock.Any(), conf.HeartbeatTTL, presenceKey, "1").
				Return(nil)
			mockRepo.EXPECT().
				SetDeviceStatus(gomock.Any(), testSerial, models.DeviceStatusOnline, gomock.Any()).
				DoAndReturn(
					func(_ context.Context, _, _ string, connectTime *time.Time) error {
						assert.NotNil(t, connectTime)
						return nil
					},
				)

			assert.NoError(t, svc.MarkDeviceOnline(ctx, testSerial))
		},
	)

	t.Run(
		"MarkOffline", func(t *testing.T) {
			mockRepo.EXPECT().
				GetDeviceBySerial(gomock.Any(), testSerial).
				Return(&models.Device{Serial: testSerial}, nil)
			mockCache.EXPECT().
				Delete(gomock.Any(), presenceKey)
			mockRepo.EXPECT().
				SetDeviceStatus(gomock.Any(), testSerial, models.DeviceStatusOffline, nil).
				Return(nil)

			assert.NoError(t, svc.MarkDeviceOffline(ctx, testSerial))
		},
	)

	t.Run(
		"IsOnline", func(t *testing.T) {
			mockCache.EXPECT().
				Exists(gomock.Any(), presenceKey).
				Return(true)

			assert.True(t, svc.IsDeviceOnline(ctx, testSerial))
		},
	)
}

func TestController_ListDevices(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockJWT := mocks.NewMockTokenPort(ctrlMock)
	mockPw := mocks.NewMockPasswordPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockNotify := mocks.NewMockNotifier(ctrlMock)

	ctx := context.Background()
	svc := New(mockJWT, mockPw, mockRepo, mockCache, mockNotify, testAuthConf())

	userID := uuid.New()
	testUser := &models.User{ID: userID, Username: "talek"}

	mockRepo.EXPECT().
		GetUserByIdentifier(gomock.Any(), "talek").
		Return(testUser, nil)
	mockRepo.EXPECT().
		ListDevicesByOwner(gomock.Any(), userID, 1, 40, gomock.Any()).
		Return(
			&dto.PaginatedDeviceResponse{
				Data: []*dto.DeviceResponse{
					{Serial: "GLX-0001", Status: models.DeviceStatusOnline},
					{Serial: "GLX-0002", Status: models.DeviceStatusOnline},
				},
				Count: 2,
			}, nil,
		)
	mockCache.EXPECT().
		Exists(gomock.Any(), fmt.Sprintf(deviceOnlineKey, "GLX-0001")).
		Return(true)
	mockCache.EXPECT().
		Exists(gomock.Any(), fmt.Sprintf(deviceOnlineKey, "GLX-0002")).
		Return(false)

	res, err := svc.ListDevices(ctx, "talek", 1, 40, nil)
	require.NoError(t, err)
	require.Len(t, res.Data, 2)

	// Presence, not the stored column, decides what the client sees.
	assert.True(t, res.Data[0].Online)
	assert.Equal(t, models.DeviceStatusOnline, res.Data[0].Status)
	assert.False(t, res.Data[1].Online)
	assert.Equal(t, models.DeviceStatusOffline, res.Data[1].Status)
}

func TestController_UnpairDevice(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockJWT := mocks.NewMockTokenPort(ctrlMock)
	mockPw := mocks.NewMockPasswordPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockNotify := mocks.NewMockNotifier(ctrlMock)

	ctx := context.Background()
	svc := New(mockJWT, mockPw, mockRepo, mockCache, mockNotify, testAuthConf())

	userID := uuid.New()
	otherID := uuid.New()
	testUser := &models.User{ID: userID, Username: "talek"}
	testSerial := "GLX-0001"

	t.Run(
		"Success", func(t *testing.T) {
			mockRepo.EXPECT().
				GetUserByIdentifier(gomock.Any(), "talek").
				Return(testUser, nil)
			mockRepo.EXPECT().
				GetDeviceBySerial(gomock.Any(), testSerial).
				Return(&models.Device{Serial: testSerial, OwnerID: &userID}, nil)
			mockCache.EXPECT().
				Delete(gomock.Any(), fmt.Sprintf(deviceOnlineKey, testSerial))
			mockRepo.EXPECT().
				UnpairDevice(gomock.Any(), testSerial).
				Return(nil)

			assert.NoError(t, svc.UnpairDevice(ctx, testSerial, "talek"))
		},
	)

	t.Run(
		"NotTheOwner", func(t *testing.T) {
			mockRepo.EXPECT().
				GetUserByIdentifier(gomock.Any(), "talek").
				Return(testUser, nil)
			mockRepo.EXPECT().
				GetDeviceBySerial(gomock.Any(), testSerial).
				Return(&models.Device{Serial: testSerial, OwnerID: &otherID}, nil)

			assert.ErrorIs(t, svc.UnpairDevice(ctx, testSerial, "talek"), ErrUnauthorizedDeviceAccess)
		},
	)

	t.Run(
		"NotPaired", func(t *testing.T) {
			mockRepo.EXPECT().
				GetUserByIdentifier(gomock.Any(), "talek").
				Return(testUser, nil)
			mockRepo.EXPECT().
				GetDeviceBySerial(gomock.Any(), testSerial).
				Return(&models.Device{Serial: testSerial}, nil)

			assert.ErrorIs(t, svc.UnpairDevice(ctx, testSerial, "talek"), ErrUnauthorizedDeviceAccess)
		},
	)
}
