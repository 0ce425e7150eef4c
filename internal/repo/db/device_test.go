package db

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	md "github.com/almousleck/glasslink/internal/models"
	"github.com/almousleck/glasslink/internal/repo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetDeviceBySerial(t *testing.T) {
	r, mock := newTestRepo(t)
	ctx := context.Background()
	testID := uuid.New()
	ownerID := uuid.New()

	t.Run(
		"Success", func(t *testing.T) {
			rows := sqlmock.NewRows(
				[]string{
					"id", "serial_number", "name", "owner_id", "status",
					"battery_level", "firmware_version", "ip_address",
					"last_heartbeat", "connect_time", "created_at", "updated_at",
				},
			).AddRow(
				testID, "GLX-0001", "My Glasses", ownerID, "OFFLINE",
				80, "1.0.0", "10.0.0.7",
				nil, nil, time.Now(), time.Now(),
			)

			mock.ExpectQuery(regexp.QuoteMeta(deviceGetBySerialQ)).
				WithArgs("GLX-0001").
				WillReturnRows(rows)

			res, err := r.GetDeviceBySerial(ctx, "GLX-0001")
			require.NoError(t, err)
			assert.Equal(t, testID, res.ID)
			assert.Equal(t, "GLX-0001", res.Serial)
			require.NotNil(t, res.OwnerID)
			assert.Equal(t, ownerID, *res.OwnerID)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"NotFound", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(deviceGetBySerialQ)).
				WithArgs("GLX-9999").
				WillReturnError(sql.ErrNoRows)

			res, err := r.GetDeviceBySerial(ctx, "GLX-9999")
			assert.Nil(t, res)
			assert.ErrorIs(t, err, repo.ErrNotFound)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}

func TestRepository_CreateDevice(t *testing.T) {
	r, mock := newTestRepo(t)
	ctx := context.Background()
	testID := uuid.New()
	ownerID := uuid.New()

	t.Run(
		"DefaultsFirmware", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(deviceCreateQ)).
				WithArgs("GLX-0001", "My Glasses", &ownerID, 0, defaultFirmware).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testID))

			id, err := r.CreateDevice(
				ctx, &md.Device{
					Serial:  "GLX-0001",
					Name:    "My Glasses",
					OwnerID: &ownerID,
				},
			)
			require.NoError(t, err)
			assert.Equal(t, testID, id)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}

func TestRepository_UpdateDeviceTelemetry(t *testing.T) {
	r, mock := newTestRepo(t)
	ctx := context.Background()

	battery := 75
	ip := "10.0.0.7"
	now := time.Now()

	t.Run(
		"Success", func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta(deviceTelemetryQ)).
				WithArgs("GLX-0001", &battery, &ip, now).
				WillReturnResult(sqlmock.NewResult(0, 1))

			assert.NoError(t, r.UpdateDeviceTelemetry(ctx, "GLX-0001", &battery, &ip, now))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"NotFound", func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta(deviceTelemetryQ)).
				WithArgs("GLX-9999", &battery, &ip, now).
				WillReturnResult(sqlmock.NewResult(0, 0))

			err := r.UpdateDeviceTelemetry(ctx, "GLX-9999", &battery, &ip, now)
			assert.ErrorIs(t, err, repo.ErrNotFound)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}

func TestRepository_SetDeviceStatus(t *testing.T) {
	r, mock := newTestRepo(t)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(deviceSetStatusQ)).
		WithArgs("GLX-0001", md.DeviceStatusOnline, &now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, r.SetDeviceStatus(ctx, "GLX-0001", md.DeviceStatusOnline, &now))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UnpairDevice(t *testing.T) {
	r, mock := newTestRepo(t)
	ctx := context.Background()

	t.Run(
		"Success", func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta(deviceUnpairQ)).
				WithArgs("GLX-0001").
				WillReturnResult(sqlmock.NewResult(0, 1))

			assert.NoError(t, r.UnpairDevice(ctx, "GLX-0001"))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"NotFound", func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta(deviceUnpairQ)).
				WithArgs("GLX-9999").
				WillReturnResult(sqlmock.NewResult(0, 0))

			assert.ErrorIs(t, r.UnpairDevice(ctx, "GLX-9999"), repo.ErrNotFound)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}

func TestRepository_ListDevicesByOwner(t *testing.T) {
	r, mock := newTestRepo(t)
	ctx := context.Background()
	ownerID := uuid.New()

	countRows := sqlmock.NewRows([]string{"count"}).AddRow(3)
	dataRows := sqlmock.NewRows(
		[]string{
			"id", "serial_number", "name", "owner_id", "status",
			"battery_level", "firmware_version", "ip_address",
			"last_heartbeat", "connect_time", "created_at", "updated_at",
		},
	).AddRow(
		uuid.New(), "GLX-0001", "My Glasses", ownerID, "OFFLINE",
		80, "1.0.0", "10.0.0.7",
		nil, nil, time.Now(), time.Now(),
	).AddRow(
		uuid.New(), "GLX-0002", "Spare", ownerID, "OFFLINE",
		40, "1.0.0", "10.0.0.8",
		nil, nil, time.Now(), time.Now(),
	)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(ownerID).
		WillReturnRows(countRows)
	mock.ExpectQuery("SELECT d.id").
		WithArgs(ownerID).
		WillReturnRows(dataRows)

	res, err := r.ListDevicesByOwner(ctx, ownerID, 1, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Count)
	assert.Len(t, res.Data, 2)
	assert.Equal(t, 2, res.TotalPages)
	assert.True(t, res.HasNextPage)
	assert.NoError(t, mock.ExpectationsWereMet())
}
