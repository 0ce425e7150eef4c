package ctrl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/almousleck/glasslink/internal/dto"
	md "github.com/almousleck/glasslink/internal/models"
	"github.com/almousleck/glasslink/internal/repo"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

const deviceOnlineKey = "device:online:%v"

type deviceCtrl interface {
	PairDevice(ctx context.Context, username string, req *dto.PairDeviceRequest) (*dto.DeviceResponse, error)
	ListDevices(
		ctx context.Context,
		username string,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedDeviceResponse, error)
	Heartbeat(ctx context.Context, req *dto.HeartbeatRequest) error
	MarkDeviceOnline(ctx context.Context, serial string) error
	MarkDeviceOffline(ctx context.Context, serial string) error
	IsDeviceOnline(ctx context.Context, serial string) bool
	UpdateFirmware(ctx context.Context, serial, version string) error
	UnpairDevice(ctx context.Context, serial, username string) error
}

// PairDevice binds the device to the requester. Pairing never implies
// connectivity: the record comes out OFFLINE either way.
func (c *Controller) PairDevice(
	ctx context.Context,
	username string,
	req *dto.PairDeviceRequest,
) (*dto.DeviceResponse, error) {
	const op = "devices.PairDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	user, err := c.repo.GetUserByIdentifier(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	d, err := c.repo.GetDeviceBySerial(ctx, req.Serial)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		_, err = c.repo.CreateDevice(
			ctx, &md.Device{
				Serial:  req.Serial,
				Name:    req.Name,
				OwnerID: &user.ID,
				Status:  md.DeviceStatusOffline,
			},
		)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if d.OwnerID != nil && *d.OwnerID != user.ID {
			return nil, ErrDeviceAlreadyPaired
		}

		if err = c.repo.BindDeviceOwner(ctx, req.Serial, user.ID, req.Name); err != nil {
			return nil, err
		}
	}

	d, err = c.repo.GetDeviceBySerial(ctx, req.Serial)
	if err != nil {
		return nil, err
	}

	zap.L().Info(
		"device paired",
		zap.String("op", op),
		zap.String("serial", req.Serial),
		zap.String("userID", user.ID.String()),
	)

	return c.deviceResponse(ctx, d), nil
}

func (c *Controller) ListDevices(
	ctx context.Context,
	username string,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedDeviceResponse, error) {
	const op = "devices.ListDevices.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	user, err := c.repo.GetUserByIdentifier(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	res, err := c.repo.ListDevicesByOwner(ctx, user.ID, page, size, filters)
	if err != nil {
		return nil, err
	}

	// The presence flag, not the stored column, answers "online right now".
	for _, d := range res.Data {
		d.Online = c.IsDeviceOnline(ctx, d.Serial)
		if d.Online {
			d.Status = md.DeviceStatusOnline
		} else {
			d.Status = md.DeviceStatusOffline
		}
	}

	return res, nil
}

// Heartbeat refreshes the presence flag and writes the telemetry audit
// trail. It never touches the status column.
func (c *Controller) Heartbeat(ctx context.Context, req *dto.HeartbeatRequest) error {
	const op = "devices.Heartbeat.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	d, err := c.repo.GetDeviceBySerial(ctx, req.Serial)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrDeviceNotFound
		}
		return err
	}

	if d.OwnerID == nil {
		return ErrDeviceNotFound
	}

	err = c.cache.Set(ctx, c.conf.HeartbeatTTL, fmt.Sprintf(deviceOnlineKey, req.Serial), "1")
	if err != nil {
		return err
	}

	battery := req.BatteryLevel
	if battery != nil && *battery == d.BatteryLevel {
		battery = nil
	}

	ip := req.IP
	if ip != nil && *ip == d.IP {
		ip = nil
	}

	return c.repo.UpdateDeviceTelemetry(ctx, req.Serial, battery, ip, time.Now())
}

// MarkDeviceOnline is the explicit transition for a real-time channel
// connect: presence flag plus persisted status/connect time.
func (c *Controller) MarkDeviceOnline(ctx context.Context, serial string) error {
	const op = "devices.MarkDeviceOnline.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.repo.GetDeviceBySerial(ctx, serial); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrDeviceNotFound
		}
		return err
	}

	err := c.cache.Set(ctx, c.conf.HeartbeatTTL, fmt.Sprintf(deviceOnlineKey, serial), "1")
	if err != nil {
		return err
	}

	now := time.Now()
	return c.repo.SetDeviceStatus(ctx, serial, md.DeviceStatusOnline, &now)
}

func (c *Controller) MarkDeviceOffline(ctx context.Context, serial string) error {
	const op = "devices.MarkDeviceOffline.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.repo.GetDeviceBySerial(ctx, serial); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrDeviceNotFound
		}
		return err
	}

	// Best effort, the presence key expires on its own within HeartbeatTTL.
	if err := c.cache.Delete(ctx, fmt.Sprintf(deviceOnlineKey, serial)); err != nil {
		zap.L().Warn("failed to drop presence key", zap.String("op", op), zap.Error(err))
	}

	return c.repo.SetDeviceStatus(ctx, serial, md.DeviceStatusOffline, nil)
}

func (c *Controller) IsDeviceOnline(ctx context.Context, serial string) bool {
	return c.cache.Exists(ctx, fmt.Sprintf(deviceOnlineKey, serial))
}

func (c *Controller) UpdateFirmware(ctx context.Context, serial, version string) error {
	const op = "devices.UpdateFirmware.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.repo.UpdateFirmware(ctx, serial, version); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrDeviceNotFound
		}
		return err
	}

	zap.L().Info(
		"firmware updated",
		zap.String("op", op),
		zap.String("serial", serial),
		zap.String("version", version),
	)
	return nil
}

// UnpairDevice releases the binding. Only the current owner may do it.
func (c *Controller) UnpairDevice(ctx context.Context, serial, username string) error {
	const op = "devices.UnpairDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	user, err := c.repo.GetUserByIdentifier(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	d, err := c.repo.GetDeviceBySerial(ctx, serial)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrDeviceNotFound
		}
		return err
	}

	if d.OwnerID == nil || *d.OwnerID != user.ID {
		return ErrUnauthorizedDeviceAccess
	}

	if err = c.cache.Delete(ctx, fmt.Sprintf(deviceOnlineKey, serial)); err != nil {
		zap.L().Warn("failed to drop presence key", zap.String("op", op), zap.Error(err))
	}

	if err = c.repo.UnpairDevice(ctx, serial); err != nil {
		return err
	}

	zap.L().Info(
		"device unpaired",
		zap.String("op", op),
		zap.String("serial", serial),
	)
	return nil
}

func (c *Controller) deviceResponse(ctx context.Context, d *md.Device) *dto.DeviceResponse {
	online := c.IsDeviceOnline(ctx, d.Serial)

	status := md.DeviceStatusOffline
	if online {
		status = md.DeviceStatusOnline
	}

	return &dto.DeviceResponse{
		ID:              d.ID,
		Serial:          d.Serial,
		Name:            d.Name,
		Status:          status,
		Online:          online,
		BatteryLevel:    d.BatteryLevel,
		FirmwareVersion: d.FirmwareVersion,
		IP:              d.IP,
		LastHeartbeat:   d.LastHeartbeat,
		ConnectTime:     d.ConnectTime,
	}
}
