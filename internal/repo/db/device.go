package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/almousleck/glasslink/internal/dto"
	md "github.com/almousleck/glasslink/internal/models"
	"github.com/almousleck/glasslink/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

const defaultFirmware = "1.0.0"

func (r *Repository) GetDeviceBySerial(ctx context.Context, serial string) (*md.Device, error) {
	const op = "devices.GetDeviceBySerial.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Device{}
	err := r.conn.GetContext(ctx, res, deviceGetBySerialQ, serial)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateDevice(ctx context.Context, d *md.Device) (uuid.UUID, error) {
	const op = "devices.CreateDevice.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	firmware := d.FirmwareVersion
	if firmware == "" {
		firmware = defaultFirmware
	}

	var id uuid.UUID
	err := r.conn.QueryRowxContext(
		ctx, deviceCreateQ, d.Serial, d.Name, d.OwnerID, d.BatteryLevel, firmware,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) BindDeviceOwner(ctx context.Context, serial string, ownerID uuid.UUID, name string) error {
	const op = "devices.BindDeviceOwner.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, deviceBindOwnerQ, serial, ownerID, name)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) ListDevicesByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedDeviceResponse, error) {
	const op = "devices.ListDevicesByOwner.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, err := buildDeviceListQuery(ctx, ownerID, page, size, filters)
	if err != nil {
		return nil, err
	}

	var count int64
	if err = r.conn.GetContext(ctx, &count, q.countQ, q.countArgs...); err != nil {
		return nil, err
	}

	devices := make([]md.Device, 0, size)
	if err = r.conn.SelectContext(ctx, &devices, q.dataQ, q.dataArgs...); err != nil {
		return nil, err
	}

	data := make([]*dto.DeviceResponse, 0, len(devices))
	for i := range devices {
		d := devices[i]
		data = append(
			data, &dto.DeviceResponse{
				ID:              d.ID,
				Serial:          d.Serial,
				Name:            d.Name,
				Status:          d.Status,
				BatteryLevel:    d.BatteryLevel,
				FirmwareVersion: d.FirmwareVersion,
				IP:              d.IP,
				LastHeartbeat:   d.LastHeartbeat,
				ConnectTime:     d.ConnectTime,
			},
		)
	}

	totalPages := int((count + int64(size) - 1) / int64(size))
	return &dto.PaginatedDeviceResponse{
		Data:        data,
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
	}, nil
}

// UpdateDeviceTelemetry writes the heartbeat audit fields. Nil battery/ip
// leave the stored value untouched.
func (r *Repository) UpdateDeviceTelemetry(
	ctx context.Context,
	serial string,
	battery *int,
	ip *string,
	at time.Time,
) error {
	const op = "devices.UpdateDeviceTelemetry.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, deviceTelemetryQ, serial, battery, ip, at)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) SetDeviceStatus(
	ctx context.Context,
	serial, status string,
	connectTime *time.Time,
) error {
	const op = "devices.SetDeviceStatus.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, deviceSetStatusQ, serial, status, connectTime)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) UpdateFirmware(ctx context.Context, serial, version string) error {
	const op = "devices.UpdateFirmware.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, deviceFirmwareQ, serial, version)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) UnpairDevice(ctx context.Context, serial string) error {
	const op = "devices.UnpairDevice.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, deviceUnpairQ, serial)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}
