package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type deviceListQuery struct {
	countQ    string
	countArgs []any
	dataQ     string
	dataArgs  []any
}

func buildDeviceListQuery(
	ctx context.Context,
	ownerID uuid.UUID,
	page, size int,
	filters map[string]any,
) (deviceListQuery, error) {
	const op = "devices.buildDeviceListQuery.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query := sq.Select().
		From("devices d").
		Where(sq.Eq{"d.owner_id": ownerID}).
		PlaceholderFormat(sq.Dollar)

	if status, ok := filters["status"].(string); ok {
		query = query.Where(sq.Eq{"d.status": status})
	}

	if serial, ok := filters["serial"].(string); ok {
		query = query.Where(sq.Like{"d.serial_number": serial + "%"})
	}

	countSql, countArgs, err := query.Columns("COUNT(DISTINCT d.id)").ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build count query", zap.String("op", op), zap.Error(err))
		return deviceListQuery{}, err
	}

	dataSql, dataArgs, err := query.
		Columns(
			"d.id",
			"d.serial_number",
			"d.name",
			"d.owner_id",
			"d.status",
			"d.battery_level",
			"d.firmware_version",
			"d.ip_address",
			"d.last_heartbeat",
			"d.connect_time",
			"d.created_at",
			"d.updated_at",
		).
		OrderBy("d.created_at DESC").
		Limit(uint64(size)).
		Offset(uint64((page - 1) * size)).
		ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build data query", zap.String("op", op), zap.Error(err))
		return deviceListQuery{}, err
	}

	return deviceListQuery{
		countQ:    countSql,
		countArgs: countArgs,
		dataQ:     dataSql,
		dataArgs:  dataArgs,
	}, nil
}
