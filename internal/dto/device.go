package dto

import (
	"time"

	"github.com/google/uuid"
)

type PairDeviceRequest struct {
	Serial string `json:"serial" validate:"required"`
	Name   string `json:"name"   validate:"required"`
}

type HeartbeatRequest struct {
	Serial       string  `json:"serial" validate:"required"`
	BatteryLevel *int    `json:"batteryLevel" validate:"omitempty,min=0,max=100"`
	IP           *string `json:"ip"           validate:"omitempty,ip"`
}

type FirmwareRequest struct {
	Version string `json:"version" validate:"required"`
}

type DeviceResponse struct {
	ID              uuid.UUID  `json:"id"`
	Serial          string     `json:"serial"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	Online          bool       `json:"online"`
	BatteryLevel    int        `json:"batteryLevel"`
	FirmwareVersion string     `json:"firmwareVersion"`
	IP              string     `json:"ip"`
	LastHeartbeat   *time.Time `json:"lastHeartbeat"`
	ConnectTime     *time.Time `json:"connectTime"`
}

type PaginatedDeviceResponse struct {
	Data        []*DeviceResponse `json:"data"`
	Count       int64             `json:"count"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
	HasNextPage bool              `json:"hasNextPage"`
}
