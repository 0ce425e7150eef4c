package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DeviceStatusOnline  = "ONLINE"
	DeviceStatusOffline = "OFFLINE"
)

// Device is the persisted record of a paired unit. Status and the telemetry
// columns are last-known audit values; whether the device is online right
// now is answered by the ephemeral presence flag, not by this row.
type Device struct {
	ID              uuid.UUID  `db:"id"               json:"id"`
	Serial          string     `db:"serial_number"    json:"serial"`
	Name            string     `db:"name"             json:"name"`
	OwnerID         *uuid.UUID `db:"owner_id"         json:"ownerId"`
	Status          string     `db:"status"           json:"status"`
	BatteryLevel    int        `db:"battery_level"    json:"batteryLevel"`
	FirmwareVersion string     `db:"firmware_version" json:"firmwareVersion"`
	IP              string     `db:"ip_address"       json:"ip"`
	LastHeartbeat   *time.Time `db:"last_heartbeat"   json:"lastHeartbeat"`
	ConnectTime     *time.Time `db:"connect_time"     json:"connectTime"`
	CreatedAt       time.Time  `db:"created_at"       json:"createdAt"`
	UpdatedAt       time.Time  `db:"updated_at"       json:"updatedAt"`
}
