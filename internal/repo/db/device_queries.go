package db

const deviceColumns = `
	d.id,
	d.serial_number,
	d.name,
	d.owner_id,
	d.status,
	d.battery_level,
	d.firmware_version,
	d.ip_address,
	d.last_heartbeat,
	d.connect_time,
	d.created_at,
	d.updated_at
`

const deviceGetBySerialQ = `
SELECT ` + deviceColumns + `
FROM devices d
WHERE d.serial_number = $1
`

const deviceCreateQ = `
INSERT INTO devices (serial_number, name, owner_id, status, battery_level, firmware_version)
VALUES ($1, $2, $3, 'OFFLINE', $4, $5)
RETURNING id
`

const deviceBindOwnerQ = `
UPDATE devices
SET owner_id = $2,
    name = $3,
    status = 'OFFLINE',
    updated_at = now()
WHERE serial_number = $1
`

const deviceTelemetryQ = `
UPDATE devices
SET battery_level = COALESCE($2, battery_level),
    ip_address = COALESCE($3, ip_address),
    last_heartbeat = $4,
    updated_at = now()
WHERE serial_number = $1
`

const deviceSetStatusQ = `
UPDATE devices
SET status = $2,
    connect_time = COALESCE($3, connect_time),
    updated_at = now()
WHERE serial_number = $1
`

const deviceFirmwareQ = `
UPDATE devices
SET firmware_version = $2,
    updated_at = now()
WHERE serial_number = $1
`

const deviceUnpairQ = `
UPDATE devices
SET owner_id = NULL,
    status = 'OFFLINE',
    connect_time = NULL,
    updated_at = now()
WHERE serial_number = $1
`
