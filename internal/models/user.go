package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID                  uuid.UUID  `db:"id"                    json:"id"`
	Username            string     `db:"username"              json:"username"`
	Phone               string     `db:"phone_number"          json:"phone"`
	Password            string     `db:"password_hash"         json:"-"`
	Role                string     `db:"role"                  json:"role"`
	PhoneVerified       bool       `db:"phone_verified"        json:"phoneVerified"`
	FailedLoginAttempts int        `db:"failed_login_attempts" json:"-"`
	Locked              bool       `db:"locked"                json:"-"`
	LockedAt            *time.Time `db:"locked_at"             json:"-"`
	CreatedAt           time.Time  `db:"created_at"            json:"createdAt"`
	UpdatedAt           time.Time  `db:"updated_at"            json:"updatedAt"`
}
