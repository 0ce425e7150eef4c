package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is the persisted half of the token pair. Only a sha256
// fingerprint of the opaque token is stored; at most one row exists per
// user at any instant (strict rotation).
type RefreshToken struct {
	ID        uint64    `db:"id"         json:"id"`
	UserID    uuid.UUID `db:"user_id"    json:"userId"`
	TokenHash string    `db:"token_hash" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expiresAt"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
