package db

const tokenCreateQ = `
INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
VALUES ($1, $2, $3)
`

const tokenDeleteByUserQ = `
DELETE FROM refresh_tokens
WHERE user_id = $1
`

// Compare-and-delete: the DELETE claims the row and RETURNING tells the
// caller whether this call was the one that claimed it. Two concurrent
// redemptions of the same token cannot both see a row.
const tokenRedeemQ = `
DELETE FROM refresh_tokens
WHERE token_hash = $1
RETURNING user_id, expires_at
`

// Revocation deletes every token owned by the identity that owns the
// presented one (strict rotation keeps that to a single row).
const tokenRevokeQ = `
DELETE FROM refresh_tokens
WHERE user_id = (
	SELECT user_id FROM refresh_tokens WHERE token_hash = $1
)
`
