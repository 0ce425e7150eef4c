package db

const userColumns = `
	u.id,
	u.username,
	u.phone_number,
	u.password_hash,
	u.role,
	u.phone_verified,
	u.failed_login_attempts,
	u.locked,
	u.locked_at,
	u.created_at,
	u.updated_at
`

const userGetByIdentifierQ = `
SELECT ` + userColumns + `
FROM users u
WHERE u.username = $1 OR u.phone_number = $1
`

const userGetByPhoneQ = `
SELECT ` + userColumns + `
FROM users u
WHERE u.phone_number = $1
`

const userGetByIDQ = `
SELECT ` + userColumns + `
FROM users u
WHERE u.id = $1
`

const userCreateQ = `
INSERT INTO users (username, phone_number, password_hash, role, phone_verified)
VALUES ($1, $2, $3, $4, FALSE)
RETURNING id
`

const userUpdatePasswordQ = `
UPDATE users
SET password_hash = $2,
    updated_at = now()
WHERE id = $1
`

const userSetPhoneVerifiedQ = `
UPDATE users
SET phone_verified = TRUE,
    updated_at = now()
WHERE phone_number = $1
`

// Single-statement increment so concurrent failures on the same identity
// are both counted: the row lock serializes the read-modify-write.
const userIncrementFailedQ = `
UPDATE users
SET failed_login_attempts = failed_login_attempts + 1,
    updated_at = now()
WHERE username = $1 OR phone_number = $1
RETURNING id, phone_number, failed_login_attempts
`

const userLockQ = `
UPDATE users
SET locked = TRUE,
    locked_at = $2,
    updated_at = now()
WHERE id = $1
`

const userResetLockoutQ = `
UPDATE users
SET failed_login_attempts = 0,
    locked = FALSE,
    locked_at = NULL,
    updated_at = now()
WHERE (username = $1 OR phone_number = $1)
  AND (failed_login_attempts > 0 OR locked)
`
