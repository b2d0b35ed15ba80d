package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// UserAuth is one issued session token. Rows are never deleted; sign-out
// stamps LogoutAt exactly once and the row stays as history.
type UserAuth struct {
	ID   int64     `db:"id"`
	UUID uuid.UUID `db:"uuid"`

	UserID      int64  `db:"user_id"`
	AccessToken string `db:"access_token"`

	LoginAt   time.Time    `db:"login_at"`
	ExpiresAt time.Time    `db:"expires_at"`
	LogoutAt  sql.NullTime `db:"logout_at"`
}
