package models

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	ID   int64     `db:"id" json:"-"`
	UUID uuid.UUID `db:"uuid" json:"id"`

	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UserID    int64     `db:"user_id" json:"-"`
}
