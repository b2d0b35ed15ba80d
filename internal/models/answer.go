package models

import (
	"time"

	"github.com/google/uuid"
)

type Answer struct {
	ID   int64     `db:"id" json:"-"`
	UUID uuid.UUID `db:"uuid" json:"id"`

	Ans        string    `db:"ans" json:"answer"`
	CreatedAt  time.Time `db:"created_at" json:"-"`
	UserID     int64     `db:"user_id" json:"-"`
	QuestionID int64     `db:"question_id" json:"-"`
}
