package models

import (
	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleNonAdmin UserRole = "nonadmin"
)

// User holds an account row. Password and Salt never leave the service layer.
type User struct {
	ID   int64     `db:"id" json:"-"`
	UUID uuid.UUID `db:"uuid" json:"id"`

	FirstName string `db:"firstname" json:"firstName"`
	LastName  string `db:"lastname" json:"lastName"`
	Username  string `db:"username" json:"userName"`
	Email     string `db:"email" json:"emailAddress"`

	Password string `db:"password" json:"-"`
	Salt     string `db:"salt" json:"-"`

	Country       string `db:"country" json:"country"`
	AboutMe       string `db:"aboutme" json:"aboutMe"`
	Dob           string `db:"dob" json:"dob"`
	ContactNumber string `db:"contactnumber" json:"contactNumber"`

	Role UserRole `db:"role" json:"role"`
}
