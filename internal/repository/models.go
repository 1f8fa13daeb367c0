package repository

import "time"

type User struct {
	ID         string
	Username   string
	Password   string // plaintext, never leaves the process
	DateJoined time.Time
}

// UserUpdate carries the fields to overwrite. Nil fields are left untouched.
type UserUpdate struct {
	Username *string
	Password *string
}

// UserView is the only user shape allowed to cross to an external caller.
type UserView struct {
	Name string    `json:"name"`
	Date time.Time `json:"date"`
	ID   string    `json:"id"`
}
