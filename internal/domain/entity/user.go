package entity

import "time"

// User represents an account. Email is unique; the password is stored
// only as a bcrypt hash and never leaves the domain on read paths.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
