package models

import "time"

// User is the durable account record. PasswordHash is the bcrypt-encoded
// hash; the plaintext password is never stored.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
