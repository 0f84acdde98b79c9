// Package users implements the identity side of the API: registration, token
// login, profile management, password changes and account deletion. Account
// deletion cascades over the caller's owned remainders.
package users

import "time"

// User represents an account as stored in the database. The hashed credential
// is never serialized.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}
