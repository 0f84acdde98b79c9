package users

import "context"

// Store is the persistence interface for accounts. Implementations return
// apperror types: NotFoundError for missing rows, ValidationError for
// duplicate emails, DatabaseError otherwise.
type Store interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	UpdateName(ctx context.Context, id int64, name string) (*User, error)
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error
	// Delete removes the account and every remainder it owns, atomically.
	Delete(ctx context.Context, id int64) error
}
