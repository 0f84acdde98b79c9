// Package remainders implements the remainder records feature: CRUD over
// dated reminders, each owned by exactly one user. Every operation is scoped
// to the authenticated caller; a lookup for a record owned by someone else is
// indistinguishable from a lookup for a record that does not exist.
package remainders

import "time"

// Remainder represents a reminder record as stored in the database.
// Ownership is set once at creation and never changes afterwards.
type Remainder struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"-"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	RemainderDate Date      `json:"remainder_date"`
	Permanent     bool      `json:"permanent"`
	CreatedAt     time.Time `json:"created_at"`
}
