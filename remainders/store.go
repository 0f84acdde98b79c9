package remainders

import "context"

// Store is the persistence interface for remainders. The owner ID is a
// mandatory predicate on every lookup and mutation, never an optional filter;
// an ownership mismatch surfaces as NotFoundError exactly like a missing row.
type Store interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]Remainder, error)
	GetByID(ctx context.Context, ownerID, id int64) (*Remainder, error)
	Create(ctx context.Context, rem *Remainder) (*Remainder, error)
	UpdatePartial(ctx context.Context, ownerID, id int64, req UpdateRequest) (*Remainder, error)
	Replace(ctx context.Context, ownerID, id int64, req ReplaceRequest) (*Remainder, error)
	Delete(ctx context.Context, ownerID, id int64) error
}
