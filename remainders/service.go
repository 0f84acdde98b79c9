package remainders

import (
	"context"

	"github.com/user/remainders-go/apperror"
)

// Service holds the remainder business logic on top of a Store. The caller's
// user ID accompanies every operation; the service never operates unscoped.
type Service struct {
	store Store
}

// NewService creates a new Service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns the caller's remainders.
func (s *Service) List(ctx context.Context, callerID int64) ([]Response, error) {
	remainders, err := s.store.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, err
	}

	responses := make([]Response, 0, len(remainders))
	for i := range remainders {
		responses = append(responses, *responseFrom(&remainders[i]))
	}
	return responses, nil
}

// Get returns one of the caller's remainders by ID.
func (s *Service) Get(ctx context.Context, callerID, id int64) (*Response, error) {
	rem, err := s.store.GetByID(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	return responseFrom(rem), nil
}

// Create stores a new remainder owned by the caller. Ownership comes from the
// authenticated identity, never from the payload.
func (s *Service) Create(ctx context.Context, callerID int64, req CreateRequest) (*Response, error) {
	if req.Title == "" {
		return nil, apperror.NewValidationError("title is required", nil)
	}
	if req.RemainderDate.IsZero() {
		return nil, apperror.NewValidationError("remainder_date is required", nil)
	}

	rem := &Remainder{
		UserID:        callerID,
		Title:         req.Title,
		Description:   req.Description,
		RemainderDate: req.RemainderDate,
		Permanent:     req.Permanent,
	}

	created, err := s.store.Create(ctx, rem)
	if err != nil {
		return nil, err
	}
	return responseFrom(created), nil
}

// Update applies a partial update: only the supplied fields change.
func (s *Service) Update(ctx context.Context, callerID, id int64, req UpdateRequest) (*Response, error) {
	if req.Title != nil && *req.Title == "" {
		return nil, apperror.NewValidationError("title must not be empty", nil)
	}
	if req.RemainderDate != nil && req.RemainderDate.IsZero() {
		return nil, apperror.NewValidationError("remainder_date must be a valid date", nil)
	}

	rem, err := s.store.UpdatePartial(ctx, callerID, id, req)
	if err != nil {
		return nil, err
	}
	return responseFrom(rem), nil
}

// Replace applies a full update: every mutable field takes the payload value,
// omitted ones reset to their type default.
func (s *Service) Replace(ctx context.Context, callerID, id int64, req ReplaceRequest) (*Response, error) {
	if req.Title == "" {
		return nil, apperror.NewValidationError("title is required", nil)
	}
	if req.RemainderDate.IsZero() {
		return nil, apperror.NewValidationError("remainder_date is required", nil)
	}

	rem, err := s.store.Replace(ctx, callerID, id, req)
	if err != nil {
		return nil, err
	}
	return responseFrom(rem), nil
}

// Delete removes one of the caller's remainders.
func (s *Service) Delete(ctx context.Context, callerID, id int64) error {
	return s.store.Delete(ctx, callerID, id)
}
