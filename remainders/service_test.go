package remainders

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/user/remainders-go/apperror"
)

// fakeStore is an in-memory Store used by the service and handler tests. It
// mirrors the postgres implementation's contract, including the owner-scoped
// NotFound behavior and the partial-update merge.
type fakeStore struct {
	nextID int64
	items  map[int64]*Remainder
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: make(map[int64]*Remainder)}
}

func (f *fakeStore) ListByOwner(_ context.Context, ownerID int64) ([]Remainder, error) {
	out := []Remainder{}
	for _, rem := range f.items {
		if rem.UserID == ownerID {
			out = append(out, *rem)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) GetByID(_ context.Context, ownerID, id int64) (*Remainder, error) {
	rem, ok := f.items[id]
	if !ok || rem.UserID != ownerID {
		return nil, apperror.NewNotFoundError("remainder not found", nil)
	}
	out := *rem
	return &out, nil
}

func (f *fakeStore) Create(_ context.Context, rem *Remainder) (*Remainder, error) {
	f.nextID++
	stored := *rem
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.items[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (f *fakeStore) UpdatePartial(_ context.Context, ownerID, id int64, req UpdateRequest) (*Remainder, error) {
	rem, ok := f.items[id]
	if !ok || rem.UserID != ownerID {
		return nil, apperror.NewNotFoundError("remainder not found", nil)
	}
	if req.Title != nil {
		rem.Title = *req.Title
	}
	if req.Description != nil {
		rem.Description = req.Description
	}
	if req.RemainderDate != nil {
		rem.RemainderDate = *req.RemainderDate
	}
	if req.Permanent != nil {
		rem.Permanent = *req.Permanent
	}
	out := *rem
	return &out, nil
}

func (f *fakeStore) Replace(_ context.Context, ownerID, id int64, req ReplaceRequest) (*Remainder, error) {
	rem, ok := f.items[id]
	if !ok || rem.UserID != ownerID {
		return nil, apperror.NewNotFoundError("remainder not found", nil)
	}
	rem.Title = req.Title
	rem.Description = req.Description
	rem.RemainderDate = req.RemainderDate
	rem.Permanent = req.Permanent
	out := *rem
	return &out, nil
}

func (f *fakeStore) Delete(_ context.Context, ownerID, id int64) error {
	rem, ok := f.items[id]
	if !ok || rem.UserID != ownerID {
		return apperror.NewNotFoundError("remainder not found", nil)
	}
	delete(f.items, id)
	return nil
}

func strPtr(s string) *string { return &s }

func createTestRemainder(t *testing.T, svc *Service, callerID int64, title string) *Response {
	t.Helper()
	resp, err := svc.Create(context.Background(), callerID, CreateRequest{
		Title:         title,
		Description:   strPtr("Test description."),
		RemainderDate: NewDate(2027, time.February, 27),
		Permanent:     true,
	})
	require.NoError(t, err)
	return resp
}

func TestListScopedToOwner(t *testing.T) {
	svc := NewService(newFakeStore())

	// Interleaved creates for two users.
	createTestRemainder(t, svc, 1, "mine 1")
	createTestRemainder(t, svc, 2, "other 1")
	createTestRemainder(t, svc, 1, "mine 2")
	createTestRemainder(t, svc, 2, "other 2")
	createTestRemainder(t, svc, 1, "mine 3")

	mine, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	for _, rem := range mine {
		require.Contains(t, rem.Title, "mine")
	}

	other, err := svc.List(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, other, 2)
}

func TestListEmptyIsNotNil(t *testing.T) {
	svc := NewService(newFakeStore())

	list, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestGetOtherOwnersRemainderIsNotFound(t *testing.T) {
	svc := NewService(newFakeStore())
	rem := createTestRemainder(t, svc, 1, "mine")

	_, err := svc.Get(context.Background(), 2, rem.ID)
	require.True(t, apperror.IsNotFound(err))

	// The owner still sees it.
	got, err := svc.Get(context.Background(), 1, rem.ID)
	require.NoError(t, err)
	require.Equal(t, "mine", got.Title)
}

func TestCreateForcesOwnership(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	resp := createTestRemainder(t, svc, 7, "birthday")
	require.Equal(t, int64(7), store.items[resp.ID].UserID)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.Create(context.Background(), 1, CreateRequest{
		RemainderDate: NewDate(2027, time.January, 1),
	})
	require.True(t, apperror.IsValidationError(err))

	_, err = svc.Create(context.Background(), 1, CreateRequest{Title: "no date"})
	require.True(t, apperror.IsValidationError(err))
}

func TestPartialUpdateChangesOnlySuppliedFields(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	rem := createTestRemainder(t, svc, 1, "Agatka's birthday")

	newDate := NewDate(2027, time.February, 28)
	updated, err := svc.Update(context.Background(), 1, rem.ID, UpdateRequest{RemainderDate: &newDate})
	require.NoError(t, err)

	require.Equal(t, "Agatka's birthday", updated.Title)
	require.Equal(t, "Test description.", *updated.Description)
	require.True(t, updated.Permanent)
	require.True(t, newDate.Equal(updated.RemainderDate))
}

func TestPartialUpdateOtherOwnerIsNotFound(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	rem := createTestRemainder(t, svc, 1, "mine")

	title := "hijacked"
	_, err := svc.Update(context.Background(), 2, rem.ID, UpdateRequest{Title: &title})
	require.True(t, apperror.IsNotFound(err))
	require.Equal(t, "mine", store.items[rem.ID].Title)
}

func TestReplaceResetsOmittedFields(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	rem := createTestRemainder(t, svc, 1, "before") // permanent=true, has description

	updated, err := svc.Replace(context.Background(), 1, rem.ID, ReplaceRequest{
		Title:         "Updated Title",
		RemainderDate: NewDate(2027, time.January, 1),
		// Description and Permanent omitted: they reset to type defaults.
	})
	require.NoError(t, err)

	require.Equal(t, "Updated Title", updated.Title)
	require.False(t, updated.Permanent)
	require.Nil(t, updated.Description)
	require.Equal(t, int64(1), store.items[rem.ID].UserID)
}

func TestReplaceValidation(t *testing.T) {
	svc := NewService(newFakeStore())
	rem := createTestRemainder(t, svc, 1, "mine")

	_, err := svc.Replace(context.Background(), 1, rem.ID, ReplaceRequest{
		RemainderDate: NewDate(2027, time.January, 1),
	})
	require.True(t, apperror.IsValidationError(err))

	_, err = svc.Replace(context.Background(), 1, rem.ID, ReplaceRequest{Title: "no date"})
	require.True(t, apperror.IsValidationError(err))
}

func TestDeleteOtherOwnerIsNotFound(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	rem := createTestRemainder(t, svc, 1, "mine")

	err := svc.Delete(context.Background(), 2, rem.ID)
	require.True(t, apperror.IsNotFound(err))
	require.Contains(t, store.items, rem.ID)
}

func TestDeleteSuccess(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	rem := createTestRemainder(t, svc, 1, "mine")

	require.NoError(t, svc.Delete(context.Background(), 1, rem.ID))
	require.NotContains(t, store.items, rem.ID)
}
