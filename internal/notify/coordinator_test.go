package notify

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rupal-draft/Tripezzy-Backend-sub000/internal/identity"
	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/models"
)

// fakeDirectory implements Directory with canned data.
type fakeDirectory struct {
	users    []models.User
	admins   []models.User
	listErr  error
	byID     map[int64]models.User
	byIDErr  error
	listCall int
}

func (f *fakeDirectory) GetAllUsers(ctx context.Context) ([]models.User, error) {
	f.listCall++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.users, nil
}

func (f *fakeDirectory) GetAllAdminUsers(ctx context.Context) ([]models.User, error) {
	f.listCall++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.admins, nil
}

func (f *fakeDirectory) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	if f.byIDErr != nil {
		return models.User{}, f.byIDErr
	}
	user, ok := f.byID[id]
	if !ok {
		return models.User{}, identity.ErrNotFound
	}
	return user, nil
}

// fakeStore records saves and can be told to fail specific calls (0-based).
type fakeStore struct {
	saved  []models.Notification
	failOn map[int]error
	calls  int
}

func (f *fakeStore) Save(ctx context.Context, userID int64, message string) (models.Notification, error) {
	idx := f.calls
	f.calls++
	if err, ok := f.failOn[idx]; ok {
		return models.Notification{}, err
	}
	n := models.Notification{ID: fmt.Sprintf("id-%d", idx), UserID: userID, Message: message}
	f.saved = append(f.saved, n)
	return n, nil
}

func admins(n int) []models.User {
	users := make([]models.User, n)
	for i := range users {
		users[i] = models.User{ID: int64(100 + i), Role: models.RoleAdmin}
	}
	return users
}

func TestBroadcast_AllAdminsNotified(t *testing.T) {
	directory := &fakeDirectory{admins: admins(3)}
	store := &fakeStore{}
	coordinator := NewCoordinator(directory, store, nil)

	event := models.BookingCreatedEvent{Booking: 42, User: 7}
	if err := coordinator.Handle(context.Background(), event, "corr-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(store.saved) != 3 {
		t.Fatalf("expected 3 records, got %d", len(store.saved))
	}
	for i, n := range store.saved {
		if n.UserID != int64(100+i) {
			t.Errorf("record %d: expected userId %d, got %d", i, 100+i, n.UserID)
		}
		if n.Message != "New booking received with ID: 42" {
			t.Errorf("record %d: unexpected message %q", i, n.Message)
		}
	}
}

func TestBroadcast_StoreFailureIsolatedPerRecipient(t *testing.T) {
	directory := &fakeDirectory{admins: admins(4)}
	store := &fakeStore{failOn: map[int]error{1: errors.New("constraint violation")}}
	coordinator := NewCoordinator(directory, store, nil)

	event := models.BookingCreatedEvent{Booking: 42}
	if err := coordinator.Handle(context.Background(), event, "corr-2"); err != nil {
		t.Fatalf("best-effort failure must not escape the handler, got %v", err)
	}

	// Recipient 1 missed out; 0, 2 and 3 still got theirs.
	if len(store.saved) != 3 {
		t.Fatalf("expected 3 records, got %d", len(store.saved))
	}
	got := map[int64]bool{}
	for _, n := range store.saved {
		got[n.UserID] = true
	}
	for _, id := range []int64{100, 102, 103} {
		if !got[id] {
			t.Errorf("expected record for user %d", id)
		}
	}
	if got[101] {
		t.Error("did not expect a record for the failed recipient")
	}
}

func TestBroadcast_ResolutionFailureIsRetryable(t *testing.T) {
	directory := &fakeDirectory{listErr: identity.ErrUnavailable}
	store := &fakeStore{}
	coordinator := NewCoordinator(directory, store, nil)

	event := models.BlogCreatedEvent{Blog: 9, Title: "Alps", Author: 3}
	err := coordinator.Handle(context.Background(), event, "corr-3")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !IsRetryable(err) {
		t.Errorf("expected a retryable error, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Errorf("expected zero records before resolution, got %d", len(store.saved))
	}
}

func TestBroadcast_BlogCreatedGoesToAllUsers(t *testing.T) {
	directory := &fakeDirectory{users: []models.User{{ID: 1}, {ID: 2}, {ID: 3}}}
	store := &fakeStore{}
	coordinator := NewCoordinator(directory, store, nil)

	event := models.BlogCreatedEvent{Blog: 9, Title: "Alps", Author: 3}
	if err := coordinator.Handle(context.Background(), event, "corr-4"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(store.saved) != 3 {
		t.Fatalf("expected 3 records, got %d", len(store.saved))
	}
	for _, n := range store.saved {
		if n.Message != "New blog created by 3 with ID: 9" {
			t.Errorf("unexpected message %q", n.Message)
		}
	}
}

func TestTargeted_BookingConfirmed(t *testing.T) {
	directory := &fakeDirectory{byID: map[int64]models.User{
		7: {ID: 7, FirstName: "Ana", Email: "a@x.com"},
	}}
	store := &fakeStore{}
	coordinator := NewCoordinator(directory, store, nil)

	event := models.BookingConfirmedEvent{Booking: 42, User: 7}
	if err := coordinator.Handle(context.Background(), event, "corr-5"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(store.saved) != 1 {
		t.Fatalf("expected exactly 1 record, got %d", len(store.saved))
	}
	if store.saved[0].UserID != 7 {
		t.Errorf("expected userId 7, got %d", store.saved[0].UserID)
	}
	if store.saved[0].Message != "Your booking with ID 42 has been confirmed" {
		t.Errorf("unexpected message %q", store.saved[0].Message)
	}
}

func TestTargeted_RecipientNotFound(t *testing.T) {
	directory := &fakeDirectory{byID: map[int64]models.User{}}
	store := &fakeStore{}
	coordinator := NewCoordinator(directory, store, nil)

	event := models.BlogLikedEvent{Blog: 9, User: 404}
	err := coordinator.Handle(context.Background(), event, "corr-6")
	if err == nil {
		t.Fatal("expected an error for a missing recipient")
	}
	if !errors.Is(err, identity.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if IsRetryable(err) {
		t.Error("a missing user must not be retryable: redelivery cannot fix it")
	}
	if len(store.saved) != 0 {
		t.Errorf("expected zero records, got %d", len(store.saved))
	}
}

func TestTargeted_ResolutionUnavailableIsRetryable(t *testing.T) {
	directory := &fakeDirectory{byIDErr: identity.ErrUnavailable}
	store := &fakeStore{}
	coordinator := NewCoordinator(directory, store, nil)

	event := models.CheckoutProductEvent{ProductName: "Poles", User: 7}
	err := coordinator.Handle(context.Background(), event, "corr-7")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !IsRetryable(err) {
		t.Errorf("expected a retryable error, got %v", err)
	}
}

func TestTargeted_StoreFailureIsBestEffort(t *testing.T) {
	directory := &fakeDirectory{byID: map[int64]models.User{7: {ID: 7}}}
	store := &fakeStore{failOn: map[int]error{0: errors.New("tx aborted")}}
	coordinator := NewCoordinator(directory, store, nil)

	event := models.BookingStatusUpdatedEvent{Booking: 42, Status: "PENDING", User: 7}
	if err := coordinator.Handle(context.Background(), event, "corr-8"); err != nil {
		t.Fatalf("best-effort failure must not escape the handler, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Errorf("expected zero records, got %d", len(store.saved))
	}
}

func TestRedelivery_DuplicatesBySpecification(t *testing.T) {
	// Events carry no id, so reprocessing a delivery duplicates its records.
	directory := &fakeDirectory{byID: map[int64]models.User{7: {ID: 7}}}
	store := &fakeStore{}
	coordinator := NewCoordinator(directory, store, nil)

	event := models.BookingConfirmedEvent{Booking: 42, User: 7}
	for i := 0; i < 2; i++ {
		if err := coordinator.Handle(context.Background(), event, "corr-9"); err != nil {
			t.Fatalf("attempt %d: expected no error, got %v", i, err)
		}
	}

	if len(store.saved) != 2 {
		t.Fatalf("expected 2 records for the same logical event, got %d", len(store.saved))
	}
	if store.saved[0].Message != store.saved[1].Message {
		t.Error("expected identical messages on both records")
	}
	if store.saved[0].ID == store.saved[1].ID {
		t.Error("expected distinct record ids")
	}
}
