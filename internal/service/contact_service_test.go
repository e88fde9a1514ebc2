package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/portfolio/backend/internal/model"
)

// ---------------------------------------------------------------------------
// mocks
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	createFunc      func(ctx context.Context, msg *model.ContactMessage) error
	markReadFunc    func(ctx context.Context, id string) error
	markRepliedFunc func(ctx context.Context, id string) error
	listFunc        func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
}

func (m *mockContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, msg)
	}
	return nil
}

func (m *mockContactRepository) MarkRead(ctx context.Context, id string) error {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id)
	}
	return nil
}

func (m *mockContactRepository) MarkReplied(ctx context.Context, id string) error {
	if m.markRepliedFunc != nil {
		return m.markRepliedFunc(ctx, id)
	}
	return nil
}

func (m *mockContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

type mockNotifier struct {
	notifyFunc func(ctx context.Context, msg *model.ContactMessage) error
	calls      int
}

func (m *mockNotifier) Notify(ctx context.Context, msg *model.ContactMessage) error {
	m.calls++
	if m.notifyFunc != nil {
		return m.notifyFunc(ctx, msg)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestContactService_Submit_PersistsThenNotifies(t *testing.T) {
	var saved *model.ContactMessage
	repo := &mockContactRepository{
		createFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			msg.ID = "m1"
			msg.CreatedAt = time.Now()
			saved = msg
			return nil
		},
	}
	var notified *model.ContactMessage
	notifier := &mockNotifier{
		notifyFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			notified = msg
			return nil
		},
	}
	svc := NewContactService(repo, notifier)

	msg := &model.ContactMessage{
		Name:    "Jordan Lee",
		Email:   "jordan@example.com",
		Subject: "Collab",
		Message: "I would like to discuss a project with you.",
	}
	res, err := svc.Submit(context.Background(), msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved == nil {
		t.Fatal("expected Create to be called")
	}
	if notified == nil {
		t.Fatal("expected Notify to be called")
	}
	if notified.ID != "m1" {
		t.Errorf("expected notifier to see the persisted message, got id %q", notified.ID)
	}
	if !res.OperatorNotified {
		t.Error("expected OperatorNotified=true when Notify succeeds")
	}
	if res.Message != msg {
		t.Error("expected result to carry the stored message")
	}
}

// A storage failure must propagate as an error and suppress notification.
func TestContactService_Submit_StorageError(t *testing.T) {
	repo := &mockContactRepository{
		createFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return errors.New("db write failed")
		},
	}
	notifier := &mockNotifier{}
	svc := NewContactService(repo, notifier)

	_, err := svc.Submit(context.Background(), &model.ContactMessage{Email: "a@b.com"})
	if err == nil {
		t.Fatal("expected error from repository, got nil")
	}
	if notifier.calls != 0 {
		t.Errorf("expected no notification after storage failure, got %d calls", notifier.calls)
	}
}

// An operator alert failure degrades the result but is not an error:
// the message is already stored.
func TestContactService_Submit_NotificationFailure(t *testing.T) {
	repo := &mockContactRepository{}
	notifier := &mockNotifier{
		notifyFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return errors.New("smtp down")
		},
	}
	svc := NewContactService(repo, notifier)

	res, err := svc.Submit(context.Background(), &model.ContactMessage{Email: "a@b.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OperatorNotified {
		t.Error("expected OperatorNotified=false when the operator alert fails")
	}
}

// ---------------------------------------------------------------------------
// flag and list passthroughs
// ---------------------------------------------------------------------------

func TestContactService_MarkRead_Forwards(t *testing.T) {
	var gotID string
	repo := &mockContactRepository{
		markReadFunc: func(ctx context.Context, id string) error {
			gotID = id
			return nil
		},
	}
	svc := NewContactService(repo, &mockNotifier{})

	if err := svc.MarkRead(context.Background(), "m42"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != "m42" {
		t.Errorf("expected id m42 forwarded, got %q", gotID)
	}
}

func TestContactService_MarkReplied_Forwards(t *testing.T) {
	var gotID string
	repo := &mockContactRepository{
		markRepliedFunc: func(ctx context.Context, id string) error {
			gotID = id
			return nil
		},
	}
	svc := NewContactService(repo, &mockNotifier{})

	if err := svc.MarkReplied(context.Background(), "m7"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != "m7" {
		t.Errorf("expected id m7 forwarded, got %q", gotID)
	}
}

func TestContactService_List_ForwardsOptions(t *testing.T) {
	var captured model.ContactListOptions
	repo := &mockContactRepository{
		listFunc: func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
			captured = opts
			return nil, nil
		},
	}
	svc := NewContactService(repo, &mockNotifier{})

	read := false
	opts := model.ContactListOptions{Read: &read, Limit: 10, Offset: 5}
	if _, err := svc.List(context.Background(), opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.Read == nil || *captured.Read {
		t.Error("expected read=false filter forwarded")
	}
	if captured.Limit != 10 || captured.Offset != 5 {
		t.Errorf("expected limit/offset forwarded, got %d/%d", captured.Limit, captured.Offset)
	}
}
