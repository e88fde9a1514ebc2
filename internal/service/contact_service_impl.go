package service

import (
	"context"
	"fmt"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	notifier ContactNotifier
}

// NewContactService creates a ContactService backed by the given
// repository and notifier.
func NewContactService(repo repository.ContactRepository, notifier ContactNotifier) ContactService {
	return &contactServiceImpl{repo: repo, notifier: notifier}
}

// Submit persists the message, then attempts both notification emails.
// Notification only runs for a persisted message; a storage failure
// propagates as an error and nothing is sent.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) (SubmitResult, error) {
	if err := s.repo.Create(ctx, msg); err != nil {
		return SubmitResult{}, fmt.Errorf("store contact message: %w", err)
	}

	notifyErr := s.notifier.Notify(ctx, msg)
	return SubmitResult{Message: msg, OperatorNotified: notifyErr == nil}, nil
}

func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx, opts)
}

func (s *contactServiceImpl) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *contactServiceImpl) MarkReplied(ctx context.Context, id string) error {
	return s.repo.MarkReplied(ctx, id)
}
