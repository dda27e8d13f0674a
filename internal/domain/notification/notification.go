// Package notification provides the user notification feed.
package notification

import (
	"context"
	"time"

	"opal-server/internal/utils/platformerrors"
)

// Notification is a single entry in a user's notification feed.
type Notification struct {
	ID        uint
	UserID    uint
	Content   string
	Payload   map[string]any
	CreatedAt time.Time
}

// Feed is a user's notifications together with their total count, which
// drives the unread badge.
type Feed struct {
	Notifications []*Notification
	Count         int64
}

// Repository defines storage operations for notifications.
type Repository interface {
	// ListBySubject returns nil when no user row exists for the subject.
	ListBySubject(ctx context.Context, subject string) (*Feed, error)
}

// Service reads notification feeds.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// FeedForSubject returns the subject's notifications and count.
func (s *Service) FeedForSubject(ctx context.Context, subject string) (*Feed, error) {
	feed, err := s.repo.ListBySubject(ctx, subject)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load notifications")
	}
	return feed, nil
}
