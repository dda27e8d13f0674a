// Package video provides video domain models and listing behavior.
package video

import (
	"context"
	"time"

	"opal-server/internal/utils/platformerrors"
)

// FolderRef is the minimal folder projection attached to a listed video.
type FolderRef struct {
	PublicID string
	Name     string
}

// OwnerRef is the minimal owner projection attached to a listed video.
type OwnerRef struct {
	FirstName *string
	LastName  *string
	AvatarURL *string
}

// Video is a recording stored in a workspace, optionally filed in a folder.
type Video struct {
	ID         uint
	PublicID   string
	Title      string
	Source     string
	Processing bool
	Folder     *FolderRef
	Owner      OwnerRef
	CreatedAt  time.Time
}

// Repository defines storage operations for videos.
type Repository interface {
	// ListByLocation matches videos whose workspace public ID or folder
	// public ID equals the given location, ordered by creation time ascending.
	// The same parameter deliberately serves both lookups.
	ListByLocation(ctx context.Context, locationPublicID string) ([]*Video, error)
}

// Service lists videos for display.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListByLocation returns the videos stored under a workspace or folder.
func (s *Service) ListByLocation(ctx context.Context, locationPublicID string) ([]*Video, error) {
	if locationPublicID == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "workspace or folder id is required", nil, "")
	}

	videos, err := s.repo.ListByLocation(ctx, locationPublicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list videos")
	}
	return videos, nil
}
