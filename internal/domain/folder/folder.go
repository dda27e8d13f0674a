// Package folder provides folder domain models and listing behavior.
package folder

import (
	"context"
	"time"

	"opal-server/internal/utils/platformerrors"
)

// Folder belongs to exactly one workspace and carries a derived video count.
type Folder struct {
	ID         uint
	PublicID   string
	Name       string
	Workspace  string
	VideoCount int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Repository defines storage operations for folders.
type Repository interface {
	ListByWorkspace(ctx context.Context, workspacePublicID string) ([]*Folder, error)
}

// Service lists folders for display.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListByWorkspace returns all folders in the workspace with their video
// counts. An empty slice is a valid outcome, not an error.
func (s *Service) ListByWorkspace(ctx context.Context, workspacePublicID string) ([]*Folder, error) {
	if workspacePublicID == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "workspace id is required", nil, "")
	}

	folders, err := s.repo.ListByWorkspace(ctx, workspacePublicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list folders")
	}
	return folders, nil
}
