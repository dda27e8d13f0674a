// Package workspace provides workspace domain models and access checks.
package workspace

import (
	"context"
	"time"

	"opal-server/internal/domain/user"
	"opal-server/internal/utils/platformerrors"
)

// Type distinguishes the automatically created personal workspace from
// shared public ones.
type Type string

const (
	TypePersonal Type = "PERSONAL"
	TypePublic   Type = "PUBLIC"
)

// Workspace is a named container of folders and videos with owner plus
// member access.
type Workspace struct {
	ID        uint
	PublicID  string
	Name      string
	Type      Type
	UserID    uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary is the listing projection of a workspace.
type Summary struct {
	PublicID string `json:"id"`
	Name     string `json:"name"`
	Type     Type   `json:"type"`
}

// Overview aggregates everything the workspace switcher needs: the
// caller's plan, owned workspaces and membership workspaces.
type Overview struct {
	Plan        user.Plan
	Owned       []Summary
	Memberships []Summary
}

// Repository defines storage operations for workspaces and memberships.
type Repository interface {
	// FindAccessible returns the workspace with the given public ID when the
	// subject is its owner or satisfies the membership condition, nil when no
	// row matches.
	FindAccessible(ctx context.Context, publicID, subject string) (*Workspace, error)
	ListOwned(ctx context.Context, userID uint) ([]Summary, error)
	// GetOverview returns nil when no user row exists for the subject.
	GetOverview(ctx context.Context, subject string) (*Overview, error)
}

// Service answers workspace access and listing questions.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// VerifyAccess resolves the workspace the subject may view, or nil when the
// access invariant (owner or member) does not hold. A nil result is not an
// error; callers distinguish found from null themselves.
func (s *Service) VerifyAccess(ctx context.Context, subject, publicID string) (*Workspace, error) {
	if publicID == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "workspace id is required", nil, "")
	}

	ws, err := s.repo.FindAccessible(ctx, publicID, subject)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to verify workspace access")
	}
	return ws, nil
}

// ListOwned returns the workspaces the user owns.
func (s *Service) ListOwned(ctx context.Context, userID uint) ([]Summary, error) {
	owned, err := s.repo.ListOwned(ctx, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list owned workspaces")
	}
	return owned, nil
}

// Overview returns the caller's plan plus owned and membership workspaces.
// A nil overview means no local user record exists for the subject.
func (s *Service) Overview(ctx context.Context, subject string) (*Overview, error) {
	overview, err := s.repo.GetOverview(ctx, subject)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load workspace overview")
	}
	return overview, nil
}
