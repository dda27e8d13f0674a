// Package user provides user domain models and behaviors.
package user

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Plan identifies the subscription tier gating paid features.
type Plan string

const (
	PlanFree Plan = "FREE"
	PlanPro  Plan = "PRO"
)

// User models an application user resolved from an external identity provider.
type User struct {
	ID        uint
	Subject   string
	Email     string
	FirstName *string
	LastName  *string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity encapsulates the externally provided identity attributes.
type Identity struct {
	Subject   string
	Issuer    string
	Email     string
	FirstName *string
	LastName  *string
	AvatarURL *string
}

// Profile is the projection returned by user search.
type Profile struct {
	ID        uint
	FirstName *string
	LastName  *string
	Email     string
	AvatarURL *string
	Plan      *Plan
}

// DefaultWorkspace describes the personal workspace created alongside a new user.
type DefaultWorkspace struct {
	PublicID string
	Name     string
}

// Repository defines storage operations for users.
type Repository interface {
	FindBySubject(ctx context.Context, subject string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	// CreateWithDefaults persists the user together with an empty studio,
	// a FREE subscription and one PERSONAL workspace, atomically.
	CreateWithDefaults(ctx context.Context, usr *User, ws DefaultWorkspace) (*User, error)
	SearchByTerm(ctx context.Context, term, excludeSubject string) ([]*Profile, error)
}

// ErrInvalidIdentity indicates a missing subject on the identity payload.
var ErrInvalidIdentity = errors.New("invalid identity: subject is required")

// SyncResult reports the outcome of reconciling an identity with the local store.
type SyncResult struct {
	User    *User
	Created bool
}

// IDGenerator mints public identifiers for created records.
type IDGenerator func(prefix string, length int) (string, error)

// Service reconciles external identities with local user records.
type Service struct {
	repo  Repository
	genID IDGenerator
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository, genID IDGenerator) *Service {
	return &Service{repo: repo, genID: genID}
}

// Sync looks the user up by the identity's stable subject and creates the
// record with its default related rows on first login.
func (s *Service) Sync(ctx context.Context, identity Identity) (*SyncResult, error) {
	if identity.Subject == "" {
		return nil, ErrInvalidIdentity
	}

	existing, err := s.repo.FindBySubject(ctx, identity.Subject)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &SyncResult{User: existing, Created: false}, nil
	}

	usr := &User{
		Subject:   identity.Subject,
		Email:     identity.Email,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		AvatarURL: identity.AvatarURL,
	}

	publicID, err := s.genID("ws", 16)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateWithDefaults(ctx, usr, DefaultWorkspace{
		PublicID: publicID,
		Name:     defaultWorkspaceName(identity.FirstName),
	})
	if err != nil {
		return nil, err
	}

	return &SyncResult{User: created, Created: true}, nil
}

// Search returns profiles whose first name, last name or email contains the
// term, always excluding the caller's own record.
func (s *Service) Search(ctx context.Context, callerSubject, term string) ([]*Profile, error) {
	return s.repo.SearchByTerm(ctx, term, callerSubject)
}

func defaultWorkspaceName(firstName *string) string {
	if firstName == nil || *firstName == "" {
		return "My Workspace"
	}
	return fmt.Sprintf("%s's Workspace", *firstName)
}
