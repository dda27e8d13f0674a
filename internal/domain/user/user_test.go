package user_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opal-server/internal/domain/user"
	"opal-server/internal/utils/idgen"
	"opal-server/internal/utils/ptr"
)

// mockUserRepository is an in-memory Repository for testing
type mockUserRepository struct {
	users        map[string]*user.User
	nextID       uint
	lastDefault  user.DefaultWorkspace
	createCalls  int
	searchResult []*user.Profile
	searchTerm   string
	searchCaller string
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*user.User), nextID: 1}
}

func (m *mockUserRepository) FindBySubject(ctx context.Context, subject string) (*user.User, error) {
	return m.users[subject], nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	for _, usr := range m.users {
		if usr.ID == id {
			return usr, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) CreateWithDefaults(ctx context.Context, usr *user.User, ws user.DefaultWorkspace) (*user.User, error) {
	m.createCalls++
	m.lastDefault = ws
	usr.ID = m.nextID
	m.nextID++
	m.users[usr.Subject] = usr
	return usr, nil
}

func (m *mockUserRepository) SearchByTerm(ctx context.Context, term, excludeSubject string) ([]*user.Profile, error) {
	m.searchTerm = term
	m.searchCaller = excludeSubject
	return m.searchResult, nil
}

func TestSync_CreatesUserWithDefaultsOnFirstLogin(t *testing.T) {
	repo := newMockUserRepository()
	svc := user.NewService(repo, idgen.GenerateSecureID)

	result, err := svc.Sync(context.Background(), user.Identity{
		Subject:   "auth0|abc123",
		Email:     "jane@example.com",
		FirstName: ptr.ToString("Jane"),
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Created)
	assert.Equal(t, uint(1), result.User.ID)
	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, "Jane's Workspace", repo.lastDefault.Name)
	assert.True(t, strings.HasPrefix(repo.lastDefault.PublicID, "ws_"))
}

func TestSync_SecondCallReturnsSameUserWithoutCreating(t *testing.T) {
	repo := newMockUserRepository()
	svc := user.NewService(repo, idgen.GenerateSecureID)

	identity := user.Identity{Subject: "auth0|abc123", Email: "jane@example.com"}

	first, err := svc.Sync(context.Background(), identity)
	require.NoError(t, err)
	require.True(t, first.Created)

	second, err := svc.Sync(context.Background(), identity)
	require.NoError(t, err)

	assert.False(t, second.Created)
	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Equal(t, 1, repo.createCalls)
}

func TestSync_MissingFirstNameFallsBackToGenericWorkspaceName(t *testing.T) {
	repo := newMockUserRepository()
	svc := user.NewService(repo, idgen.GenerateSecureID)

	_, err := svc.Sync(context.Background(), user.Identity{Subject: "auth0|xyz", Email: "x@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "My Workspace", repo.lastDefault.Name)
}

func TestSync_RejectsEmptySubject(t *testing.T) {
	repo := newMockUserRepository()
	svc := user.NewService(repo, idgen.GenerateSecureID)

	_, err := svc.Sync(context.Background(), user.Identity{Email: "x@example.com"})
	require.ErrorIs(t, err, user.ErrInvalidIdentity)
	assert.Equal(t, 0, repo.createCalls)
}

func TestSearch_PassesCallerSubjectForExclusion(t *testing.T) {
	repo := newMockUserRepository()
	repo.searchResult = []*user.Profile{{ID: 7, Email: "banana@x.com"}}
	svc := user.NewService(repo, idgen.GenerateSecureID)

	profiles, err := svc.Search(context.Background(), "auth0|ana", "ana")
	require.NoError(t, err)

	require.Len(t, profiles, 1)
	assert.Equal(t, "banana@x.com", profiles[0].Email)
	assert.Equal(t, "ana", repo.searchTerm)
	assert.Equal(t, "auth0|ana", repo.searchCaller)
}
