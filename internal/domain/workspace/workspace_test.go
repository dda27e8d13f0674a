package workspace_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opal-server/internal/domain/user"
	"opal-server/internal/domain/workspace"
	"opal-server/internal/utils/platformerrors"
)

// mockWorkspaceRepository is an in-memory Repository for testing
type mockWorkspaceRepository struct {
	accessible map[string]*workspace.Workspace
	owned      []workspace.Summary
	overview   *workspace.Overview
	err        error
}

func (m *mockWorkspaceRepository) FindAccessible(ctx context.Context, publicID, subject string) (*workspace.Workspace, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.accessible[subject+"/"+publicID], nil
}

func (m *mockWorkspaceRepository) ListOwned(ctx context.Context, userID uint) ([]workspace.Summary, error) {
	return m.owned, m.err
}

func (m *mockWorkspaceRepository) GetOverview(ctx context.Context, subject string) (*workspace.Overview, error) {
	return m.overview, m.err
}

func TestVerifyAccess_OwnerGetsWorkspace(t *testing.T) {
	repo := &mockWorkspaceRepository{
		accessible: map[string]*workspace.Workspace{
			"auth0|owner/ws_abc": {PublicID: "ws_abc", Name: "Team", Type: workspace.TypePublic},
		},
	}
	svc := workspace.NewService(repo)

	ws, err := svc.VerifyAccess(context.Background(), "auth0|owner", "ws_abc")
	require.NoError(t, err)
	require.NotNil(t, ws)
	assert.Equal(t, "ws_abc", ws.PublicID)
}

func TestVerifyAccess_StrangerGetsNilWithoutError(t *testing.T) {
	repo := &mockWorkspaceRepository{accessible: map[string]*workspace.Workspace{}}
	svc := workspace.NewService(repo)

	ws, err := svc.VerifyAccess(context.Background(), "auth0|stranger", "ws_abc")
	require.NoError(t, err)
	assert.Nil(t, ws)
}

func TestVerifyAccess_EmptyIDIsValidationError(t *testing.T) {
	svc := workspace.NewService(&mockWorkspaceRepository{})

	_, err := svc.VerifyAccess(context.Background(), "auth0|owner", "")
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}

func TestOverview_MissingUserYieldsNil(t *testing.T) {
	svc := workspace.NewService(&mockWorkspaceRepository{})

	overview, err := svc.Overview(context.Background(), "auth0|ghost")
	require.NoError(t, err)
	assert.Nil(t, overview)
}

func TestOverview_RepositoryErrorIsWrapped(t *testing.T) {
	svc := workspace.NewService(&mockWorkspaceRepository{err: errors.New("connection refused")})

	_, err := svc.Overview(context.Background(), "auth0|owner")
	require.Error(t, err)

	var platformErr *platformerrors.PlatformError
	require.ErrorAs(t, err, &platformErr)
	assert.Equal(t, platformerrors.LayerDomain, platformErr.Layer)
}

func TestOverview_ReturnsPlanAndWorkspaces(t *testing.T) {
	repo := &mockWorkspaceRepository{
		overview: &workspace.Overview{
			Plan:  user.PlanPro,
			Owned: []workspace.Summary{{PublicID: "ws_abc", Name: "Mine", Type: workspace.TypePersonal}},
			Memberships: []workspace.Summary{
				{PublicID: "ws_def", Name: "Theirs", Type: workspace.TypePublic},
			},
		},
	}
	svc := workspace.NewService(repo)

	overview, err := svc.Overview(context.Background(), "auth0|owner")
	require.NoError(t, err)
	require.NotNil(t, overview)
	assert.Equal(t, user.PlanPro, overview.Plan)
	assert.Len(t, overview.Owned, 1)
	assert.Len(t, overview.Memberships, 1)
}
