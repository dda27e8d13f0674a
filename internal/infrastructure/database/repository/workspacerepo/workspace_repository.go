package workspacerepo

import (
	"context"

	"gorm.io/gorm"

	"opal-server/internal/domain/user"
	"opal-server/internal/domain/workspace"
	"opal-server/internal/infrastructure/database/dbschema"
	"opal-server/internal/utils/platformerrors"
)

type WorkspaceGormRepository struct {
	db *gorm.DB
}

var _ workspace.Repository = (*WorkspaceGormRepository)(nil)

func NewWorkspaceGormRepository(db *gorm.DB) workspace.Repository {
	return &WorkspaceGormRepository{db: db}
}

// FindAccessible implements workspace.Repository.
//
// The membership condition requires every member row of the workspace to
// belong to the caller, mirroring the product's current policy. A workspace
// with several distinct members therefore fails the check for each of them.
// TODO: switch the NOT EXISTS clause to an any-member EXISTS match once the
// policy is confirmed with product.
func (repo *WorkspaceGormRepository) FindAccessible(ctx context.Context, publicID, subject string) (*workspace.Workspace, error) {
	var entity dbschema.Workspace
	err := repo.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		Where(`(EXISTS (
			SELECT 1 FROM opal.users o
			WHERE o.id = workspaces.user_id AND o.subject = ?
		) OR NOT EXISTS (
			SELECT 1 FROM opal.members m
			JOIN opal.users mu ON mu.id = m.user_id
			WHERE m.workspace_id = workspaces.id AND mu.subject <> ?
		))`, subject, subject).
		First(&entity).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to check workspace access",
			err,
			"a84d61f3-27c9-4be0-95e2-f30c7d9a14b8",
		)
	}
	return entity.EtoD(), nil
}

// ListOwned implements workspace.Repository.
func (repo *WorkspaceGormRepository) ListOwned(ctx context.Context, userID uint) ([]workspace.Summary, error) {
	var rows []dbschema.Workspace
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list owned workspaces",
			err,
			"5e90c2d7-b1a4-4f38-8c65-07d2e9f4a3b1",
		)
	}

	summaries := make([]workspace.Summary, len(rows))
	for i, row := range rows {
		summaries[i] = row.Summary()
	}
	return summaries, nil
}

// GetOverview implements workspace.Repository.
func (repo *WorkspaceGormRepository) GetOverview(ctx context.Context, subject string) (*workspace.Overview, error) {
	var usr dbschema.User
	err := repo.db.WithContext(ctx).
		Preload("Subscription").
		Where("subject = ?", subject).
		First(&usr).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to load user for workspace overview",
			err,
			"be23f7a0-184c-4d5e-9b06-c71d3a82e594",
		)
	}

	owned, err := repo.ListOwned(ctx, usr.ID)
	if err != nil {
		return nil, err
	}

	var memberRows []dbschema.Workspace
	err = repo.db.WithContext(ctx).
		Joins("JOIN opal.members m ON m.workspace_id = workspaces.id").
		Where("m.user_id = ?", usr.ID).
		Order("workspaces.id ASC").
		Find(&memberRows).
		Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list membership workspaces",
			err,
			"0c6a94e1-f53d-48b7-a2c8-9e07b1d5f263",
		)
	}

	memberships := make([]workspace.Summary, len(memberRows))
	for i, row := range memberRows {
		memberships[i] = row.Summary()
	}

	plan := user.PlanFree
	if usr.Subscription != nil {
		plan = user.Plan(usr.Subscription.Plan)
	}

	return &workspace.Overview{
		Plan:        plan,
		Owned:       owned,
		Memberships: memberships,
	}, nil
}
