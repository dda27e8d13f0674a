package folderrepo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"opal-server/internal/domain/folder"
	"opal-server/internal/infrastructure/database/dbschema"
	"opal-server/internal/utils/platformerrors"
)

type FolderGormRepository struct {
	db *gorm.DB
}

var _ folder.Repository = (*FolderGormRepository)(nil)

func NewFolderGormRepository(db *gorm.DB) folder.Repository {
	return &FolderGormRepository{db: db}
}

type folderRow struct {
	ID         uint
	PublicID   string
	Name       string
	VideoCount int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ListByWorkspace implements folder.Repository. The video count is derived
// per folder in the same query.
func (repo *FolderGormRepository) ListByWorkspace(ctx context.Context, workspacePublicID string) ([]*folder.Folder, error) {
	var rows []folderRow
	err := repo.db.WithContext(ctx).
		Model(&dbschema.Folder{}).
		Select(`folders.id, folders.public_id, folders.name, folders.created_at, folders.updated_at,
			(SELECT COUNT(*) FROM opal.videos v WHERE v.folder_id = folders.id) AS video_count`).
		Joins("JOIN opal.workspaces w ON w.id = folders.workspace_id").
		Where("w.public_id = ?", workspacePublicID).
		Order("folders.created_at ASC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list folders by workspace",
			err,
			"62f8c1d4-a93e-47b5-8e01-3c5d9f2a7b86",
		)
	}

	folders := make([]*folder.Folder, len(rows))
	for i, row := range rows {
		folders[i] = &folder.Folder{
			ID:         row.ID,
			PublicID:   row.PublicID,
			Name:       row.Name,
			Workspace:  workspacePublicID,
			VideoCount: row.VideoCount,
			CreatedAt:  row.CreatedAt,
			UpdatedAt:  row.UpdatedAt,
		}
	}
	return folders, nil
}
