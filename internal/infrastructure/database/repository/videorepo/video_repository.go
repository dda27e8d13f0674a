package videorepo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"opal-server/internal/domain/video"
	"opal-server/internal/infrastructure/database/dbschema"
	"opal-server/internal/utils/platformerrors"
)

type VideoGormRepository struct {
	db *gorm.DB
}

var _ video.Repository = (*VideoGormRepository)(nil)

func NewVideoGormRepository(db *gorm.DB) video.Repository {
	return &VideoGormRepository{db: db}
}

type videoRow struct {
	ID             uint
	PublicID       string
	Title          string
	Source         string
	Processing     bool
	CreatedAt      time.Time
	FolderPublicID *string
	FolderName     *string
	OwnerFirstName *string
	OwnerLastName  *string
	OwnerAvatarURL *string
}

// ListByLocation implements video.Repository. The location parameter matches
// either the workspace public ID or the folder public ID, so the folder view
// and the workspace view share one lookup.
func (repo *VideoGormRepository) ListByLocation(ctx context.Context, locationPublicID string) ([]*video.Video, error) {
	var rows []videoRow
	err := repo.db.WithContext(ctx).
		Model(&dbschema.Video{}).
		Select(`videos.id, videos.public_id, videos.title, videos.source, videos.processing, videos.created_at,
			f.public_id AS folder_public_id, f.name AS folder_name,
			u.first_name AS owner_first_name, u.last_name AS owner_last_name, u.avatar_url AS owner_avatar_url`).
		Joins("JOIN opal.workspaces w ON w.id = videos.workspace_id").
		Joins("LEFT JOIN opal.folders f ON f.id = videos.folder_id").
		Joins("JOIN opal.users u ON u.id = videos.user_id").
		Where("w.public_id = ? OR f.public_id = ?", locationPublicID, locationPublicID).
		Order("videos.created_at ASC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list videos by location",
			err,
			"3d9b57e2-c48f-4a60-b1d3-86f0a2c7e915",
		)
	}

	videos := make([]*video.Video, len(rows))
	for i, row := range rows {
		v := &video.Video{
			ID:         row.ID,
			PublicID:   row.PublicID,
			Title:      row.Title,
			Source:     row.Source,
			Processing: row.Processing,
			Owner: video.OwnerRef{
				FirstName: row.OwnerFirstName,
				LastName:  row.OwnerLastName,
				AvatarURL: row.OwnerAvatarURL,
			},
			CreatedAt: row.CreatedAt,
		}
		if row.FolderPublicID != nil {
			v.Folder = &video.FolderRef{
				PublicID: *row.FolderPublicID,
				Name:     derefOr(row.FolderName, ""),
			}
		}
		videos[i] = v
	}
	return videos, nil
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
