package notificationrepo

import (
	"context"

	"gorm.io/gorm"

	"opal-server/internal/domain/notification"
	"opal-server/internal/infrastructure/database/dbschema"
	"opal-server/internal/utils/platformerrors"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

var _ notification.Repository = (*NotificationGormRepository)(nil)

func NewNotificationGormRepository(db *gorm.DB) notification.Repository {
	return &NotificationGormRepository{db: db}
}

// ListBySubject implements notification.Repository.
func (repo *NotificationGormRepository) ListBySubject(ctx context.Context, subject string) (*notification.Feed, error) {
	var usr dbschema.User
	err := repo.db.WithContext(ctx).
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
			"failed to load user for notifications",
			err,
			"f4a2817c-63e9-4b05-a9d1-0b7c5e3f28a6",
		)
	}

	var rows []dbschema.Notification
	err = repo.db.WithContext(ctx).
		Where("user_id = ?", usr.ID).
		Order("created_at DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list notifications",
			err,
			"81c5f3d9-2a74-4e06-bd38-6f9e0a1c47b2",
		)
	}

	var count int64
	err = repo.db.WithContext(ctx).
		Model(&dbschema.Notification{}).
		Where("user_id = ?", usr.ID).
		Count(&count).
		Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count notifications",
			err,
			"29e7b0a5-d816-4f93-8c42-5a1d3f6e09c7",
		)
	}

	feed := &notification.Feed{Count: count}
	feed.Notifications = make([]*notification.Notification, len(rows))
	for i := range rows {
		feed.Notifications[i] = rows[i].EtoD()
	}
	return feed, nil
}
