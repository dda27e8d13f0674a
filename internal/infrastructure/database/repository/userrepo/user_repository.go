package userrepo

import (
	"context"

	"gorm.io/gorm"

	"opal-server/internal/domain/user"
	"opal-server/internal/infrastructure/database/dbschema"
	"opal-server/internal/utils/platformerrors"
)

type UserGormRepository struct {
	db *gorm.DB
}

var _ user.Repository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) user.Repository {
	return &UserGormRepository{db: db}
}

func (repo *UserGormRepository) FindBySubject(ctx context.Context, subject string) (*user.User, error) {
	var entity dbschema.User
	err := repo.db.WithContext(ctx).
		Where("subject = ?", subject).
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
			"failed to find user by subject",
			err,
			"4f2c8a1e-90d3-45c2-8f17-b62aa18c2f4d",
		)
	}
	return entity.EtoD(), nil
}

func (repo *UserGormRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var entity dbschema.User
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
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
			"failed to find user by ID",
			err,
			"9c7e41b2-6d0f-4a83-b5c9-1e2f7a8d3c64",
		)
	}
	return entity.EtoD(), nil
}

// CreateWithDefaults inserts the user with its studio, FREE subscription and
// one PERSONAL workspace in a single transaction, so a partially initialised
// account can never be observed.
func (repo *UserGormRepository) CreateWithDefaults(ctx context.Context, usr *user.User, ws user.DefaultWorkspace) (*user.User, error) {
	entity := dbschema.NewSchemaUser(usr)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entity).Error; err != nil {
			return err
		}
		if err := tx.Create(&dbschema.Studio{UserID: entity.ID, Preset: "SD"}).Error; err != nil {
			return err
		}
		if err := tx.Create(&dbschema.Subscription{UserID: entity.ID, Plan: string(user.PlanFree)}).Error; err != nil {
			return err
		}
		return tx.Create(&dbschema.Workspace{
			PublicID: ws.PublicID,
			Name:     ws.Name,
			Type:     "PERSONAL",
			UserID:   entity.ID,
		}).Error
	})
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create user with defaults",
			err,
			"d1a5e9f7-3b28-4c06-a4d2-58e90c7b1f36",
		)
	}

	return entity.EtoD(), nil
}

// SearchByTerm matches the term as a case-insensitive substring of first
// name, last name or email, excluding the given subject's own record.
func (repo *UserGormRepository) SearchByTerm(ctx context.Context, term, excludeSubject string) ([]*user.Profile, error) {
	pattern := "%" + term + "%"

	var rows []dbschema.User
	err := repo.db.WithContext(ctx).
		Preload("Subscription").
		Where("subject <> ?", excludeSubject).
		Where("(first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?)", pattern, pattern, pattern).
		Limit(50).
		Find(&rows).
		Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to search users",
			err,
			"7b3f0c82-e5d4-49a1-9f60-2c8ad41e5b97",
		)
	}

	profiles := make([]*user.Profile, len(rows))
	for i, row := range rows {
		profile := &user.Profile{
			ID:        row.ID,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Email:     row.Email,
			AvatarURL: row.AvatarURL,
		}
		if row.Subscription != nil {
			plan := user.Plan(row.Subscription.Plan)
			profile.Plan = &plan
		}
		profiles[i] = profile
	}

	return profiles, nil
}
