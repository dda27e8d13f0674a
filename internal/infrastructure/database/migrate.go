package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	iofs "github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"

	"opal-server/internal/infrastructure/logger"
	"opal-server/migrations"
)

// AutoMigrate applies all pending SQL migrations bundled with the service.
func AutoMigrate(gormDB *gorm.DB) (err error) {
	log := logger.GetLogger()

	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("retrieve sql db: %w", err)
	}

	if err := gormDB.Exec("CREATE SCHEMA IF NOT EXISTS opal").Error; err != nil {
		log.Warn().Err(err).Msg("Failed to create opal schema, may already exist")
	}

	conn, err := sqlDB.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("acquire dedicated connection: %w", err)
	}

	driver, err := postgres.WithConnection(context.Background(), conn, &postgres.Config{
		MigrationsTable: "schema_migrations",
		SchemaName:      "opal",
	})
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("initialize postgres driver: %w", err)
	}
	defer func() {
		if closeErr := driver.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close migration connection: %w", closeErr)
		}
	}()

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	defer func() {
		if closeErr := source.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close migration source: %w", closeErr)
		}
	}()

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	version, dirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.Warn().Err(err).Msg("Error getting migration version")
	} else if errors.Is(err, migrate.ErrNilVersion) {
		log.Info().Msg("No migrations have been applied yet")
	} else {
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current migration state")
	}

	if dirty {
		log.Warn().Uint("version", version).Msg("Database is in dirty state, forcing version...")
		if forceErr := migrator.Force(int(version)); forceErr != nil {
			return fmt.Errorf("force version %d to clear dirty state: %w", version, forceErr)
		}
	}

	err = migrator.Up()
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("No new migrations to apply")
		} else {
			return fmt.Errorf("apply migrations: %w", err)
		}
	} else {
		log.Info().Msg("Migrations applied successfully")
	}

	return nil
}

// SyncRegisteredSchemas runs gorm automigration for every registered schema.
// Used by development and test environments where SQL migrations are not run.
func SyncRegisteredSchemas(db *gorm.DB) error {
	if err := db.Exec("CREATE SCHEMA IF NOT EXISTS opal").Error; err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	for _, model := range SchemaRegistry {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("auto migrate %T: %w", model, err)
		}
	}
	return nil
}
