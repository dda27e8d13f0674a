package infrastructure

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"opal-server/internal/config"
	"opal-server/internal/infrastructure/auth"
	"opal-server/internal/infrastructure/database"
	"opal-server/internal/infrastructure/database/repository"
	"opal-server/internal/infrastructure/logger"
	"opal-server/internal/infrastructure/storage"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideValidator provides a JWT validator backed by the identity
// provider's JWKS endpoint.
func ProvideValidator(cfg *config.Config, log zerolog.Logger) (*auth.Validator, error) {
	return auth.NewValidator(
		context.Background(),
		cfg.JWKSURL,
		cfg.Issuer,
		cfg.Audience,
		cfg.RefreshJWKSInterval,
		cfg.AuthClockSkew,
		log,
	)
}

// ProvideDatabase provides a database connection
func ProvideDatabase(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.NewDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	// Run migrations if AUTO_MIGRATE is enabled
	if cfg.AutoMigrate {
		log.Info().Msg("Running database migrations...")
		if err := database.AutoMigrate(db); err != nil {
			log.Error().Err(err).Msg("Failed to run database migrations")
			return nil, err
		}
		log.Info().Msg("Database migrations completed successfully")
	}

	return db, nil
}

// ProvideSourceResolver provides the presigner that turns stored object keys
// into playable URLs. The resolver degrades to pass-through when S3 is not
// configured.
func ProvideSourceResolver(cfg *config.Config, log zerolog.Logger) (storage.SourceResolver, error) {
	return storage.NewS3Presigner(context.Background(), cfg, log)
}

// Infrastructure holds all infrastructure dependencies
type Infrastructure struct {
	DB             *gorm.DB
	Validator      *auth.Validator
	SourceResolver storage.SourceResolver
	Logger         zerolog.Logger
}

// NewInfrastructure creates a new infrastructure instance
func NewInfrastructure(
	db *gorm.DB,
	validator *auth.Validator,
	sourceResolver storage.SourceResolver,
	logger zerolog.Logger,
) *Infrastructure {
	return &Infrastructure{
		DB:             db,
		Validator:      validator,
		SourceResolver: sourceResolver,
		Logger:         logger,
	}
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Database
	ProvideDatabase,

	// Repositories
	repository.RepositoryProvider,

	// Logger
	logger.GetLogger,

	// Identity provider
	ProvideValidator,

	// Video storage
	ProvideSourceResolver,

	// Infrastructure struct
	NewInfrastructure,
)
