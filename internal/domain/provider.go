package domain

import (
	"github.com/google/wire"

	"opal-server/internal/domain/folder"
	"opal-server/internal/domain/notification"
	"opal-server/internal/domain/user"
	"opal-server/internal/domain/video"
	"opal-server/internal/domain/workspace"
	"opal-server/internal/utils/idgen"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	// User domain
	ProvideIDGenerator,
	user.NewService,

	// Workspace domain
	workspace.NewService,

	// Content
	folder.NewService,
	video.NewService,

	// Notifications
	notification.NewService,
)

func ProvideIDGenerator() user.IDGenerator {
	return idgen.GenerateSecureID
}
