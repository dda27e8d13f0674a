package repository

import (
	"opal-server/internal/infrastructure/database/repository/folderrepo"
	"opal-server/internal/infrastructure/database/repository/notificationrepo"
	"opal-server/internal/infrastructure/database/repository/userrepo"
	"opal-server/internal/infrastructure/database/repository/videorepo"
	"opal-server/internal/infrastructure/database/repository/workspacerepo"

	"github.com/google/wire"
)

var RepositoryProvider = wire.NewSet(
	userrepo.NewUserGormRepository,
	workspacerepo.NewWorkspaceGormRepository,
	folderrepo.NewFolderGormRepository,
	videorepo.NewVideoGormRepository,
	notificationrepo.NewNotificationGormRepository,
)
