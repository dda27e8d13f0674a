package routes

import (
	"opal-server/internal/interfaces/httpserver/handlers/authhandler"
	"opal-server/internal/interfaces/httpserver/handlers/notificationhandler"
	"opal-server/internal/interfaces/httpserver/handlers/userhandler"
	"opal-server/internal/interfaces/httpserver/handlers/workspacehandler"
	"opal-server/internal/interfaces/httpserver/routes/v1"
	"opal-server/internal/interfaces/httpserver/routes/v1/auth"
	"opal-server/internal/interfaces/httpserver/routes/v1/notifications"
	"opal-server/internal/interfaces/httpserver/routes/v1/users"
	"opal-server/internal/interfaces/httpserver/routes/v1/workspaces"

	"github.com/google/wire"
)

var RouteProvider = wire.NewSet(
	// Handlers
	authhandler.NewAuthHandler,
	workspacehandler.NewWorkspaceHandler,
	userhandler.NewUserHandler,
	notificationhandler.NewNotificationHandler,

	// Routes
	auth.NewAuthRoute,
	workspaces.NewWorkspacesRoute,
	users.NewUsersRoute,
	notifications.NewNotificationsRoute,
	v1.NewV1Route,
)
