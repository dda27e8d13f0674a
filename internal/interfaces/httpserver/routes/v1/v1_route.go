package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opal-server/internal/interfaces/httpserver/routes/v1/auth"
	"opal-server/internal/interfaces/httpserver/routes/v1/notifications"
	"opal-server/internal/interfaces/httpserver/routes/v1/users"
	"opal-server/internal/interfaces/httpserver/routes/v1/workspaces"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

type V1Route struct {
	auth          *auth.AuthRoute
	workspaces    *workspaces.WorkspacesRoute
	users         *users.UsersRoute
	notifications *notifications.NotificationsRoute
}

func NewV1Route(
	auth *auth.AuthRoute,
	workspaces *workspaces.WorkspacesRoute,
	users *users.UsersRoute,
	notifications *notifications.NotificationsRoute,
) *V1Route {
	return &V1Route{
		auth,
		workspaces,
		users,
		notifications,
	}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Router.GET("/version", GetVersion)

	v1Route.auth.RegisterRouter(v1Router)
	v1Route.workspaces.RegisterRouter(v1Router)
	v1Route.users.RegisterRouter(v1Router)
	v1Route.notifications.RegisterRouter(v1Router)
}

// GetVersion reports the running build version
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": Version})
}
