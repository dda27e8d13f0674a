package users

import (
	"github.com/gin-gonic/gin"

	"opal-server/internal/interfaces/httpserver/handlers/userhandler"
)

// UsersRoute handles /v1/users routes
type UsersRoute struct {
	userHandler *userhandler.UserHandler
}

// NewUsersRoute constructs a new users route handler
func NewUsersRoute(userHandler *userhandler.UserHandler) *UsersRoute {
	return &UsersRoute{userHandler: userHandler}
}

// RegisterRouter registers user routes
func (r *UsersRoute) RegisterRouter(router gin.IRouter) {
	usersGroup := router.Group("/users")
	{
		usersGroup.GET("/search", r.userHandler.Search)
	}
}
