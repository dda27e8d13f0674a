package auth

import (
	"github.com/gin-gonic/gin"

	"opal-server/internal/interfaces/httpserver/handlers/authhandler"
)

// AuthRoute handles /v1/auth routes
type AuthRoute struct {
	authHandler *authhandler.AuthHandler
}

// NewAuthRoute constructs a new auth route handler
func NewAuthRoute(authHandler *authhandler.AuthHandler) *AuthRoute {
	return &AuthRoute{authHandler: authHandler}
}

// RegisterRouter registers auth routes
func (r *AuthRoute) RegisterRouter(router gin.IRouter) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/sync", r.authHandler.Sync)
	}
}
