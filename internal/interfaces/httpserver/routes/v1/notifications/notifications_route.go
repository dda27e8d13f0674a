package notifications

import (
	"github.com/gin-gonic/gin"

	"opal-server/internal/interfaces/httpserver/handlers/notificationhandler"
)

// NotificationsRoute handles /v1/notifications routes
type NotificationsRoute struct {
	notificationHandler *notificationhandler.NotificationHandler
}

// NewNotificationsRoute constructs a new notifications route handler
func NewNotificationsRoute(notificationHandler *notificationhandler.NotificationHandler) *NotificationsRoute {
	return &NotificationsRoute{notificationHandler: notificationHandler}
}

// RegisterRouter registers notification routes
func (r *NotificationsRoute) RegisterRouter(router gin.IRouter) {
	router.GET("/notifications", r.notificationHandler.Feed)
}
