package notificationhandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"opal-server/internal/domain/notification"
	middleware "opal-server/internal/interfaces/httpserver/middlewares"
	"opal-server/internal/interfaces/httpserver/responses"
	"opal-server/internal/interfaces/httpserver/responses/notificationres"
	"opal-server/internal/utils/platformerrors"
)

// NotificationHandler serves the caller's notification feed.
type NotificationHandler struct {
	notificationService *notification.Service
	logger              zerolog.Logger
}

// NewNotificationHandler constructs a NotificationHandler
func NewNotificationHandler(notificationService *notification.Service, logger zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService, logger: logger}
}

// Feed returns the notifications and badge count for the principal. An
// empty feed, or a subject with no local user record, yields 404 with an
// empty data array.
func (h *NotificationHandler) Feed(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "ba6f93dd-41a5-4f0c-a6c8-2f2d84b0ce35")
		return
	}

	feed, err := h.notificationService.FeedForSubject(c.Request.Context(), principal.Subject)
	if err != nil {
		h.logger.Error().Err(err).Str("subject", principal.Subject).Msg("load notification feed failed")
		responses.HandleError(c, err, "unable to load notifications")
		return
	}

	payload := notificationres.NewFeedResponse(feed)
	if feed == nil || len(feed.Notifications) == 0 {
		c.JSON(http.StatusNotFound, payload)
		return
	}
	c.JSON(http.StatusOK, payload)
}
