package userhandler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"opal-server/internal/domain/user"
	middleware "opal-server/internal/interfaces/httpserver/middlewares"
	"opal-server/internal/interfaces/httpserver/responses"
	"opal-server/internal/interfaces/httpserver/responses/userres"
	"opal-server/internal/utils/platformerrors"
)

// UserHandler serves user search for workspace invitations.
type UserHandler struct {
	userService *user.Service
	logger      zerolog.Logger
}

// NewUserHandler constructs a UserHandler
func NewUserHandler(userService *user.Service, logger zerolog.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

// Search matches users by first name, last name or email, case
// insensitively, always excluding the caller. No hits yields 404 with an
// empty data array.
func (h *UserHandler) Search(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "46b0b2de-27cb-4a09-9f2a-6a1f0e2c9d47")
		return
	}

	term := strings.TrimSpace(c.Query("query"))
	if term == "" {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "query is required", "1d9f4b0f-3a6e-4d5c-9a2b-7e8f0c1d2a58")
		return
	}

	profiles, err := h.userService.Search(c.Request.Context(), principal.Subject, term)
	if err != nil {
		h.logger.Error().Err(err).Str("subject", principal.Subject).Msg("user search failed")
		responses.HandleError(c, err, "unable to search users")
		return
	}

	payload := userres.NewSearchResponse(profiles)
	if len(profiles) == 0 {
		c.JSON(http.StatusNotFound, payload)
		return
	}
	c.JSON(http.StatusOK, payload)
}
