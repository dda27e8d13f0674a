package authhandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"opal-server/internal/domain/user"
	"opal-server/internal/domain/workspace"
	"opal-server/internal/infrastructure/metrics"
	middleware "opal-server/internal/interfaces/httpserver/middlewares"
	"opal-server/internal/interfaces/httpserver/responses"
	"opal-server/internal/interfaces/httpserver/responses/userres"
	"opal-server/internal/utils/platformerrors"
	"opal-server/internal/utils/ptr"
)

// AuthHandler reconciles the authenticated principal with the local user
// store and hands back the user together with their workspaces.
type AuthHandler struct {
	userService      *user.Service
	workspaceService *workspace.Service
	logger           zerolog.Logger
}

// NewAuthHandler constructs an AuthHandler
func NewAuthHandler(
	userService *user.Service,
	workspaceService *workspace.Service,
	logger zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		userService:      userService,
		workspaceService: workspaceService,
		logger:           logger,
	}
}

// Sync looks the principal up by subject and provisions the user with
// default studio, subscription and personal workspace on first login.
// Returns 200 for an existing user, 201 when the user was just created.
func (h *AuthHandler) Sync(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "3f5cb1fa-0d21-47f8-8b45-0f2f4a9e7d10")
		return
	}

	identity := user.Identity{
		Subject: principal.Subject,
		Issuer:  principal.Issuer,
		Email:   principal.Email,
	}
	if principal.FirstName != "" {
		identity.FirstName = ptr.ToString(principal.FirstName)
	}
	if principal.LastName != "" {
		identity.LastName = ptr.ToString(principal.LastName)
	}
	if principal.AvatarURL != "" {
		identity.AvatarURL = ptr.ToString(principal.AvatarURL)
	}

	result, err := h.userService.Sync(c.Request.Context(), identity)
	if err != nil {
		h.logger.Error().Err(err).Str("subject", principal.Subject).Msg("user sync failed")
		responses.HandleError(c, err, "unable to synchronize user")
		return
	}

	owned, err := h.workspaceService.ListOwned(c.Request.Context(), result.User.ID)
	if err != nil {
		h.logger.Error().Err(err).Uint("user_id", result.User.ID).Msg("list owned workspaces failed")
		responses.HandleError(c, err, "unable to load workspaces")
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
		metrics.UsersProvisionedTotal.Inc()
	}
	c.JSON(status, userres.NewSyncResponse(result.User, owned))
}
