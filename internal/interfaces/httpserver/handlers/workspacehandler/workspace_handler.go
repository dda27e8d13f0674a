package workspacehandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"opal-server/internal/domain/folder"
	"opal-server/internal/domain/video"
	"opal-server/internal/domain/workspace"
	"opal-server/internal/infrastructure/metrics"
	"opal-server/internal/infrastructure/storage"
	middleware "opal-server/internal/interfaces/httpserver/middlewares"
	"opal-server/internal/interfaces/httpserver/responses"
	"opal-server/internal/interfaces/httpserver/responses/folderres"
	"opal-server/internal/interfaces/httpserver/responses/videores"
	"opal-server/internal/interfaces/httpserver/responses/workspaceres"
	"opal-server/internal/utils/platformerrors"
)

// WorkspaceHandler serves workspace access checks, the switcher overview
// and the folder/video listings inside a workspace.
type WorkspaceHandler struct {
	workspaceService *workspace.Service
	folderService    *folder.Service
	videoService     *video.Service
	sourceResolver   storage.SourceResolver
	logger           zerolog.Logger
}

// NewWorkspaceHandler constructs a WorkspaceHandler
func NewWorkspaceHandler(
	workspaceService *workspace.Service,
	folderService *folder.Service,
	videoService *video.Service,
	sourceResolver storage.SourceResolver,
	logger zerolog.Logger,
) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceService: workspaceService,
		folderService:    folderService,
		videoService:     videoService,
		sourceResolver:   sourceResolver,
		logger:           logger,
	}
}

// Overview returns the caller's plan plus owned and membership workspaces.
// A missing local user record is a terminal 404, never a silent fall-through.
func (h *WorkspaceHandler) Overview(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "9a41f6d4-07a4-4d30-b9ab-2e5b13e6af21")
		return
	}

	overview, err := h.workspaceService.Overview(c.Request.Context(), principal.Subject)
	if err != nil {
		h.logger.Error().Err(err).Str("subject", principal.Subject).Msg("workspace overview failed")
		responses.HandleError(c, err, "unable to load workspaces")
		return
	}
	if overview == nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeNotFound, "user not found", "c7f03b77-61f0-49d9-8f44-17d2a0f5be31")
		return
	}

	c.JSON(http.StatusOK, workspaceres.NewOverviewResponse(overview))
}

// VerifyAccess answers whether the caller may view a workspace; the
// payload's workspace field is null when access does not hold.
func (h *WorkspaceHandler) VerifyAccess(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "7cc80e21-44fb-4de0-9c1e-6f6a2b6da402")
		return
	}

	ws, err := h.workspaceService.VerifyAccess(c.Request.Context(), principal.Subject, c.Param("id"))
	if err != nil {
		h.logger.Error().Err(err).Str("subject", principal.Subject).Msg("workspace access check failed")
		responses.HandleError(c, err, "unable to verify workspace access")
		return
	}

	if ws != nil {
		metrics.RecordAccessCheck("granted")
	} else {
		metrics.RecordAccessCheck("denied")
	}
	c.JSON(http.StatusOK, workspaceres.NewAccessResponse(ws))
}

// ListFolders returns the workspace's folders with their video counts.
// An empty workspace yields 404 together with an empty data array.
func (h *WorkspaceHandler) ListFolders(c *gin.Context) {
	if _, ok := middleware.PrincipalFromContext(c); !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "5b0a9c36-8b6f-45d0-8dd1-4b35c2a4f713")
		return
	}

	folders, err := h.folderService.ListByWorkspace(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error().Err(err).Str("workspace", c.Param("id")).Msg("list folders failed")
		responses.HandleError(c, err, "unable to list folders")
		return
	}

	payload := folderres.NewFolderListResponse(folders)
	if len(folders) == 0 {
		c.JSON(http.StatusNotFound, payload)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// ListVideos returns videos whose workspace or folder public id matches
// the path parameter, oldest first. When presigning is configured each
// video's source is swapped for a short-lived playback URL.
func (h *WorkspaceHandler) ListVideos(c *gin.Context) {
	if _, ok := middleware.PrincipalFromContext(c); !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "e90f3c4e-2b27-4b83-9a1c-8f98a1f0d524")
		return
	}

	videos, err := h.videoService.ListByLocation(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error().Err(err).Str("location", c.Param("id")).Msg("list videos failed")
		responses.HandleError(c, err, "unable to list videos")
		return
	}

	items := make([]videores.VideoResponse, 0, len(videos))
	for _, v := range videos {
		source := v.Source
		if h.sourceResolver != nil {
			if resolved := h.sourceResolver.ResolveSource(c.Request.Context(), v.Source); resolved != "" {
				source = resolved
				metrics.PresignedURLsTotal.Inc()
			}
		}
		items = append(items, videores.NewVideoResponse(v, source))
	}

	payload := videores.NewVideoListResponse(items)
	if len(items) == 0 {
		c.JSON(http.StatusNotFound, payload)
		return
	}
	c.JSON(http.StatusOK, payload)
}
