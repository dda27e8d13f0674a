package workspaces

import (
	"github.com/gin-gonic/gin"

	"opal-server/internal/interfaces/httpserver/handlers/workspacehandler"
)

// WorkspacesRoute handles /v1/workspaces routes
type WorkspacesRoute struct {
	workspaceHandler *workspacehandler.WorkspaceHandler
}

// NewWorkspacesRoute constructs a new workspaces route handler
func NewWorkspacesRoute(workspaceHandler *workspacehandler.WorkspaceHandler) *WorkspacesRoute {
	return &WorkspacesRoute{workspaceHandler: workspaceHandler}
}

// RegisterRouter registers workspace routes
func (r *WorkspacesRoute) RegisterRouter(router gin.IRouter) {
	wsGroup := router.Group("/workspaces")
	{
		wsGroup.GET("", r.workspaceHandler.Overview)
		wsGroup.GET("/:id/access", r.workspaceHandler.VerifyAccess)
		wsGroup.GET("/:id/folders", r.workspaceHandler.ListFolders)
		// :id may be a workspace or a folder public id, see handler
		wsGroup.GET("/:id/videos", r.workspaceHandler.ListVideos)
	}
}
