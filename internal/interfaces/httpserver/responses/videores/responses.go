package videores

import (
	"opal-server/internal/domain/video"
)

// FolderRefResponse is the minimal folder projection on a listed video
type FolderRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OwnerRefResponse is the minimal owner projection on a listed video
type OwnerRefResponse struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// VideoResponse represents a single listed video
type VideoResponse struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Source     string             `json:"source"`
	Processing bool               `json:"processing"`
	Folder     *FolderRefResponse `json:"folder"`
	Owner      OwnerRefResponse   `json:"owner"`
	CreatedAt  int64              `json:"created_at"`
}

// VideoListResponse represents videos under a workspace or folder
type VideoListResponse struct {
	Object string          `json:"object"`
	Data   []VideoResponse `json:"data"`
	Total  int             `json:"total"`
}

// NewVideoResponse creates a response from a domain video. The source
// argument carries the resolved playback URL, which may differ from the
// stored object key when presigning is enabled.
func NewVideoResponse(v *video.Video, source string) VideoResponse {
	resp := VideoResponse{
		ID:         v.PublicID,
		Title:      v.Title,
		Source:     source,
		Processing: v.Processing,
		Owner: OwnerRefResponse{
			FirstName: v.Owner.FirstName,
			LastName:  v.Owner.LastName,
			AvatarURL: v.Owner.AvatarURL,
		},
		CreatedAt: v.CreatedAt.Unix(),
	}
	if v.Folder != nil {
		resp.Folder = &FolderRefResponse{ID: v.Folder.PublicID, Name: v.Folder.Name}
	}
	return resp
}

// NewVideoListResponse creates a list response from pre-built items
func NewVideoListResponse(items []VideoResponse) *VideoListResponse {
	if items == nil {
		items = []VideoResponse{}
	}
	return &VideoListResponse{Object: "list", Data: items, Total: len(items)}
}
