package folderres

import (
	"opal-server/internal/domain/folder"
	"opal-server/internal/utils/functional"
)

// FolderResponse represents a folder with its derived video count
type FolderResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	VideoCount int64  `json:"video_count"`
	CreatedAt  int64  `json:"created_at"`
}

// FolderListResponse represents a list of folders in a workspace
type FolderListResponse struct {
	Object string           `json:"object"`
	Data   []FolderResponse `json:"data"`
	Total  int              `json:"total"`
}

// NewFolderListResponse creates a list response from domain folders.
// A nil or empty input yields an empty data array, never null.
func NewFolderListResponse(folders []*folder.Folder) *FolderListResponse {
	data := functional.Map(folders, func(f *folder.Folder) FolderResponse {
		return FolderResponse{
			ID:         f.PublicID,
			Name:       f.Name,
			VideoCount: f.VideoCount,
			CreatedAt:  f.CreatedAt.Unix(),
		}
	})
	return &FolderListResponse{Object: "list", Data: data, Total: len(data)}
}
