package dbschema

import (
	"opal-server/internal/domain/folder"
	"opal-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Folder{})
}

// Folder represents the persisted folder schema.
type Folder struct {
	BaseModel
	PublicID    string `gorm:"size:64;not null;uniqueIndex:ux_folders_public_id"`
	Name        string `gorm:"size:255;not null;default:'Untitled Folder'"`
	WorkspaceID uint   `gorm:"index:idx_folders_workspace;not null"`

	Videos []Video `gorm:"foreignKey:FolderID"`
}

// EtoD converts a schema folder to the domain representation. The video
// count is a query-derived column, populated by the repository.
func (f *Folder) EtoD(workspacePublicID string, videoCount int64) *folder.Folder {
	if f == nil {
		return nil
	}

	return &folder.Folder{
		ID:         f.ID,
		PublicID:   f.PublicID,
		Name:       f.Name,
		Workspace:  workspacePublicID,
		VideoCount: videoCount,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}
