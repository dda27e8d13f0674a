package dbschema

import (
	"opal-server/internal/domain/workspace"
	"opal-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Workspace{}, Member{})
}

// Workspace represents the persisted workspace schema.
type Workspace struct {
	BaseModel
	PublicID string `gorm:"size:64;not null;uniqueIndex:ux_workspaces_public_id"`
	Name     string `gorm:"size:255;not null"`
	Type     string `gorm:"size:20;not null;default:'PERSONAL'"`
	UserID   uint   `gorm:"index:idx_workspaces_user;not null"`

	Folders []Folder `gorm:"foreignKey:WorkspaceID"`
	Videos  []Video  `gorm:"foreignKey:WorkspaceID"`
	Members []Member `gorm:"foreignKey:WorkspaceID"`
}

// Member links a user to a workspace they do not own.
type Member struct {
	BaseModel
	UserID      uint `gorm:"not null;uniqueIndex:ux_members_user_workspace"`
	WorkspaceID uint `gorm:"not null;uniqueIndex:ux_members_user_workspace"`
}

// EtoD converts a schema workspace back to the domain representation.
func (w *Workspace) EtoD() *workspace.Workspace {
	if w == nil {
		return nil
	}

	return &workspace.Workspace{
		ID:        w.ID,
		PublicID:  w.PublicID,
		Name:      w.Name,
		Type:      workspace.Type(w.Type),
		UserID:    w.UserID,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// Summary converts a schema workspace to its listing projection.
func (w *Workspace) Summary() workspace.Summary {
	return workspace.Summary{
		PublicID: w.PublicID,
		Name:     w.Name,
		Type:     workspace.Type(w.Type),
	}
}
