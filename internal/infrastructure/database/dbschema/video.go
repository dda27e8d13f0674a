package dbschema

import (
	"opal-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Video{})
}

// Video represents the persisted video schema. Source is the object key of
// the recording in blob storage, not a browsable URL.
type Video struct {
	BaseModel
	PublicID    string `gorm:"size:64;not null;uniqueIndex:ux_videos_public_id"`
	Title       string `gorm:"size:255;not null;default:'Untitled Video'"`
	Source      string `gorm:"size:512;not null"`
	Processing  bool   `gorm:"not null;default:true"`
	WorkspaceID uint   `gorm:"index:idx_videos_workspace;not null"`
	FolderID    *uint  `gorm:"index:idx_videos_folder"`
	UserID      uint   `gorm:"not null"`
}
