package dbschema

import (
	"encoding/json"

	"gorm.io/datatypes"

	"opal-server/internal/domain/notification"
	"opal-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Notification{})
}

// Notification is a persisted entry in a user's notification feed.
type Notification struct {
	BaseModel
	UserID  uint           `gorm:"index:idx_notifications_user;not null"`
	Content string         `gorm:"type:text;not null"`
	Payload datatypes.JSON `gorm:"type:jsonb"`
}

// EtoD converts a schema notification to the domain representation.
// A malformed payload is dropped rather than failing the listing.
func (n *Notification) EtoD() *notification.Notification {
	if n == nil {
		return nil
	}

	var payload map[string]any
	if len(n.Payload) > 0 {
		_ = json.Unmarshal(n.Payload, &payload)
	}

	return &notification.Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Content:   n.Content,
		Payload:   payload,
		CreatedAt: n.CreatedAt,
	}
}
