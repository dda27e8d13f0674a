package dbschema

import (
	"opal-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Subscription{}, Studio{})
}

// Subscription is the one-to-one billing record for a user.
type Subscription struct {
	BaseModel
	UserID     uint    `gorm:"not null;uniqueIndex:ux_subscriptions_user"`
	Plan       string  `gorm:"size:10;not null;default:'FREE'"`
	CustomerID *string `gorm:"size:255"`
}

// Studio holds a user's recorder settings, created empty on first login.
type Studio struct {
	BaseModel
	UserID uint    `gorm:"not null;uniqueIndex:ux_studios_user"`
	Screen *string `gorm:"size:64"`
	Mic    *string `gorm:"size:64"`
	Preset string  `gorm:"size:10;not null;default:'SD'"`
}
