package dbschema

import (
	"opal-server/internal/domain/user"
	"opal-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(User{})
}

// User represents the persisted user schema tied to an external identity provider.
type User struct {
	BaseModel
	Subject   string  `gorm:"type:varchar(255);not null;uniqueIndex:ux_users_subject"`
	Email     string  `gorm:"type:varchar(320);not null"`
	FirstName *string `gorm:"type:varchar(150)"`
	LastName  *string `gorm:"type:varchar(150)"`
	AvatarURL *string `gorm:"type:varchar(512)"`

	Subscription  *Subscription  `gorm:"foreignKey:UserID"`
	Studio        *Studio        `gorm:"foreignKey:UserID"`
	Workspaces    []Workspace    `gorm:"foreignKey:UserID"`
	Memberships   []Member       `gorm:"foreignKey:UserID"`
	Notifications []Notification `gorm:"foreignKey:UserID"`
}

// NewSchemaUser converts a domain user into a schema instance.
func NewSchemaUser(u *user.User) *User {
	if u == nil {
		return nil
	}

	return &User{
		BaseModel: BaseModel{
			ID:        u.ID,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		Subject:   u.Subject,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
	}
}

// EtoD converts a schema user back to the domain representation.
func (u *User) EtoD() *user.User {
	if u == nil {
		return nil
	}

	return &user.User{
		ID:        u.ID,
		Subject:   u.Subject,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
