package dbschema

import "time"

// BaseModel carries the surrogate key and timestamps shared by all tables.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
