// Package model contains the GORM table mappings of the persistence layer.
package model

import (
	"time"
)

// UserProfileModel is the GORM-specific struct for the 'user_profiles' table.
// Seq keeps first-insertion order across upserts.
type UserProfileModel struct {
	Seq               int64    `gorm:"primaryKey;autoIncrement"`
	UserID            string   `gorm:"type:varchar(255);not null;uniqueIndex"`
	Interests         []string `gorm:"serializer:json;type:jsonb;not null"`
	Lat               *float64 `gorm:"type:double precision"`
	Lng               *float64 `gorm:"type:double precision"`
	LocationTimestamp *int64
	NotificationToken *string `gorm:"type:varchar(512)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}
