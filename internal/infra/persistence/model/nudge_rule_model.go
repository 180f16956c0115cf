package model

import (
	"time"
)

// NudgeRuleModel is the GORM-specific struct for the 'nudge_rules' table.
// NudgeID is not unique; ID orders rules by creation.
type NudgeRuleModel struct {
	ID           int64    `gorm:"primaryKey;autoIncrement"`
	NudgeID      string   `gorm:"type:varchar(255);not null;index"`
	Title        string   `gorm:"type:varchar(255);not null"`
	Message      string   `gorm:"type:text;not null"`
	Lat          float64  `gorm:"type:double precision;not null"`
	Lng          float64  `gorm:"type:double precision;not null"`
	RadiusM      float64  `gorm:"column:radius_m;type:double precision;not null;check:radius_m >= 0"`
	InterestTags []string `gorm:"serializer:json;type:jsonb;not null"`
	ActiveStart  string   `gorm:"type:char(5);not null"`
	ActiveEnd    string   `gorm:"type:char(5);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (NudgeRuleModel) TableName() string {
	return "nudge_rules"
}
