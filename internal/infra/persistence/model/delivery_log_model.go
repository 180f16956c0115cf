package model

// DeliveryLogModel is the GORM-specific struct for the append-only 'delivery_logs' table.
type DeliveryLogModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserID      string `gorm:"type:varchar(255);not null;index:idx_delivery_logs_pair,priority:1"`
	NudgeID     string `gorm:"type:varchar(255);not null;index:idx_delivery_logs_pair,priority:2"`
	DeliveredAt int64  `gorm:"not null;index:idx_delivery_logs_pair,priority:3"` // Unix seconds.
}

// TableName explicitly sets the table name for GORM.
func (DeliveryLogModel) TableName() string {
	return "delivery_logs"
}

// All returns every model managed by the persistence layer, in migration order.
func All() []any {
	return []any{
		&UserProfileModel{},
		&NudgeRuleModel{},
		&DeliveryLogModel{},
	}
}
