package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationLogModel is the GORM-specific struct for the 'notification_logs' table.
// One row per push attempted for a fired reminder.
type NotificationLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReminderID   string    `gorm:"type:varchar(36);not null;index"`
	UserID       string    `gorm:"type:varchar(128);not null"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null"`
	Status       string    `gorm:"type:varchar(20);not null"`
	FCMMessageID string    `gorm:"type:varchar(255)"`
	ErrorMessage string    `gorm:"type:text"`
	SentAt       time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}

// All lists every model, in creation order, for AutoMigrate and code generation.
func All() []any {
	return []any{
		&ReminderModel{},
		&UserDeviceModel{},
		&NotificationLogModel{},
	}
}
