package model

import (
	"time"
)

// ReminderModel is the GORM-specific struct for the 'reminders' table.
type ReminderModel struct {
	ID          string    `gorm:"type:varchar(36);primaryKey"`
	UserID      string    `gorm:"type:varchar(128);not null;index:idx_reminders_user_created,priority:1"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	Location    string    `gorm:"type:varchar(255);not null"`
	Latitude    float64   `gorm:"type:double precision;not null"`
	Longitude   float64   `gorm:"type:double precision;not null"`
	CreatedAt   time.Time `gorm:"index:idx_reminders_user_created,priority:2"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReminderModel) TableName() string {
	return "reminders"
}
