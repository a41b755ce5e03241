package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification delivery statuses.
const (
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

// ReminderNotification is the payload pushed when a reminder's geofence is entered.
type ReminderNotification struct {
	ReminderID  string
	Title       string
	Description string
	Location    string
	Latitude    float64
	Longitude   float64
}

// Data is the key/value payload attached to the push.
func (n *ReminderNotification) Data() map[string]string {
	return map[string]string{
		"reminder_id": n.ReminderID,
		"title":       n.Title,
		"description": n.Description,
		"location":    n.Location,
	}
}

// NotificationLog records the outcome of one push to one device.
type NotificationLog struct {
	ID           uuid.UUID `json:"id"`
	ReminderID   string    `json:"reminder_id"`
	UserID       string    `json:"user_id"`
	DeviceID     uuid.UUID `json:"device_id"`
	Status       string    `json:"status"`
	FCMMessageID string    `json:"fcm_message_id"`
	ErrorMessage string    `json:"error_message"`
	SentAt       time.Time `json:"sent_at"`
}
