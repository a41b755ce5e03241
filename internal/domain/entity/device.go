package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice represents a user's device registered for push notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`   // Owner of the device.
	FCMToken  string    `json:"fcm_token"` // Target for reminder pushes.
	DeviceID  string    `json:"device_id"` // Client-side identifier, unique per user.
	Platform  string    `json:"platform"`  // android or ios.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
