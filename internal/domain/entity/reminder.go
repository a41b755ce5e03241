// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Reminder is a persisted location reminder. Its ID doubles as the request id
// of the geofence registered for it.
type Reminder struct {
	ID          string    `json:"id"`          // Unique identifier assigned at creation.
	UserID      string    `json:"user_id"`     // The owner of the reminder.
	Title       string    `json:"title"`       // Short title shown in the list and the notification.
	Description string    `json:"description"` // Free-text description.
	Location    string    `json:"location"`    // Human-readable location label.
	Latitude    float64   `json:"latitude"`    // Geofence center latitude.
	Longitude   float64   `json:"longitude"`   // Geofence center longitude.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReminderItem is the user-entered form of a reminder before it is saved.
// Every field may be missing, so coordinates are pointers.
type ReminderItem struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// ToReminder converts the item into a reminder owned by userID.
func (i *ReminderItem) ToReminder(userID string) *Reminder {
	reminder := &Reminder{
		ID:          i.ID,
		UserID:      userID,
		Title:       i.Title,
		Description: i.Description,
		Location:    i.Location,
	}
	if i.Latitude != nil {
		reminder.Latitude = *i.Latitude
	}
	if i.Longitude != nil {
		reminder.Longitude = *i.Longitude
	}

	return reminder
}

// ReminderItemFromEntity builds the display form of a stored reminder.
func ReminderItemFromEntity(r *Reminder) ReminderItem {
	lat, lng := r.Latitude, r.Longitude

	return ReminderItem{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Latitude:    &lat,
		Longitude:   &lng,
	}
}

// NotificationBody is the text shown under the title when the reminder fires.
func (r *Reminder) NotificationBody() string {
	parts := make([]string, 0, 2)
	if d := strings.TrimSpace(r.Description); d != "" {
		parts = append(parts, d)
	}
	if l := strings.TrimSpace(r.Location); l != "" {
		parts = append(parts, fmt.Sprintf("@ %s", l))
	}

	return strings.Join(parts, " ")
}

// GeoURI renders the reminder location as an RFC 5870 geo URI.
func (r *Reminder) GeoURI() string {
	uri := fmt.Sprintf("geo:%.6f,%.6f", r.Latitude, r.Longitude)
	if l := strings.TrimSpace(r.Location); l != "" {
		uri += "?q=" + url.QueryEscape(l)
	}

	return uri
}
