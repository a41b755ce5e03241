package entity

import (
	"slices"
	"time"
)

// TransitionType is the kind of boundary crossing a geofence reports.
type TransitionType string

const (
	TransitionEnter TransitionType = "ENTER"
	TransitionExit  TransitionType = "EXIT"
	TransitionDwell TransitionType = "DWELL"
)

// LatLng is a WGS84 coordinate.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geofence is a circular region monitored for one owner.
type Geofence struct {
	RequestID       string           `json:"request_id"` // Equals the reminder ID.
	Center          LatLng           `json:"center"`
	RadiusMeters    float64          `json:"radius_meters"`
	ExpiresAt       time.Time        `json:"expires_at"` // Zero means never.
	TransitionTypes []TransitionType `json:"transition_types"`
}

// Monitors reports whether the geofence raises transitions of type t.
func (g *Geofence) Monitors(t TransitionType) bool {
	return slices.Contains(g.TransitionTypes, t)
}

// Expired reports whether the geofence is no longer monitored at now.
func (g *Geofence) Expired(now time.Time) bool {
	return !g.ExpiresAt.IsZero() && !now.Before(g.ExpiresAt)
}

// GeofencingRequest adds a batch of geofences under one owner. The owner plays
// the role of the delivery target: removing by owner clears every fence added
// with it.
type GeofencingRequest struct {
	Owner          string
	Geofences      []*Geofence
	InitialTrigger TransitionType // Raised at add time when already inside, empty for none.
}

// GeofenceTransition is a boundary crossing detected for an owner.
type GeofenceTransition struct {
	Owner       string         `json:"owner"`
	RequestIDs  []string       `json:"request_ids"`
	Transition  TransitionType `json:"transition"`
	Location    LatLng         `json:"location"`
	TriggeredAt time.Time      `json:"triggered_at"`
}
