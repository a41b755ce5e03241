package entity

import "fmt"

// DroppedPinName labels a point chosen by coordinate rather than from a place.
const DroppedPinName = "Dropped Pin"

// PointOfInterest is a place picked on the map.
type PointOfInterest struct {
	PlaceID   string  `json:"place_id,omitempty"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DroppedPin builds a point of interest for a raw coordinate.
func DroppedPin(lat, lng float64) PointOfInterest {
	return PointOfInterest{
		Name:      DroppedPinName,
		Latitude:  lat,
		Longitude: lng,
	}
}

// Label is the text stored as the reminder location.
func (p PointOfInterest) Label() string {
	if p.Name != "" && p.Name != DroppedPinName {
		return p.Name
	}

	return fmt.Sprintf("Lat: %.5f, Long: %.5f", p.Latitude, p.Longitude)
}
