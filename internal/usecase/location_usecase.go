package usecase

import (
	"context"
)

// ReportLocationInput is a device position report.
type ReportLocationInput struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// LocationUsecase feeds device positions into the geofence registry.
type LocationUsecase interface {
	// ReportLocation records the position and publishes every transition it
	// raises. It returns the number of transitions published.
	ReportLocation(ctx context.Context, userID string, input *ReportLocationInput) (int, error)
}
