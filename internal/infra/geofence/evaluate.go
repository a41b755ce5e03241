// Package geofence implements the server-side geofencing service: owners
// register circular regions and device location reports are turned into
// boundary transitions.
package geofence

import (
	"slices"
	"time"

	"reminders/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// DistanceMeters is the haversine distance between two coordinates.
func DistanceMeters(a, b entity.LatLng) float64 {
	return geo.Distance(
		orb.Point{a.Longitude, a.Latitude},
		orb.Point{b.Longitude, b.Latitude},
	)
}

// Contains reports whether point lies within the fence radius.
func Contains(fence *entity.Geofence, point entity.LatLng) bool {
	return DistanceMeters(fence.Center, point) <= fence.RadiusMeters
}

// ownerState is everything monitored for one owner.
type ownerState struct {
	Fences   map[string]*entity.Geofence `json:"fences"`
	Inside   map[string]bool             `json:"inside"`
	Location *entity.LatLng              `json:"location,omitempty"`
}

func newOwnerState() *ownerState {
	return &ownerState{
		Fences: make(map[string]*entity.Geofence),
		Inside: make(map[string]bool),
	}
}

// purgeExpired drops fences past their expiration and returns their IDs.
func (s *ownerState) purgeExpired(now time.Time) []string {
	var expired []string
	for id, fence := range s.Fences {
		if fence.Expired(now) {
			delete(s.Fences, id)
			delete(s.Inside, id)
			expired = append(expired, id)
		}
	}

	return expired
}

// enter records point and returns the IDs of fences that went from outside to
// inside and monitor ENTER. Leaving a fence resets its state so a later
// return raises ENTER again.
func (s *ownerState) enter(point entity.LatLng) []string {
	s.Location = &point

	var entered []string
	for id, fence := range s.Fences {
		inside := Contains(fence, point)
		if inside && !s.Inside[id] && fence.Monitors(entity.TransitionEnter) {
			entered = append(entered, id)
		}
		if inside {
			s.Inside[id] = true
		} else {
			delete(s.Inside, id)
		}
	}

	return entered
}

// add registers fences. With an ENTER initial trigger and a known location the
// fences already containing it are returned as entered.
func (s *ownerState) add(fences []*entity.Geofence, initialTrigger entity.TransitionType) []string {
	var entered []string
	for _, fence := range fences {
		s.Fences[fence.RequestID] = fence
		delete(s.Inside, fence.RequestID)

		if s.Location == nil || !Contains(fence, *s.Location) {
			continue
		}
		s.Inside[fence.RequestID] = true
		if initialTrigger == entity.TransitionEnter && fence.Monitors(entity.TransitionEnter) {
			entered = append(entered, fence.RequestID)
		}
	}

	return entered
}

func newTransition(owner string, ids []string, point entity.LatLng, now time.Time) []*entity.GeofenceTransition {
	if len(ids) == 0 {
		return nil
	}
	slices.Sort(ids)

	return []*entity.GeofenceTransition{{
		Owner:       owner,
		RequestIDs:  ids,
		Transition:  entity.TransitionEnter,
		Location:    point,
		TriggeredAt: now,
	}}
}
