// Package entity contains the core business objects of the project.
package entity

import (
	"math"

	"github.com/paulmach/orb"
)

// Location is a WGS84 coordinate in degrees with an optional capture time.
type Location struct {
	Lat       float64 `json:"lat"`       // Latitude in degrees, [-90, 90].
	Lng       float64 `json:"lng"`       // Longitude in degrees, [-180, 180].
	Timestamp *int64  `json:"timestamp"` // Optional capture time in unix seconds.
}

// Point converts the location to an orb point (x = longitude, y = latitude).
func (l Location) Point() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// IsValid reports whether the coordinate lies within the valid degree ranges.
func (l Location) IsValid() bool {
	if math.IsNaN(l.Lat) || math.IsNaN(l.Lng) {
		return false
	}

	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}
