package model

import "time"

// Place is an immutable geographic location plus its civil timezone
// offset from UTC, used to convert a birth instant given in local time
// into UTC and to compute topocentric positions.
type Place struct {
	ID        string
	TZOffset  time.Duration
	Latitude  float64 // signed degrees, north positive
	Longitude float64 // signed degrees, east positive
	Altitude  float64 // meters
}

// ToUTC converts a wall-clock instant expressed in this place's local
// time into UTC.
func (p Place) ToUTC(local time.Time) time.Time {
	return local.Add(-p.TZOffset).UTC()
}
