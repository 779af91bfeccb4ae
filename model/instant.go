// Package model holds the plain value types shared across the ephemeris,
// transit, and dasha packages: instants and intervals, the zodiac model
// (houses, nakshatras, degree ranges), and the body catalogue.
package model

import "time"

// Instant is a single point in time, always treated as UTC.
type Instant = time.Time

// Interval is a half-open span of time [Start, End).
type Interval struct {
	Start Instant
	End   Instant
}

// NewInterval builds an Interval, swapping the bounds if given in reverse
// order so Start is always no later than End.
func NewInterval(start, end Instant) Interval {
	if end.Before(start) {
		start, end = end, start
	}
	return Interval{Start: start, End: end}
}

// Duration returns End minus Start.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Contains reports whether t falls in [Start, End).
func (iv Interval) Contains(t Instant) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// Intersects reports whether iv and other overlap.
func (iv Interval) Intersects(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Intersection returns the overlap of iv and other, and whether one exists.
func (iv Interval) Intersection(other Interval) (Interval, bool) {
	if !iv.Intersects(other) {
		return Interval{}, false
	}
	start := iv.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := iv.End
	if other.End.Before(end) {
		end = other.End
	}
	return Interval{Start: start, End: end}, true
}

// Shift returns iv translated by d.
func (iv Interval) Shift(d time.Duration) Interval {
	return Interval{Start: iv.Start.Add(d), End: iv.End.Add(d)}
}

// BeforeStart returns the slice of the interval [Start-d, Start).
func (iv Interval) BeforeStart(d time.Duration) Interval {
	return Interval{Start: iv.Start.Add(-d), End: iv.Start}
}

// FromStart returns the slice of the interval [Start, Start+d).
func (iv Interval) FromStart(d time.Duration) Interval {
	end := iv.Start.Add(d)
	if end.After(iv.End) {
		end = iv.End
	}
	return Interval{Start: iv.Start, End: end}
}

// BeforeEnd returns the slice of the interval [End-d, End).
func (iv Interval) BeforeEnd(d time.Duration) Interval {
	start := iv.End.Add(-d)
	if start.Before(iv.Start) {
		start = iv.Start
	}
	return Interval{Start: start, End: iv.End}
}

// FromEnd returns the slice of the interval [End, End+d).
func (iv Interval) FromEnd(d time.Duration) Interval {
	return Interval{Start: iv.End, End: iv.End.Add(d)}
}

// Unit is a calendar/clock granularity step.
type Unit int

const (
	Second Unit = iota
	Minute
	Hour
	Day
	Month
	Year
)

func (u Unit) String() string {
	switch u {
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Month:
		return "month"
	case Year:
		return "year"
	default:
		return "unknown"
	}
}

// nominal seconds per unit, anchored to the average Gregorian calendar
// (365.2425-day year, 1/12 of that per month); these are fixed constants,
// not calendar lookups, so Granularity is pure and side-effect free.
var unitSeconds = [...]float64{
	Second: 1,
	Minute: 60,
	Hour:   3600,
	Day:    86400,
	Month:  86400 * 365.2425 / 12,
	Year:   86400 * 365.2425,
}

// Granularity walks the ladder coarse-to-fine (Year downward) and returns
// the coarsest unit that fits at least once into d, with value the whole
// number of that unit contained in d. Year is the top of the ladder: any
// duration large enough never falls through to a finer unit.
func Granularity(d time.Duration) (value int64, unit Unit) {
	seconds := d.Seconds()
	if seconds < 0 {
		seconds = -seconds
	}
	for u := Year; u >= Second; u-- {
		step := unitSeconds[u]
		if seconds >= step {
			return int64(seconds / step), u
		}
	}
	return 0, Second
}

// DurationOf converts a (value, unit) pair back into a time.Duration, the
// inverse of Granularity for whole-unit inputs.
func DurationOf(value int64, unit Unit) time.Duration {
	seconds := float64(value) * unitSeconds[unit]
	return time.Duration(seconds * float64(time.Second))
}
