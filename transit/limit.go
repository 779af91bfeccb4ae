package transit

import (
	"time"

	"github.com/ratreya/indic-ephemeris/model"
)

// TransitLimit bounds a transit search: either an explicit interval, or a
// count of occurrences to find forward or backward from an instant. It is
// a sum type expressed as an interface with two unexported
// implementations, constructed via Duration and Count.
type TransitLimit interface {
	// window returns the search interval to sweep for body, and a
	// truncate function applied to the raw results before they are
	// returned to the caller.
	window(body model.Body) (model.Interval, func([]model.Interval) []model.Interval)
}

type durationLimit struct {
	interval model.Interval
}

func (d durationLimit) window(model.Body) (model.Interval, func([]model.Interval) []model.Interval) {
	return d.interval, func(ivs []model.Interval) []model.Interval { return ivs }
}

// Duration searches exactly within interval.
func Duration(interval model.Interval) TransitLimit {
	return durationLimit{interval: interval}
}

type countLimit struct {
	from  model.Instant
	count int
}

func (c countLimit) window(body model.Body) (model.Interval, func([]model.Interval) []model.Interval) {
	n := c.count
	if n < 0 {
		n = -n
	}
	// +2 revolutions of safety margin so a body slower than average in
	// this window still yields at least |count| candidate transits.
	seconds := body.AvgTime(360) * float64(n+2)
	span := time.Duration(seconds * float64(time.Second))

	var rng model.Interval
	if c.count >= 0 {
		rng = model.Interval{Start: c.from, End: c.from.Add(span)}
	} else {
		rng = model.Interval{Start: c.from.Add(-span), End: c.from}
	}

	truncate := func(ivs []model.Interval) []model.Interval {
		if len(ivs) <= n {
			return ivs
		}
		if c.count >= 0 {
			return ivs[:n]
		}
		return ivs[len(ivs)-n:]
	}
	return rng, truncate
}

// Count searches forward from "from" when count > 0, backward when
// negative, truncating the result to |count| intervals.
func Count(from model.Instant, count int) TransitLimit {
	return countLimit{from: from, count: count}
}
