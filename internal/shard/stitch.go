package shard

import "github.com/ratreya/indic-ephemeris/model"

// StitchIntervals appends incoming onto running, fusing the last interval
// of running with the first of incoming when they meet exactly (running's
// end equals incoming's start) into a single interval spanning both. A
// sub-second gap — or any gap at all — is left as two separate intervals;
// only an exact meeting point is fused, which Partition guarantees at
// shard boundaries.
func StitchIntervals(running []model.Interval, incoming []model.Interval) []model.Interval {
	if len(incoming) == 0 {
		return running
	}
	if len(running) == 0 {
		return append(running, incoming...)
	}

	last := running[len(running) - 1]
	first := incoming[0]
	if last.End.Equal(first.Start) {
		running[len(running)-1] = model.Interval{Start: last.Start, End: first.End}
		return append(running, incoming[1:]...)
	}
	return append(running, incoming...)
}
