package transit

import (
	"sort"
	"time"

	"github.com/ratreya/indic-ephemeris/internal/skylog"
	"github.com/ratreya/indic-ephemeris/model"
)

const fixEdgeSafetyDay = 24 * time.Hour

// fixEdges corrects transit edges a retrograde loop may have
// mis-classified: a body that partially exits and re-enters arc near a
// transit boundary can fool the baseline sweep into reporting the wrong
// crossing instant. If the body never retrogrades, or there isn't enough
// room between successive transits to correct safely, transits pass
// through unchanged.
func (f *Finder) fixEdges(body model.Body, transits []model.Interval, arc model.DegreeRange) ([]model.Interval, error) {
	retroSeconds := body.RetrogradeDuration()
	if retroSeconds == 0 {
		return transits, nil
	}
	R := time.Duration(retroSeconds * float64(time.Second))

	threshold := 360 - arc.Size + 6
	if body.MaxDegrees(2*retroSeconds) > threshold {
		skylog.LogRetrogradeFringe(f.logger, body.String(), "insufficient room between transits for safe edge correction")
		return transits, nil
	}

	arcPredicate := rangePredicate(arc)
	retroPredicate := retrogradePredicate(body)

	out := make([]model.Interval, 0, len(transits))
	for _, t := range transits {
		fixed, err := f.fixEdge(body, t, R, arcPredicate, retroPredicate)
		if err != nil {
			return nil, err
		}
		out = append(out, fixed)
	}
	return out, nil
}

// fixEdge examines the four 2R windows around t's start and end edges for
// retrograde activity. If any is found, it forces a set of sample
// instants spanning both edges — the edges themselves, a day-padded
// bracket beyond each, each retrograde sub-interval's endpoints, and
// their midpoints — fetches positions at all of them, and reruns the
// baseline walk over that augmented, sorted sample set. If no retrograde
// activity turns up in any window, t passes through unchanged.
func (f *Finder) fixEdge(body model.Body, t model.Interval, R time.Duration, arcPredicate, retroPredicate predicate) (model.Interval, error) {
	width := 2 * R
	windows := []model.Interval{
		{Start: t.Start.Add(-width), End: t.Start},
		{Start: t.Start, End: t.Start.Add(width)},
		{Start: t.End.Add(-width), End: t.End},
		{Start: t.End, End: t.End.Add(width)},
	}

	var retro []model.Interval
	for _, w := range windows {
		sub, err := f.sweep(f.eph, body, w, retroPredicate, R/2)
		if err != nil {
			return model.Interval{}, err
		}
		retro = append(retro, sub...)
	}
	if len(retro) == 0 {
		return t, nil
	}

	forced := map[time.Time]struct{}{
		t.Start: {}, t.End: {},
		t.Start.Add(-(width + fixEdgeSafetyDay)): {}, t.Start.Add(width + fixEdgeSafetyDay): {},
		t.End.Add(-(width + fixEdgeSafetyDay)): {}, t.End.Add(width + fixEdgeSafetyDay): {},
	}
	for _, r := range retro {
		forced[r.Start] = struct{}{}
		forced[r.End] = struct{}{}
		forced[r.Start.Add(r.Duration()/2)] = struct{}{}
	}

	instants := make([]model.Instant, 0, len(forced))
	for instant := range forced {
		instants = append(instants, instant)
	}
	sort.Slice(instants, func(i, j int) bool { return instants[i].Before(instants[j]) })

	samples, err := f.fetchAll(f.eph, body, instants)
	if err != nil {
		return model.Interval{}, err
	}
	rebuilt, err := f.walk(f.eph, body, arcPredicate, samples)
	if err != nil {
		return model.Interval{}, err
	}
	return coverOverlapping(rebuilt, t), nil
}

// coverOverlapping folds every rebuilt sub-interval that overlaps or
// touches the original raw transit t into a single corrected interval; if
// nothing overlaps (a pathological augmented sample set), t is returned
// unchanged rather than dropped.
func coverOverlapping(rebuilt []model.Interval, t model.Interval) model.Interval {
	start, end := t.Start, t.End
	found := false
	for _, iv := range rebuilt {
		if iv.End.Before(t.Start) || iv.Start.After(t.End) {
			continue
		}
		if !found || iv.Start.Before(start) {
			start = iv.Start
		}
		if !found || iv.End.After(end) {
			end = iv.End
		}
		found = true
	}
	if !found {
		return t
	}
	return model.Interval{Start: start, End: end}
}
