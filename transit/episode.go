package transit

import (
	"time"

	"github.com/ratreya/indic-ephemeris/config"
	"github.com/ratreya/indic-ephemeris/model"
)

// RetrogradeEpisode is a single retrograde loop together with its shadow
// periods: the pre-shadow arc the body re-treads in the run-up to turning
// retrograde, and the post-shadow arc it must cross again after turning
// direct before it has cleared new ground. This is standard Vedic
// astrology vocabulary, not an interpretive layer — it falls out of the
// same longitude the body revisits on either side of the loop.
type RetrogradeEpisode struct {
	Interval          model.Interval
	StationRetrograde model.Instant
	StationDirect     model.Instant
	PreShadow         model.Interval
	PostShadow        model.Interval
}

// RetrogradeEpisodes is Retrogrades, but returns the full shadow-period
// breakdown for each episode instead of the bare interval.
func (f *Finder) RetrogradeEpisodes(body model.Body, overlapping model.Interval, policy ...config.FringePolicy) ([]RetrogradeEpisode, error) {
	intervals, err := f.Retrogrades(body, overlapping, policy...)
	if err != nil {
		return nil, err
	}
	episodes := make([]RetrogradeEpisode, len(intervals))
	for i, iv := range intervals {
		ep, err := f.buildEpisode(body, iv)
		if err != nil {
			return nil, err
		}
		episodes[i] = ep
	}
	return episodes, nil
}

func (f *Finder) buildEpisode(body model.Body, iv model.Interval) (RetrogradeEpisode, error) {
	startPos, err := f.eph.Position(body, iv.Start)
	if err != nil {
		return RetrogradeEpisode{}, err
	}
	endPos, err := f.eph.Position(body, iv.End)
	if err != nil {
		return RetrogradeEpisode{}, err
	}

	span := time.Duration(body.RetrogradeDuration() * float64(time.Second))

	preStart, err := f.shadowCrossing(body, model.Interval{Start: iv.Start.Add(-span), End: iv.Start}, endPos.Longitude)
	if err != nil {
		return RetrogradeEpisode{}, err
	}
	postEnd, err := f.shadowCrossing(body, model.Interval{Start: iv.End, End: iv.End.Add(span)}, startPos.Longitude)
	if err != nil {
		return RetrogradeEpisode{}, err
	}

	return RetrogradeEpisode{
		Interval:          iv,
		StationRetrograde: iv.Start,
		StationDirect:     iv.End,
		PreShadow:         model.Interval{Start: preStart, End: iv.Start},
		PostShadow:        model.Interval{Start: iv.End, End: postEnd},
	}, nil
}

// shadowCrossing finds where, within window, the body's longitude first
// crosses ahead of target — the boundary of the shadow zone on one side
// of a retrograde loop.
func (f *Finder) shadowCrossing(body model.Body, window model.Interval, target float64) (model.Instant, error) {
	samples, err := f.samplePositions(f.eph, body, window, window.Duration()/20)
	if err != nil {
		return model.Instant{}, err
	}
	p := crossingPredicate(target)
	ivs, err := f.walk(f.eph, body, p, samples)
	if err != nil {
		return model.Instant{}, err
	}
	if len(ivs) == 0 {
		return window.Start, nil
	}
	return ivs[0].Start, nil
}

// crossingPredicate tests whether a position's longitude lies in the
// half of the ecliptic "ahead of" target in the direction of increasing
// longitude — true immediately after the body passes target, false
// immediately before.
func crossingPredicate(target float64) predicate {
	return func(p model.Position) bool {
		return model.NormalizeLongitude(p.Longitude-target) < 180
	}
}
