package transit

import (
	"time"

	"github.com/ratreya/indic-ephemeris/config"
	"github.com/ratreya/indic-ephemeris/model"
)

// Retrogrades returns the maximal intervals within overlapping where body
// moves retrograde (negative speed for ordinary bodies, positive for the
// lunar nodes). Sun and Moon never retrograde and always yield nil.
func (f *Finder) Retrogrades(body model.Body, overlapping model.Interval, policy ...config.FringePolicy) ([]model.Interval, error) {
	retroSeconds := body.RetrogradeDuration()
	if retroSeconds == 0 {
		return nil, nil
	}
	R := time.Duration(retroSeconds * float64(time.Second))

	pol := f.cfg.RetrogradeFringePolicy
	if len(policy) > 0 {
		pol = policy[0]
	}

	p := retrogradePredicate(body)
	window := overlapping

	startPos, err := f.eph.Position(body, window.Start)
	if err != nil {
		return nil, err
	}
	if p(startPos) {
		window.Start = window.Start.Add(-R)
	}
	endPos, err := f.eph.Position(body, window.End)
	if err != nil {
		return nil, err
	}
	if p(endPos) {
		window.End = window.End.Add(R)
	}

	candidates, err := f.search(body, window, p, R/2)
	if err != nil {
		return nil, err
	}

	fringe := maxInterfringe(body)
	var refined []model.Interval
	for _, c := range candidates {
		if c.Duration() < R/2 {
			continue // a brief speed-sign flicker, not a genuine episode
		}
		sub, err := f.refineRetrogradeEdges(body, c, p, fringe)
		if err != nil {
			return nil, err
		}
		refined = append(refined, sub...)
	}

	return collapseFringe(refined, pol, fringe), nil
}

// refineRetrogradeEdges resamples at one-hour stride across a fringe
// window bracketing each edge of a candidate retrograde episode, so a
// brief direction reversal right at the edge isn't lost to the coarser
// R/2 sampling stride used to find the candidate in the first place.
func (f *Finder) refineRetrogradeEdges(body model.Body, candidate model.Interval, p predicate, fringe time.Duration) ([]model.Interval, error) {
	window := model.Interval{
		Start: candidate.Start.Add(-fringe),
		End:   candidate.End.Add(fringe),
	}
	return f.sweep(f.eph, body, window, p, time.Hour)
}
