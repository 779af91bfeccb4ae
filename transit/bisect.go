package transit

import (
	"github.com/rs/zerolog"

	"github.com/ratreya/indic-ephemeris/ephemeris"
	"github.com/ratreya/indic-ephemeris/internal/skylog"
	"github.com/ratreya/indic-ephemeris/model"
)

// refineEdge locates the instant within [a, b] where p first becomes true,
// given p(a) == false and p(b) == true (or the reverse sense the caller
// wants, via a negated predicate). It resamples the bracket at
// successively finer granularity-ladder steps rather than halving the
// interval blindly, so the resampled instants always land on clean
// second/minute/hour/day boundaries.
//
// The bracket narrows until it is no wider than resolution, at which
// point both endpoints are evaluated directly and the earlier one
// satisfying p is returned. Returning ok == false means p held at neither
// endpoint once the resolution floor was reached, or at no instant of a
// resampled bracket — a caller bug (the bracket wasn't a genuine
// crossing) rather than a normal outcome.
func refineEdge(eph *ephemeris.Ephemeris, body model.Body, p predicate, a, b model.Instant, resolution model.Unit, logger zerolog.Logger) (model.Instant, bool, error) {
	floor := model.DurationOf(1, resolution)

	for {
		if b.Sub(a) <= floor {
			posA, err := eph.Position(body, a)
			if err != nil {
				return model.Instant{}, false, err
			}
			if p(posA) {
				return a, true, nil
			}
			posB, err := eph.Position(body, b)
			if err != nil {
				return model.Instant{}, false, err
			}
			if p(posB) {
				return b, true, nil
			}
			skylog.LogEdgeRefinement(logger, body.String(), a, b)
			return b, false, nil
		}

		_, unit := model.Granularity(b.Sub(a))
		finer := unit
		if finer > model.Second {
			finer--
		}
		step := model.DurationOf(1, finer)

		end := b.Add(step)
		var instants []model.Instant
		for t := a; !t.After(end); t = t.Add(step) {
			instants = append(instants, t)
		}
		if instants[len(instants)-1] != end {
			instants = append(instants, end)
		}

		prior := a
		found := false
		var satisfying model.Instant
		for i, t := range instants {
			pos, err := eph.Position(body, t)
			if err != nil {
				return model.Instant{}, false, err
			}
			if p(pos) {
				satisfying = t
				found = true
				if i > 0 {
					prior = instants[i-1]
				}
				break
			}
		}
		if !found {
			skylog.LogEdgeRefinement(logger, body.String(), a, b)
			return b, false, nil
		}
		a, b = prior, satisfying
	}
}
