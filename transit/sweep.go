package transit

import (
	"context"
	"time"

	"github.com/ratreya/indic-ephemeris/ephemeris"
	"github.com/ratreya/indic-ephemeris/internal/shard"
	"github.com/ratreya/indic-ephemeris/model"
)

// pointSample pairs an instant with the position computed there, so the
// walk below never recomputes a position it already has.
type pointSample struct {
	instant model.Instant
	pos     model.Position
}

// sweep runs the baseline adaptive-sampling walk (coarse sample at step,
// refine every sign change via bisection) over window, returning the
// closed-then-open sub-intervals where p holds.
func (f *Finder) sweep(eph *ephemeris.Ephemeris, body model.Body, window model.Interval, p predicate, step time.Duration) ([]model.Interval, error) {
	samples, err := f.samplePositions(eph, body, window, step)
	if err != nil {
		return nil, err
	}
	return f.walk(eph, body, p, samples)
}

func (f *Finder) samplePositions(eph *ephemeris.Ephemeris, body model.Body, window model.Interval, step time.Duration) ([]pointSample, error) {
	var instants []model.Instant
	for t := window.Start; t.Before(window.End); t = t.Add(step) {
		instants = append(instants, t)
	}
	if len(instants) == 0 || instants[len(instants)-1].Before(window.End) {
		instants = append(instants, window.End)
	}
	return f.fetchAll(eph, body, instants)
}

func (f *Finder) fetchAll(eph *ephemeris.Ephemeris, body model.Body, instants []model.Instant) ([]pointSample, error) {
	out := make([]pointSample, len(instants))
	for i, t := range instants {
		pos, err := eph.Position(body, t)
		if err != nil {
			return nil, err
		}
		out[i] = pointSample{instant: t, pos: pos}
	}
	return out, nil
}

// walk maintains an open interval_start across the sample sequence,
// refining every predicate transition through refineEdge, and emitting
// closed-then-open intervals. A run still open at the last sample closes
// there.
func (f *Finder) walk(eph *ephemeris.Ephemeris, body model.Body, p predicate, samples []pointSample) ([]model.Interval, error) {
	if len(samples) == 0 {
		return nil, nil
	}
	var out []model.Interval
	var open *model.Instant

	if p(samples[0].pos) {
		t := samples[0].instant
		open = &t
	}

	for i := 1; i < len(samples); i++ {
		prevHolds := p(samples[i-1].pos)
		holds := p(samples[i].pos)
		if holds == prevHolds {
			continue
		}
		if holds {
			edge, ok, err := refineEdge(eph, body, p, samples[i-1].instant, samples[i].instant, f.cfg.TransitResolution, f.logger)
			if err != nil {
				return nil, err
			}
			if !ok {
				edge = samples[i].instant
			}
			open = &edge
		} else {
			edge, ok, err := refineEdge(eph, body, negate(p), samples[i-1].instant, samples[i].instant, f.cfg.TransitResolution, f.logger)
			if err != nil {
				return nil, err
			}
			if !ok {
				edge = samples[i].instant
			}
			if open != nil {
				out = append(out, model.Interval{Start: *open, End: edge})
				open = nil
			}
		}
	}
	if open != nil {
		out = append(out, model.Interval{Start: *open, End: samples[len(samples)-1].instant})
	}
	return out, nil
}

// search runs sweep directly when window is small, or shards across
// config.Concurrency workers — each with its own fresh adapter — when the
// sample count crosses config.ConcurrencyThreshold, stitching shard
// results back together in shard order.
func (f *Finder) search(body model.Body, window model.Interval, p predicate, step time.Duration) ([]model.Interval, error) {
	totalSamples := int64(window.Duration() / step)
	shardCfg := shard.Config{Concurrency: f.cfg.Concurrency, Threshold: f.cfg.ConcurrencyThreshold}
	if !shardCfg.ShouldShard(totalSamples) {
		return f.sweep(f.eph, body, window, p, step)
	}

	return shard.MapReduce(context.Background(), shardCfg, window,
		func(ctx context.Context, shardRange model.Interval, workerIndex int) ([]model.Interval, error) {
			worker, err := f.eph.Fresh()
			if err != nil {
				return nil, err
			}
			return f.sweep(worker, body, shardRange, p, step)
		},
		func(items []model.Interval, state *[]model.Interval) {
			*state = shard.StitchIntervals(*state, items)
		},
	)
}
