// Package shard implements the sharded fork-join driver the spec calls
// map_reduce: partition a date range into equal shards, run an
// independent worker per shard, then reduce results strictly in shard
// order.
package shard

import (
	"context"
	"sync"
	"time"

	"github.com/ratreya/indic-ephemeris/model"
)

// Config tunes whether and how a search range gets sharded.
type Config struct {
	// Concurrency is the number of shards to split a range into.
	Concurrency int
	// Threshold is the minimum sample count (range.Duration / sampling
	// step) below which a search runs sequentially instead of sharded.
	Threshold int64
}

// ShouldShard reports whether a search sampling totalSamples instants
// across the full range should be sharded under cfg.
func (c Config) ShouldShard(totalSamples int64) bool {
	return c.Concurrency > 1 && totalSamples >= c.Threshold
}

// Partition splits rng into n equal shards. The last shard absorbs any
// remainder from integer duration division, and shard boundaries meet
// exactly (shard[i].End == shard[i+1].Start) so reduce-time stitching
// never needs to reason about a gap.
func Partition(rng model.Interval, n int) []model.Interval {
	if n < 1 {
		n = 1
	}
	step := rng.Duration() / time.Duration(n)
	shards := make([]model.Interval, n)
	start := rng.Start
	for i := 0; i < n; i++ {
		end := start.Add(step)
		if i == n-1 {
			end = rng.End
		}
		shards[i] = model.Interval{Start: start, End: end}
		start = end
	}
	return shards
}

type shardResult[T any] struct {
	items []T
	err   error
}

// MapReduce partitions rng into cfg.Concurrency shards, runs mapFn for
// each shard concurrently (mapFn is responsible for constructing any
// per-worker state — an Oracle instance must never be shared across
// workers), waits for every shard (a barrier, not first-to-finish), then
// feeds each shard's items into reduceFn strictly in shard order. The
// first error encountered in shard order — not the first to arrive — is
// returned, and reduceFn is not called at all in that case.
func MapReduce[T, W any](
	ctx context.Context,
	cfg Config,
	rng model.Interval,
	mapFn func(ctx context.Context, shardRange model.Interval, workerIndex int) ([]T, error),
	reduceFn func(items []T, state *W),
) (W, error) {
	var zero W
	shards := Partition(rng, cfg.Concurrency)
	results := make([]shardResult[T], len(shards))

	var wg sync.WaitGroup
	for i, sh := range shards {
		wg.Add(1)
		go func(i int, sh model.Interval) {
			defer wg.Done()
			items, err := mapFn(ctx, sh, i)
			results[i] = shardResult[T]{items: items, err: err}
		}(i, sh)
	}
	wg.Wait()

	for _, r := range results {
		if r.err != nil {
			return zero, r.err
		}
	}

	var state W
	for _, r := range results {
		reduceFn(r.items, &state)
	}
	return state, nil
}
