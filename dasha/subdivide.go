package dasha

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/ratreya/indic-ephemeris/config"
	"github.com/ratreya/indic-ephemeris/internal/skylog"
	"github.com/ratreya/indic-ephemeris/model"
)

func cycleIndex(body model.Body) int {
	for i, b := range model.VimshottariCycle {
		if b == body {
			return i
		}
	}
	return 0
}

func ratioDuration(planet model.Body, total time.Duration) time.Duration {
	return time.Duration(planet.VimshottariRatio() * float64(total))
}

// subdivide partitions interval into consecutive Vimshottari periods
// starting at startingPlanet, treating elapsed as time already consumed
// of the cycle, counted from startingPlanet, before interval.Start. Full
// ratio-of-total shares are subtracted from elapsed, walking the cycle
// from startingPlanet, until it is used up; the planet at which that
// happens is emitted first, with the residual of its share as duration
// (startingPlanet itself when elapsed is shorter than its share). Every
// period after that runs its full ratio-of-total share. Recursion stops once depth reaches cfg's
// configured maximum (Pratyantar by default).
func subdivide(interval model.Interval, startingPlanet model.Body, elapsed time.Duration, depth config.DashaDepth, cfg *config.Config, logger zerolog.Logger) []*MetaDasha {
	total := interval.Duration() + elapsed
	cycle := model.VimshottariCycle

	idx := cycleIndex(startingPlanet)
	remaining := elapsed
	var firstDuration, consumedBeforeFirst time.Duration
	for {
		prior := remaining
		candidate := ratioDuration(cycle[idx], total)
		remaining -= candidate
		if remaining <= 0 {
			firstDuration = -remaining
			consumedBeforeFirst = prior
			break
		}
		idx = (idx + 1) % len(cycle)
	}

	var nodes []*MetaDasha
	cursor := interval.Start
	i := idx
	duration := firstDuration
	childElapsed := consumedBeforeFirst

	for cursor.Before(interval.End) {
		end := cursor.Add(duration)
		if end.After(interval.End) {
			end = interval.End
		}

		node := &MetaDasha{
			Period: model.Interval{Start: cursor, End: end},
			Planet: cycle[i],
			Depth:  depth,
		}
		skylog.LogDashaBoundary(logger, depth.String(), node.Planet.String(), node.Period.Start, node.Period.End)
		if depth != cfg.MaxDashaDepth {
			node.Children = subdivide(node.Period, node.Planet, childElapsed, depth.Next(), cfg, logger)
			for _, c := range node.Children {
				c.Parent = node
			}
		}
		nodes = append(nodes, node)

		cursor = end
		i = (i + 1) % len(cycle)
		duration = ratioDuration(cycle[i], total)
		childElapsed = 0
	}
	return nodes
}
