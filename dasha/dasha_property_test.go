package dasha

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ratreya/indic-ephemeris/config"
	"github.com/ratreya/indic-ephemeris/ephemeris"
	"github.com/ratreya/indic-ephemeris/model"
)

// Property: Vimshottari completeness and nesting hold for any birth.
// Validates: spec.md §8 invariants 1 and 2.

// birthSecondsGen produces arbitrary Unix timestamps spanning 1900 through
// 2100, so the Moon's mean longitude at birth lands in every nakshatra
// over the course of a run.
func birthSecondsGen() gopter.Gen {
	return gen.Int64Range(-2208988800, 4102444800)
}

func randomEphemeris(seconds int64) (*ephemeris.Ephemeris, error) {
	birth := time.Unix(seconds, 0).UTC()
	place := model.Place{ID: "property", TZOffset: 0, Latitude: 23.293, Longitude: 75.626}
	return ephemeris.New(birth, place, config.Default())
}

// validNesting is checkNesting's bool-returning twin, for property
// testing: every node's children partition its period exactly and
// follow the canonical cycle starting from the first child's own planet.
func validNesting(nodes []*MetaDasha) bool {
	for _, n := range nodes {
		if len(n.Children) == 0 {
			continue
		}
		if diff := sumDurations(n.Children) - n.Period.Duration(); diff > time.Millisecond || diff < -time.Millisecond {
			return false
		}
		startIdx := cycleIndex(n.Children[0].Planet)
		for i, c := range n.Children {
			want := model.VimshottariCycle[(startIdx+i)%len(model.VimshottariCycle)]
			if c.Planet != want || c.Parent != n {
				return false
			}
		}
		if !validNesting(n.Children) {
			return false
		}
	}
	return true
}

func TestPropertyVimshottariCompleteness(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	properties := gopter.NewProperties(parameters)

	properties.Property("prenatal + postnatal Maha duration is exactly 120 years", prop.ForAll(
		func(seconds int64) bool {
			eph, err := randomEphemeris(seconds)
			if err != nil {
				return false
			}
			prenatal, postnatal, err := New(eph).Vimshottari()
			if err != nil {
				return false
			}
			total := sumDurations(prenatal) + sumDurations(postnatal)
			want := model.DurationOf(120, model.Year)
			diff := total - want
			return diff <= time.Millisecond && diff >= -time.Millisecond
		},
		birthSecondsGen(),
	))

	properties.TestingRun(t)
}

func TestPropertyVimshottariNesting(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	properties := gopter.NewProperties(parameters)

	properties.Property("every node's children partition its period in canonical cycle order", prop.ForAll(
		func(seconds int64) bool {
			eph, err := randomEphemeris(seconds)
			if err != nil {
				return false
			}
			prenatal, postnatal, err := New(eph).Vimshottari()
			if err != nil {
				return false
			}
			return validNesting(prenatal) && validNesting(postnatal)
		},
		birthSecondsGen(),
	))

	properties.TestingRun(t)
}
