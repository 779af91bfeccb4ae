package dasha

import (
	"testing"
	"time"

	"github.com/ratreya/indic-ephemeris/config"
	"github.com/ratreya/indic-ephemeris/ephemeris"
	"github.com/ratreya/indic-ephemeris/model"
)

func testEphemeris(t *testing.T) *ephemeris.Ephemeris {
	t.Helper()
	place := model.Place{ID: "test", TZOffset: 0, Latitude: 23.293, Longitude: 75.626}
	birth := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	eph, err := ephemeris.New(birth, place, config.Default())
	if err != nil {
		t.Fatalf("ephemeris.New: %v", err)
	}
	return eph
}

func sumDurations(nodes []*MetaDasha) time.Duration {
	var total time.Duration
	for _, n := range nodes {
		total += n.Period.Duration()
	}
	return total
}

func TestVimshottariCompletenessIsOneTwentyYears(t *testing.T) {
	eph := testEphemeris(t)
	calc := New(eph)

	prenatal, postnatal, err := calc.Vimshottari()
	if err != nil {
		t.Fatalf("Vimshottari: %v", err)
	}

	total := sumDurations(prenatal) + sumDurations(postnatal)
	want := model.DurationOf(120, model.Year)
	if diff := total - want; diff > time.Millisecond || diff < -time.Millisecond {
		t.Fatalf("prenatal+postnatal Maha duration = %v, want %v (±1ms)", total, want)
	}
}

// checkNesting verifies, recursively, that every node's children durations
// sum to the node's own duration and that the children's planets follow
// the canonical Vimshottari cycle starting from the first child's planet
// (which differs from the node's own planet when part of the node's
// period had already elapsed).
func checkNesting(t *testing.T, nodes []*MetaDasha) {
	t.Helper()
	for _, n := range nodes {
		if len(n.Children) == 0 {
			continue
		}
		childTotal := sumDurations(n.Children)
		if diff := childTotal - n.Period.Duration(); diff > time.Millisecond || diff < -time.Millisecond {
			t.Fatalf("node %v children duration sum = %v, want %v (±1ms)", n.Planet, childTotal, n.Period.Duration())
		}

		startIdx := cycleIndex(n.Children[0].Planet)
		for i, c := range n.Children {
			wantPlanet := model.VimshottariCycle[(startIdx+i)%len(model.VimshottariCycle)]
			if c.Planet != wantPlanet {
				t.Fatalf("child %d planet = %v, want %v (canonical cycle from %v)", i, c.Planet, wantPlanet, n.Children[0].Planet)
			}
			if c.Parent != n {
				t.Fatalf("child %d Parent pointer does not point back to its own node", i)
			}
		}
		checkNesting(t, n.Children)
	}
}

func TestVimshottariNesting(t *testing.T) {
	eph := testEphemeris(t)
	calc := New(eph)

	prenatal, postnatal, err := calc.Vimshottari()
	if err != nil {
		t.Fatalf("Vimshottari: %v", err)
	}
	checkNesting(t, prenatal)
	checkNesting(t, postnatal)
}

func TestVimshottariPrenatalTrimmedToBirth(t *testing.T) {
	eph := testEphemeris(t)
	calc := New(eph)

	prenatal, _, err := calc.Vimshottari()
	if err != nil {
		t.Fatalf("Vimshottari: %v", err)
	}
	if len(prenatal) == 0 {
		t.Fatalf("expected a non-empty prenatal forest")
	}
	last := prenatal[len(prenatal)-1]
	if !last.Period.End.Equal(eph.Birth()) {
		t.Fatalf("last prenatal node ends at %v, want exactly birth %v", last.Period.End, eph.Birth())
	}
	for _, n := range prenatal {
		if n.Period.Start.Before(prenatal[0].Period.Start) || n.Period.End.After(eph.Birth()) {
			t.Fatalf("prenatal node %+v escapes the [start, birth) trim bound", n.Period)
		}
	}
}

func TestLordAtReturnsThreeLevelsAtBirth(t *testing.T) {
	eph := testEphemeris(t)
	calc := New(eph)

	lords, err := calc.LordAt(eph.Birth())
	if err != nil {
		t.Fatalf("LordAt: %v", err)
	}
	if len(lords) != 3 {
		t.Fatalf("got %d levels of lordship at birth, want 3 (Maha/Antar/Pratyantar)", len(lords))
	}
}

func TestVimshottariOverlappingFiltersToRange(t *testing.T) {
	eph := testEphemeris(t)
	calc := New(eph)

	window := model.Interval{
		Start: eph.Birth(),
		End:   eph.Birth().Add(365 * 24 * time.Hour),
	}
	nodes, err := calc.VimshottariOverlapping(window)
	if err != nil {
		t.Fatalf("VimshottariOverlapping: %v", err)
	}
	for _, n := range nodes {
		if !n.Period.Intersects(window) {
			t.Fatalf("node %+v does not intersect the overlapping window", n.Period)
		}
	}
}

func TestVimshottariWithAscendantMarker(t *testing.T) {
	eph := testEphemeris(t)
	calc := New(eph)

	_, postnatal, err := calc.Vimshottari(Ascendant)
	if err != nil {
		t.Fatalf("Vimshottari(Ascendant): %v", err)
	}
	if len(postnatal) == 0 {
		t.Fatalf("expected a non-empty postnatal forest for the Ascendant marker")
	}
}
