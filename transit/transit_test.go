package transit

import (
	"testing"
	"time"

	"github.com/ratreya/indic-ephemeris/config"
	"github.com/ratreya/indic-ephemeris/ephemeris"
	"github.com/ratreya/indic-ephemeris/model"
)

func testEphemeris(t *testing.T) *ephemeris.Ephemeris {
	t.Helper()
	place := model.Place{ID: "test", TZOffset: 0, Latitude: 12.97, Longitude: 77.59}
	birth := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	eph, err := ephemeris.New(birth, place, config.Default())
	if err != nil {
		t.Fatalf("ephemeris.New: %v", err)
	}
	return eph
}

func TestTransitsSunOccupiesAriesOnceInAYear(t *testing.T) {
	eph := testEphemeris(t)
	finder := New(eph)

	window := model.Interval{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	ivs, err := finder.Transits(model.Sun, model.House(0).Degrees(), Duration(window))
	if err != nil {
		t.Fatalf("Transits: %v", err)
	}
	if len(ivs) != 1 {
		t.Fatalf("got %d Sun-in-Aries transits across a year, want exactly 1", len(ivs))
	}

	iv := ivs[0]
	if iv.Duration() < 20*24*time.Hour || iv.Duration() > 40*24*time.Hour {
		t.Fatalf("Sun-in-Aries transit duration = %v, want roughly one synodic month", iv.Duration())
	}

	mid := iv.Start.Add(iv.Duration() / 2)
	pos, err := eph.Position(model.Sun, mid)
	if err != nil {
		t.Fatalf("Position: %v", err)
	}
	if !model.House(0).Degrees().Contains(pos.Longitude) {
		t.Fatalf("midpoint of reported transit does not satisfy the range predicate: longitude %v", pos.Longitude)
	}
}

func TestTransitsHouseRangeDelegatesToDegrees(t *testing.T) {
	eph := testEphemeris(t)
	finder := New(eph)

	window := model.Interval{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
	}
	hr := model.HouseRange{LowerBound: model.House(0), Count: 2}
	ivs, err := finder.Transits(model.Sun, hr, Duration(window))
	if err != nil {
		t.Fatalf("Transits: %v", err)
	}
	if len(ivs) != 1 {
		t.Fatalf("got %d transits through a 2-house range, want 1", len(ivs))
	}
	if ivs[0].Duration() < 40*24*time.Hour {
		t.Fatalf("2-house transit duration = %v, want roughly two synodic months", ivs[0].Duration())
	}
}

func TestNextTransitReturnsANonDegenerateInterval(t *testing.T) {
	eph := testEphemeris(t)
	finder := New(eph)

	iv, err := finder.NextTransit(model.Sun, model.HouseRange{LowerBound: model.House(0), Count: 1})
	if err != nil {
		t.Fatalf("NextTransit: %v", err)
	}
	if iv.Duration() <= 0 {
		t.Fatalf("NextTransit returned a degenerate interval: %+v", iv)
	}
}
