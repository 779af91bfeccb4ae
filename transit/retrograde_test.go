package transit

import (
	"testing"
	"time"

	"github.com/ratreya/indic-ephemeris/model"
)

func TestRetrogradesSunAndMoonAreAlwaysEmpty(t *testing.T) {
	eph := testEphemeris(t)
	finder := New(eph)
	window := model.Interval{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, body := range []model.Body{model.Sun, model.Moon} {
		ivs, err := finder.Retrogrades(body, window)
		if err != nil {
			t.Fatalf("Retrogrades(%v): %v", body, err)
		}
		if ivs != nil {
			t.Fatalf("Retrogrades(%v) = %v, want nil", body, ivs)
		}
	}
}

func TestRetrogradesMercuryFindsEpisodesWithCorrectSign(t *testing.T) {
	eph := testEphemeris(t)
	finder := New(eph)
	window := model.Interval{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	ivs, err := finder.Retrogrades(model.Mercury, window)
	if err != nil {
		t.Fatalf("Retrogrades: %v", err)
	}
	if len(ivs) == 0 {
		t.Fatalf("expected at least one Mercury retrograde episode in a year")
	}
	for _, iv := range ivs {
		mid := iv.Start.Add(iv.Duration() / 2)
		pos, err := eph.Position(model.Mercury, mid)
		if err != nil {
			t.Fatalf("Position: %v", err)
		}
		if !pos.Retrograde(model.Mercury) {
			t.Fatalf("episode %+v midpoint is not retrograde: speed %v", iv, pos.Speed)
		}
	}
}

func TestRetrogradeEpisodesIncludeShadowPeriods(t *testing.T) {
	eph := testEphemeris(t)
	finder := New(eph)
	window := model.Interval{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	episodes, err := finder.RetrogradeEpisodes(model.Mercury, window)
	if err != nil {
		t.Fatalf("RetrogradeEpisodes: %v", err)
	}
	if len(episodes) == 0 {
		t.Fatalf("expected at least one Mercury retrograde episode in a year")
	}
	for _, ep := range episodes {
		if !ep.StationRetrograde.Equal(ep.Interval.Start) {
			t.Fatalf("StationRetrograde should equal the episode's start")
		}
		if !ep.StationDirect.Equal(ep.Interval.End) {
			t.Fatalf("StationDirect should equal the episode's end")
		}
		if !ep.PreShadow.End.Equal(ep.Interval.Start) {
			t.Fatalf("PreShadow should end exactly where the episode starts")
		}
		if !ep.PostShadow.Start.Equal(ep.Interval.End) {
			t.Fatalf("PostShadow should start exactly where the episode ends")
		}
	}
}
