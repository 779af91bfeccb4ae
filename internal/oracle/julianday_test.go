package oracle

import (
	"testing"
	"time"
)

func TestJulianDayGregorianReformGap(t *testing.T) {
	got := JulianDay(time.Date(1582, time.October, 10, 0, 0, 0, 0, time.UTC))
	want := 2299165.5
	if diff := got - want; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("JulianDay(1582-10-10) = %v, want %v", got, want)
	}
}

func TestJulianDayContinuityAfterReform(t *testing.T) {
	base := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		d0 := JulianDay(base.AddDate(0, 0, i))
		d1 := JulianDay(base.AddDate(0, 0, i+1))
		if diff := (d1 - d0) - 1.0; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("day %d: JulianDay difference = %v, want 1.0", i, d1-d0)
		}
	}
}

func TestJulianDayKnownEpoch(t *testing.T) {
	got := JulianDay(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC))
	want := 2458849.5
	if diff := got - want; diff > 1e-4 || diff < -1e-4 {
		t.Fatalf("JulianDay(2020-01-01) = %v, want %v", got, want)
	}
}
