package transit

import (
	"testing"
	"time"

	"github.com/ratreya/indic-ephemeris/config"
	"github.com/ratreya/indic-ephemeris/model"
)

func mustInterval(startOffset, endOffset time.Duration) model.Interval {
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return model.Interval{Start: base.Add(startOffset), End: base.Add(endOffset)}
}

func TestCollapseFringeStrictKeepsEverySubInterval(t *testing.T) {
	ivs := []model.Interval{
		mustInterval(0, time.Hour),
		mustInterval(2*time.Hour, 3*time.Hour),
	}
	got := collapseFringe(ivs, config.Strict, 4*time.Hour)
	if len(got) != 2 {
		t.Fatalf("Strict: got %d intervals, want 2", len(got))
	}
}

func TestCollapseFringeLargestKeepsLongestPerCluster(t *testing.T) {
	ivs := []model.Interval{
		mustInterval(0, time.Hour),
		mustInterval(90*time.Minute, 4*time.Hour),
	}
	got := collapseFringe(ivs, config.Largest, time.Hour)
	if len(got) != 1 {
		t.Fatalf("Largest: got %d intervals, want 1 cluster", len(got))
	}
	want := mustInterval(90*time.Minute, 4*time.Hour)
	if !got[0].Start.Equal(want.Start) || !got[0].End.Equal(want.End) {
		t.Fatalf("Largest: got %+v, want the longer sub-interval %+v", got[0], want)
	}
}

func TestCollapseFringeCoveringSpansFirstToLast(t *testing.T) {
	ivs := []model.Interval{
		mustInterval(0, time.Hour),
		mustInterval(90*time.Minute, 2*time.Hour),
	}
	got := collapseFringe(ivs, config.Covering, time.Hour)
	if len(got) != 1 {
		t.Fatalf("Covering: got %d intervals, want 1", len(got))
	}
	if !got[0].Start.Equal(ivs[0].Start) || !got[0].End.Equal(ivs[1].End) {
		t.Fatalf("Covering: got %+v, want [%v, %v)", got[0], ivs[0].Start, ivs[1].End)
	}
}

func TestCollapseFringeDoesNotMergeAcrossLargeGap(t *testing.T) {
	ivs := []model.Interval{
		mustInterval(0, time.Hour),
		mustInterval(10*time.Hour, 11*time.Hour),
	}
	got := collapseFringe(ivs, config.Covering, time.Hour)
	if len(got) != 2 {
		t.Fatalf("got %d intervals, want 2 (gap exceeds threshold)", len(got))
	}
}
