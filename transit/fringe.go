package transit

import (
	"time"

	"github.com/ratreya/indic-ephemeris/config"
	"github.com/ratreya/indic-ephemeris/model"
)

// maxInterfringe is the standard gap threshold below which consecutive
// sub-intervals are considered one fringed cluster, for both transit and
// retrograde fringe collapsing.
func maxInterfringe(body model.Body) time.Duration {
	seconds := 2 * body.SynodicPeriod() / 378
	return time.Duration(seconds * float64(time.Second))
}

// collapseFringe groups consecutive intervals whose gap is no more than
// gap apart into clusters and emits one interval per cluster, per policy.
// Intervals must already be in chronological order.
func collapseFringe(intervals []model.Interval, policy config.FringePolicy, gap time.Duration) []model.Interval {
	if len(intervals) == 0 {
		return intervals
	}

	var clusters [][]model.Interval
	cluster := []model.Interval{intervals[0]}
	for i := 1; i < len(intervals); i++ {
		if intervals[i].Start.Sub(cluster[len(cluster)-1].End) <= gap {
			cluster = append(cluster, intervals[i])
		} else {
			clusters = append(clusters, cluster)
			cluster = []model.Interval{intervals[i]}
		}
	}
	clusters = append(clusters, cluster)

	out := make([]model.Interval, 0, len(clusters))
	for _, c := range clusters {
		switch policy {
		case config.Strict:
			out = append(out, c...)
		case config.Largest:
			largest := c[0]
			for _, iv := range c[1:] {
				if iv.Duration() > largest.Duration() {
					largest = iv
				}
			}
			out = append(out, largest)
		case config.Covering:
			out = append(out, model.Interval{Start: c[0].Start, End: c[len(c)-1].End})
		default:
			out = append(out, c...)
		}
	}
	return out
}
