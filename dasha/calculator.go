// Package dasha computes the Vimshottari daśā tree: the nested
// Maha/Antar/Pratyantar planetary-period partition of a 120-year
// lifespan, keyed off a birth-chart marker's nakshatra position.
package dasha

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/ratreya/indic-ephemeris/config"
	"github.com/ratreya/indic-ephemeris/ephemeris"
	"github.com/ratreya/indic-ephemeris/internal/skylog"
	"github.com/ratreya/indic-ephemeris/model"
)

// Calculator answers Vimshottari daśā questions for one birth event.
type Calculator struct {
	eph    *ephemeris.Ephemeris
	cfg    *config.Config
	logger zerolog.Logger
}

// New builds a Calculator over eph, using eph's configuration.
func New(eph *ephemeris.Ephemeris) *Calculator {
	cfg := eph.Config()
	logger := skylog.NewLoggerWithConfig(skylog.LogConfig{Level: cfg.LogLevel, Console: true})
	return &Calculator{eph: eph, cfg: cfg, logger: skylog.WithBody(logger, "dasha")}
}

// Vimshottari computes the full daśā tree anchored at starting (Planet(Moon)
// if omitted, the traditional anchor). It returns two disjoint forests:
// postnatal, covering [birth, birth + remaining lifetime), and prenatal,
// covering the portion of the marker's ruling period that had already
// elapsed before birth, trimmed strictly to [birth - elapsed, birth).
func (c *Calculator) Vimshottari(starting ...Marker) (prenatal, postnatal []*MetaDasha, err error) {
	marker := Marker(Planet(model.Moon))
	if len(starting) > 0 {
		marker = starting[0]
	}

	longitude, err := marker.longitude(c.eph)
	if err != nil {
		return nil, nil, err
	}

	nakshatra, deg, min, sec := model.NakshatraOf(longitude)
	ruler := nakshatra.Ruler()

	elapsedArcSeconds := float64(deg)*3600 + float64(min)*60 + float64(sec)
	lifetime := model.DurationOf(120, model.Year)
	elapsedFraction := elapsedArcSeconds / 48000 * ruler.VimshottariRatio()
	elapsedTime := time.Duration(elapsedFraction * float64(lifetime))

	birth := c.eph.Birth()

	postnatalInterval := model.Interval{Start: birth, End: birth.Add(lifetime - elapsedTime)}
	postnatal = subdivide(postnatalInterval, ruler, elapsedTime, config.Maha, c.cfg, c.logger)

	prenatalStart := birth.Add(-elapsedTime)
	prenatalInterval := model.Interval{Start: prenatalStart, End: prenatalStart.Add(lifetime)}
	rawPrenatal := subdivide(prenatalInterval, ruler, 0, config.Maha, c.cfg, c.logger)
	prenatal = trim(rawPrenatal, model.Interval{Start: prenatalStart, End: birth})

	return prenatal, postnatal, nil
}

// VimshottariOverlapping returns the postnatal forest filtered, at every
// depth, to nodes whose Period intersects overlapping.
func (c *Calculator) VimshottariOverlapping(overlapping model.Interval, starting ...Marker) ([]*MetaDasha, error) {
	_, postnatal, err := c.Vimshottari(starting...)
	if err != nil {
		return nil, err
	}
	return filterOverlapping(postnatal, overlapping), nil
}

// LordAt returns the ruling planet at every configured depth (Maha,
// Antar, Pratyantar by default) for instant, walking down whichever of
// the prenatal/postnatal forests contains it. Returns nil if instant
// falls outside both forests' span.
func (c *Calculator) LordAt(instant model.Instant, starting ...Marker) ([]model.Body, error) {
	prenatal, postnatal, err := c.Vimshottari(starting...)
	if err != nil {
		return nil, err
	}
	tree := postnatal
	if instant.Before(c.eph.Birth()) {
		tree = prenatal
	}
	return lordsAt(tree, instant), nil
}
