// Package transit locates when a body occupies a region of the ecliptic
// (a transit) and when it moves retrograde, using an adaptive baseline
// sweep with bisection edge refinement and retrograde-aware correction.
package transit

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/ratreya/indic-ephemeris/config"
	"github.com/ratreya/indic-ephemeris/ephemeris"
	"github.com/ratreya/indic-ephemeris/internal/skylog"
	"github.com/ratreya/indic-ephemeris/model"
)

// Arc is anything that projects onto a span of the ecliptic — both
// model.DegreeRange and model.HouseRange satisfy it, letting Transits
// accept either directly.
type Arc interface {
	Degrees() model.DegreeRange
}

// Finder answers transit and retrograde questions for one birth event,
// wrapping the Ephemeris that resolves positions.
type Finder struct {
	eph    *ephemeris.Ephemeris
	cfg    *config.Config
	logger zerolog.Logger
}

// New builds a Finder over eph, using eph's configuration.
func New(eph *ephemeris.Ephemeris) *Finder {
	cfg := eph.Config()
	logger := skylog.NewLoggerWithConfig(skylog.LogConfig{Level: cfg.LogLevel, Console: true})
	return &Finder{eph: eph, cfg: cfg, logger: skylog.WithBody(logger, "transit")}
}

// Transits returns the maximal intervals within limit's window where
// body occupies arc, with retrograde-aware edge correction and fringe
// collapsing per config.TransitFringePolicy.
func (f *Finder) Transits(body model.Body, arc Arc, limit TransitLimit) ([]model.Interval, error) {
	if cl, ok := limit.(countLimit); ok && cl.count == 0 {
		return nil, ephemeris.NewValidationError("count", 0, "count must be non-zero")
	}

	rangeDeg := arc.Degrees()
	window, truncate := limit.window(body)

	step := time.Duration(body.MinTime(rangeDeg.Size) * float64(time.Second))
	p := rangePredicate(rangeDeg)

	raw, err := f.search(body, window, p, step)
	if err != nil {
		return nil, err
	}
	fixed, err := f.fixEdges(body, raw, rangeDeg)
	if err != nil {
		return nil, err
	}
	collapsed := collapseFringe(fixed, f.cfg.TransitFringePolicy, maxInterfringe(body))
	result := truncate(collapsed)
	for _, iv := range result {
		skylog.LogTransitFound(f.logger, body.String(), iv.Start, iv.End)
	}
	return result, nil
}

// lifetimeSpan is the window LifetimeTransits sweeps: the same 120-year
// Vimshottari lifespan the dasha tree is built over, anchored at birth.
var lifetimeSpan = model.DurationOf(120, model.Year)

// NextTransit returns the next interval, starting no earlier than now,
// during which body occupies hr.
func (f *Finder) NextTransit(body model.Body, hr model.HouseRange) (model.Interval, error) {
	ivs, err := f.Transits(body, hr, Count(time.Now().UTC(), 1))
	if err != nil {
		return model.Interval{}, err
	}
	if len(ivs) == 0 {
		return model.Interval{}, ephemeris.NewValidationError("NextTransit", body.String(), "no transit found in the search window")
	}
	return ivs[0], nil
}

// PreviousTransit returns the most recent interval, ending no later than
// now, during which body occupied hr.
func (f *Finder) PreviousTransit(body model.Body, hr model.HouseRange) (model.Interval, error) {
	ivs, err := f.Transits(body, hr, Count(time.Now().UTC(), -1))
	if err != nil {
		return model.Interval{}, err
	}
	if len(ivs) == 0 {
		return model.Interval{}, ephemeris.NewValidationError("PreviousTransit", body.String(), "no transit found in the search window")
	}
	return ivs[len(ivs)-1], nil
}

// LifetimeTransits returns every interval across the 120-year Vimshottari
// lifespan, starting at birth, during which body occupies hr.
func (f *Finder) LifetimeTransits(body model.Body, hr model.HouseRange) ([]model.Interval, error) {
	birth := f.eph.Birth()
	window := model.Interval{Start: birth, End: birth.Add(lifetimeSpan)}
	return f.Transits(body, hr, Duration(window))
}
