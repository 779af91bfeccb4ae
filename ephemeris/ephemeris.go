// Package ephemeris computes Indic (Vedic) astrological quantities from a
// birth event by consulting an external ephemeris oracle and exposes the
// single-instant accessors transit and dasha search build on.
package ephemeris

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ratreya/indic-ephemeris/config"
	"github.com/ratreya/indic-ephemeris/internal/oracle"
	"github.com/ratreya/indic-ephemeris/internal/skylog"
	"github.com/ratreya/indic-ephemeris/model"
	"github.com/ratreya/indic-ephemeris/pkg/backoff"
)

// Ephemeris wraps the external oracle for one birth event: a local birth
// instant (converted to UTC at construction), a place, and a
// configuration. It owns its Oracle outright — oracles hold
// thread-local-equivalent state and must never be shared between
// goroutines, so each sharded worker in package transit constructs its
// own Ephemeris over the same birth/place/config.
type Ephemeris struct {
	birthUTC time.Time
	place    model.Place
	cfg      *config.Config
	oracle   oracle.Oracle
	logger   zerolog.Logger
}

// New constructs an Ephemeris for a birth event given in place's local
// time. A nil cfg uses config.Default(); the default Oracle is
// ApproximateOracle, wrapped with a circuit breaker.
func New(birthLocal time.Time, place model.Place, cfg *config.Config) (*Ephemeris, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	backing := oracle.NewCircuitBreakerOracle(oracle.NewApproximateOracle(), oracle.DefaultCircuitBreakerConfig())
	return NewWithOracle(birthLocal, place, cfg, backing)
}

// NewWithOracle is New with an explicit Oracle — the hook a real
// precision-ephemeris binding, or a test double, plugs in through.
func NewWithOracle(birthLocal time.Time, place model.Place, cfg *config.Config, backing oracle.Oracle) (*Ephemeris, error) {
	return newEphemeris(place.ToUTC(birthLocal), place, cfg, backing)
}

func newEphemeris(birthUTC model.Instant, place model.Place, cfg *config.Config, backing oracle.Oracle) (*Ephemeris, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	logger := skylog.NewLoggerWithConfig(skylog.LogConfig{Level: cfg.LogLevel, Console: true})
	return &Ephemeris{
		birthUTC: birthUTC,
		place:    place,
		cfg:      cfg,
		oracle:   backing,
		logger:   skylog.WithBody(logger, "ephemeris"),
	}, nil
}

// Birth returns the birth instant in UTC.
func (e *Ephemeris) Birth() model.Instant { return e.birthUTC }

// Place returns the configured birth place.
func (e *Ephemeris) Place() model.Place { return e.place }

// Config returns the configuration this Ephemeris was built with.
func (e *Ephemeris) Config() *config.Config { return e.cfg }

func (e *Ephemeris) resolveInstant(instant []model.Instant) model.Instant {
	if len(instant) > 0 {
		return instant[0]
	}
	return e.birthUTC
}

// JulianDay converts instant (or the birth instant, if omitted) to a
// Julian Day number using the proleptic Gregorian/Julian calendar switch
// at 1582-10-15 UTC.
func (e *Ephemeris) JulianDay(instant ...model.Instant) (float64, error) {
	return oracle.JulianDay(e.resolveInstant(instant)), nil
}

// Position returns body's position at instant (or the birth instant, if
// omitted). SouthNode is derived from a NorthNode oracle sample by
// antipodal inversion.
func (e *Ephemeris) Position(body model.Body, instant ...model.Instant) (model.Position, error) {
	return e.positionAt(body, e.resolveInstant(instant))
}

func (e *Ephemeris) positionAt(body model.Body, at model.Instant) (model.Position, error) {
	if body == model.SouthNode {
		north, err := e.positionAt(model.NorthNode, at)
		if err != nil {
			return model.Position{}, err
		}
		return oracle.SouthNode(north), nil
	}
	jd := oracle.JulianDay(at)
	start := time.Now()
	sample, err := backoff.RetryWithResult(context.Background(), backoff.Default(), func() (oracle.Sample, error) {
		return e.oracle.Compute(jd, body, e.place)
	})
	skylog.LogOracleCall(e.logger, body.String(), jd, time.Since(start), sample.Warning, err)
	if err != nil {
		return model.Position{}, NewOracleError(body.String(), "computing position", err)
	}
	return sample.Position, nil
}

// Positions samples body's position across during, striding by every,
// inclusive of during.Start and exclusive of during.End.
func (e *Ephemeris) Positions(body model.Body, during model.Interval, every time.Duration) ([]model.TimedPosition, error) {
	if every <= 0 {
		return nil, NewValidationError("every", every, "sampling stride must be positive")
	}
	var out []model.TimedPosition
	for t := during.Start; t.Before(during.End); t = t.Add(every) {
		pos, err := e.positionAt(body, t)
		if err != nil {
			return nil, err
		}
		out = append(out, model.TimedPosition{Instant: t, Position: pos})
	}
	return out, nil
}

// Ascendant returns the ascendant's longitude at instant (or the birth
// instant, if omitted). Only longitude is meaningful.
func (e *Ephemeris) Ascendant(instant ...model.Instant) (model.Position, error) {
	at := e.resolveInstant(instant)
	jd := oracle.JulianDay(at)
	sample, err := backoff.RetryWithResult(context.Background(), backoff.Default(), func() (oracle.Sample, error) {
		return e.oracle.Ascendant(jd, e.place)
	})
	if err != nil {
		return model.Position{}, NewOracleError("Ascendant", "computing ascendant", err)
	}
	return sample.Position, nil
}

// Phase returns body's angular relationship to the Sun at instant (or
// the birth instant, if omitted).
func (e *Ephemeris) Phase(body model.Body, instant ...model.Instant) (model.Phase, error) {
	at := e.resolveInstant(instant)
	bodyPos, err := e.positionAt(body, at)
	if err != nil {
		return model.Phase{}, err
	}
	if body == model.Sun {
		return model.Phase{Elongation: 0, Waxing: true}, nil
	}
	sunPos, err := e.positionAt(model.Sun, at)
	if err != nil {
		return model.Phase{}, err
	}
	return model.PhaseOf(bodyPos.Longitude, sunPos.Longitude), nil
}

// Fresh constructs a new Ephemeris over the same birth/place/config but a
// brand-new Oracle instance — called inside the per-shard map function of
// package transit's sharded search, so every worker gets its own adapter.
func (e *Ephemeris) Fresh() (*Ephemeris, error) {
	backing := oracle.NewCircuitBreakerOracle(oracle.NewApproximateOracle(), oracle.DefaultCircuitBreakerConfig())
	return newEphemeris(e.birthUTC, e.place, e.cfg, backing)
}
