// Package oracle is the boundary around the external ephemeris library:
// the Oracle interface, Julian Day conversion, South Node derivation, and
// a self-contained reference implementation for use where no precision
// ephemeris binding is available.
//
// Oracle implementations hold thread-local-equivalent mutable state (a
// real binding mmaps data files and caches interpolation state per call
// site) and must never be shared across goroutines: construct one per
// worker, as package transit's sharded search does inside each shard's
// map function.
package oracle

import "github.com/ratreya/indic-ephemeris/model"

// Sample is a single oracle response: the computed position plus an
// optional non-fatal warning message (e.g. "low precision outside data
// file coverage") that callers log but do not treat as failure.
type Sample struct {
	Position model.Position
	Warning  string
}

// Oracle computes a body's topocentric sidereal position at a given
// Julian Day. Implementations are not safe for concurrent use by more
// than one goroutine.
type Oracle interface {
	// Compute returns the position of body at the given Julian Day and
	// place. An error indicates the oracle itself failed (a corrupt or
	// missing data file, an out-of-range date); Warning-level problems
	// are reported via Sample.Warning instead.
	Compute(julianDay float64, body model.Body, place model.Place) (Sample, error)

	// Ascendant returns the ascendant's ecliptic longitude for the given
	// Julian Day and place; latitude/distance/speed are not meaningful
	// and Position.HasMotion is false.
	Ascendant(julianDay float64, place model.Place) (Sample, error)
}

// SouthNode derives the South Node (Ketu) position from a North Node
// (Rahu) sample by antipodal inversion: longitude +180° (mod 360),
// latitude negated, distance unchanged, speed negated so "retrograde ⇔
// positive speed" still holds for the derived node.
func SouthNode(northNode model.Position) model.Position {
	return model.Position{
		Longitude: model.NormalizeLongitude(northNode.Longitude + 180),
		Latitude:  -northNode.Latitude,
		Distance:  northNode.Distance,
		Speed:     -northNode.Speed,
		HasMotion: northNode.HasMotion,
	}
}
