package dasha

import (
	"github.com/ratreya/indic-ephemeris/ephemeris"
	"github.com/ratreya/indic-ephemeris/model"
)

// Marker names the birth-chart point a Vimshottari tree is anchored to:
// a planet's own longitude, or the ascendant's. It is a sum type
// expressed as an interface with two unexported implementations,
// constructed via Planet and Ascendant.
type Marker interface {
	longitude(eph *ephemeris.Ephemeris) (float64, error)
}

type planetMarker struct {
	body model.Body
}

func (m planetMarker) longitude(eph *ephemeris.Ephemeris) (float64, error) {
	pos, err := eph.Position(m.body)
	if err != nil {
		return 0, err
	}
	return pos.Longitude, nil
}

// Planet anchors a Vimshottari tree to body's longitude at birth.
func Planet(body model.Body) Marker {
	return planetMarker{body: body}
}

type ascendantMarker struct{}

func (ascendantMarker) longitude(eph *ephemeris.Ephemeris) (float64, error) {
	pos, err := eph.Ascendant()
	if err != nil {
		return 0, err
	}
	return pos.Longitude, nil
}

// Ascendant anchors a Vimshottari tree to the ascendant's longitude at
// birth.
var Ascendant Marker = ascendantMarker{}
