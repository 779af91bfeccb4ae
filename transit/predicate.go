package transit

import "github.com/ratreya/indic-ephemeris/model"

// predicate is the generic "does this sample qualify" test the baseline
// sweep and bisection walk over. For range queries it tests arc
// membership; for retrograde queries, speed sign.
type predicate func(model.Position) bool

func rangePredicate(arc model.DegreeRange) predicate {
	return func(p model.Position) bool { return arc.Contains(p.Longitude) }
}

func retrogradePredicate(body model.Body) predicate {
	return func(p model.Position) bool { return p.Retrograde(body) }
}

func negate(p predicate) predicate {
	return func(pos model.Position) bool { return !p(pos) }
}
