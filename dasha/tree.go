package dasha

import (
	"github.com/ratreya/indic-ephemeris/config"
	"github.com/ratreya/indic-ephemeris/model"
)

// MetaDasha is one node of a Vimshottari dasha tree: a planet's rule over
// Period at nesting level Depth. Parent is a non-owning back-reference —
// it must never be followed when walking the tree top-down, only when a
// caller holding a leaf needs to climb back up.
type MetaDasha struct {
	Period   model.Interval
	Planet   model.Body
	Depth    config.DashaDepth
	Children []*MetaDasha
	Parent   *MetaDasha
}

// trim clips every node's Period to its intersection with bound,
// recursively, dropping any node (and its whole subtree) that doesn't
// intersect bound at all.
func trim(nodes []*MetaDasha, bound model.Interval) []*MetaDasha {
	out := make([]*MetaDasha, 0, len(nodes))
	for _, n := range nodes {
		clipped, ok := n.Period.Intersection(bound)
		if !ok {
			continue
		}
		n.Period = clipped
		n.Children = trim(n.Children, bound)
		out = append(out, n)
	}
	return out
}

// filterOverlapping keeps only the nodes (and, recursively, children)
// whose Period intersects rng.
func filterOverlapping(nodes []*MetaDasha, rng model.Interval) []*MetaDasha {
	out := make([]*MetaDasha, 0, len(nodes))
	for _, n := range nodes {
		if !n.Period.Intersects(rng) {
			continue
		}
		n.Children = filterOverlapping(n.Children, rng)
		out = append(out, n)
	}
	return out
}

// lordsAt walks down the tree to the node containing instant at every
// depth, returning the ruling planet at each level from Maha downward.
// Returns nil if instant falls in none of the top-level nodes.
func lordsAt(nodes []*MetaDasha, instant model.Instant) []model.Body {
	for _, n := range nodes {
		if n.Period.Contains(instant) {
			return append([]model.Body{n.Planet}, lordsAt(n.Children, instant)...)
		}
	}
	return nil
}
