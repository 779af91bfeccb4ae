package model

// Body enumerates the nine tracked celestial points, in canonical ordinal
// order. SouthNode is always derived from NorthNode by the ephemeris
// adapter (antipodal inversion); it has no independent oracle entry.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	NorthNode
	SouthNode
	bodyCount
)

func (b Body) String() string {
	switch b {
	case Sun:
		return "Sun"
	case Moon:
		return "Moon"
	case Mercury:
		return "Mercury"
	case Venus:
		return "Venus"
	case Mars:
		return "Mars"
	case Jupiter:
		return "Jupiter"
	case Saturn:
		return "Saturn"
	case NorthNode:
		return "NorthNode"
	case SouthNode:
		return "SouthNode"
	default:
		return "UnknownBody"
	}
}

// IsNode reports whether b is one of the two lunar nodes, whose retrograde
// sense is inverted relative to ordinary planets (positive speed, not
// negative, marks retrograde motion).
func (b Body) IsNode() bool {
	return b == NorthNode || b == SouthNode
}

// bodyStats is the static per-body table from the body catalogue: average
// and maximum ecliptic speed in degrees/day, average retrograde duration
// and synodic period in seconds, and the Vimshottari dasha ratio (years
// allotted out of 120, expressed as a fraction).
type bodyStats struct {
	avgSpeed           float64 // deg/day
	maxSpeed           float64 // deg/day
	retrogradeDuration float64 // seconds; 0 for Sun and Moon
	synodicPeriod      float64 // seconds
	vimshottariRatio   float64 // years/120
}

const daySeconds = 86400.0
const yearSeconds = daySeconds * 365.2425

// bodyTable holds the static data backing avg/max speed, retrograde
// duration, synodic period, and Vimshottari ratio per body. Figures are
// standard mean orbital/synodic values for geocentric sidereal longitude;
// the two nodes share Rahu/Ketu's vimshottari split (18/120 and 7/120).
var bodyTable = [bodyCount]bodyStats{
	Sun:       {avgSpeed: 0.9856, maxSpeed: 1.0196, retrogradeDuration: 0, synodicPeriod: yearSeconds, vimshottariRatio: 6.0 / 120},
	Moon:      {avgSpeed: 13.176, maxSpeed: 15.39, retrogradeDuration: 0, synodicPeriod: 27.32 * daySeconds, vimshottariRatio: 10.0 / 120},
	Mercury:   {avgSpeed: 1.383, maxSpeed: 2.2, retrogradeDuration: 21 * daySeconds, synodicPeriod: 115.88 * daySeconds, vimshottariRatio: 17.0 / 120},
	Venus:     {avgSpeed: 1.2, maxSpeed: 1.27, retrogradeDuration: 42 * daySeconds, synodicPeriod: 583.92 * daySeconds, vimshottariRatio: 20.0 / 120},
	Mars:      {avgSpeed: 0.524, maxSpeed: 0.79, retrogradeDuration: 72 * daySeconds, synodicPeriod: 779.94 * daySeconds, vimshottariRatio: 7.0 / 120},
	Jupiter:   {avgSpeed: 0.083, maxSpeed: 0.243, retrogradeDuration: 121 * daySeconds, synodicPeriod: 398.88 * daySeconds, vimshottariRatio: 16.0 / 120},
	Saturn:    {avgSpeed: 0.034, maxSpeed: 0.13, retrogradeDuration: 138 * daySeconds, synodicPeriod: 378.09 * daySeconds, vimshottariRatio: 19.0 / 120},
	// Nodes regress (negative avgSpeed) almost always; maxSpeed is the
	// peak positive (direct-motion) excursion during a brief prograde
	// episode, which §8 invariant 5 calls the node's "retrograde" sign.
	NorthNode: {avgSpeed: -0.0529, maxSpeed: 0.30, retrogradeDuration: 14 * daySeconds, synodicPeriod: 18.6 * yearSeconds, vimshottariRatio: 18.0 / 120},
	SouthNode: {avgSpeed: -0.0529, maxSpeed: 0.30, retrogradeDuration: 14 * daySeconds, synodicPeriod: 18.6 * yearSeconds, vimshottariRatio: 7.0 / 120},
}

func (b Body) stats() bodyStats { return bodyTable[b] }

// AvgSpeed returns the body's mean longitudinal speed in degrees/day.
func (b Body) AvgSpeed() float64 { return b.stats().avgSpeed }

// MaxSpeed returns the body's maximum longitudinal speed in degrees/day.
func (b Body) MaxSpeed() float64 { return b.stats().maxSpeed }

// RetrogradeDuration returns the body's average retrograde episode length,
// in seconds; zero for Sun and Moon, which never retrograde.
func (b Body) RetrogradeDuration() float64 { return b.stats().retrogradeDuration }

// SynodicPeriod returns the mean interval between successive retrograde
// midpoints, in seconds.
func (b Body) SynodicPeriod() float64 { return b.stats().synodicPeriod }

// VimshottariRatio returns the fraction of the 120-year Vimshottari
// lifespan allotted to this body.
func (b Body) VimshottariRatio() float64 { return b.stats().vimshottariRatio }

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// MinTime returns the minimum time, in seconds, for the body to traverse
// deg degrees of longitude, moving at its maximum speed.
func (b Body) MinTime(deg float64) float64 {
	return absF(deg) / absF(b.MaxSpeed()) * daySeconds
}

// AvgTime returns the expected time, in seconds, for the body to traverse
// deg degrees of longitude, moving at its average speed.
func (b Body) AvgTime(deg float64) float64 {
	return absF(deg) / absF(b.AvgSpeed()) * daySeconds
}

// AvgDegrees returns the expected longitude traversed, in degrees, over
// sec seconds at the body's average speed.
func (b Body) AvgDegrees(sec float64) float64 {
	return absF(sec) * absF(b.AvgSpeed()) / daySeconds
}

// MaxDegrees returns the maximum longitude traversable, in degrees, over
// sec seconds at the body's maximum speed.
func (b Body) MaxDegrees(sec float64) float64 {
	return absF(sec) * absF(b.MaxSpeed()) / daySeconds
}

// VimshottariCycle is the fixed planetary order the Vimshottari dasha
// system walks, starting wherever the birth nakshatra ruler falls: Ketu,
// Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury (Ketu = SouthNode,
// Rahu = NorthNode).
var VimshottariCycle = [9]Body{SouthNode, Venus, Sun, Moon, Mars, NorthNode, Jupiter, Saturn, Mercury}
