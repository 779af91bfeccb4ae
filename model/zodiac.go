package model

// House is a zodiacal sign, 0 (Aries) through 11 (Pisces), with wraparound
// (mod 12) arithmetic.
type House int

// mod12 normalizes k into [0, 12).
func mod12(k int) int {
	k %= 12
	if k < 0 {
		k += 12
	}
	return k
}

// Add returns h shifted by k houses, wrapping mod 12 for any integer k
// including negatives.
func (h House) Add(k int) House {
	return House(mod12(int(h) + k))
}

// Degrees returns the 30°-wide DegreeRange this house occupies.
func (h House) Degrees() DegreeRange {
	return DegreeRange{LowerBound: 30 * float64(mod12(int(h))), Size: 30}
}

var houseNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (h House) String() string { return houseNames[mod12(int(h))] }

// Nakshatra is one of the 27 lunar mansions, each 800' (48 000") wide.
type Nakshatra int

const nakshatraArcSeconds = 48000.0
const nakshatraCount = 27

var nakshatraNames = [nakshatraCount]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "PurvaPhalguni", "UttaraPhalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "PurvaAshadha", "UttaraAshadha", "Shravana", "Dhanishta",
	"Shatabhisha", "PurvaBhadrapada", "UttaraBhadrapada", "Revati",
}

func (n Nakshatra) String() string { return nakshatraNames[mod27(int(n))] }

func mod27(k int) int {
	k %= nakshatraCount
	if k < 0 {
		k += nakshatraCount
	}
	return k
}

// nakshatraRulers is the fixed ruling-planet assignment, repeating the
// Vimshottari cycle three times across the 27 nakshatras, used to seed
// Vimshottari dasha computation from the Moon's birth nakshatra.
var nakshatraRulers = [nakshatraCount]Body{
	SouthNode, Venus, Sun, Moon, Mars, NorthNode, Jupiter, Saturn, Mercury,
	SouthNode, Venus, Sun, Moon, Mars, NorthNode, Jupiter, Saturn, Mercury,
	SouthNode, Venus, Sun, Moon, Mars, NorthNode, Jupiter, Saturn, Mercury,
}

// Ruler returns the planet that rules this nakshatra for Vimshottari
// dasha purposes.
func (n Nakshatra) Ruler() Body {
	return nakshatraRulers[mod27(int(n))]
}

// NakshatraOf decomposes a longitude into its nakshatra and the degrees,
// minutes, and seconds of arc elapsed within it.
func NakshatraOf(longitude float64) (n Nakshatra, deg, min, sec int) {
	longitude = NormalizeLongitude(longitude)
	totalArcSeconds := longitude * 3600
	idx := int(totalArcSeconds / nakshatraArcSeconds)
	within := totalArcSeconds - float64(idx)*nakshatraArcSeconds
	deg = int(within / 3600)
	within -= float64(deg) * 3600
	min = int(within / 60)
	sec = int(within) - min*60
	return Nakshatra(idx), deg, min, sec
}

// DegreeRange is a span of the ecliptic, LowerBound plus Size degrees,
// possibly wrapping past 360°.
type DegreeRange struct {
	LowerBound float64 // degrees, [0, 360)
	Size       float64 // degrees
}

// Degrees returns r unchanged — it satisfies the same Arc shape as
// HouseRange.Degrees so callers can treat either as an arc of the
// ecliptic.
func (r DegreeRange) Degrees() DegreeRange { return r }

// UpperBound returns the range's exclusive upper edge, wrapped into
// [0, 360).
func (r DegreeRange) UpperBound() float64 {
	return NormalizeLongitude(r.LowerBound + r.Size)
}

// Contains reports whether d falls within the range, handling wraparound:
// when the range wraps past 360° (UpperBound < LowerBound), containment
// is the complement of the non-wrapping gap.
func (r DegreeRange) Contains(d float64) bool {
	d = NormalizeLongitude(d)
	lower := NormalizeLongitude(r.LowerBound)
	upper := r.UpperBound()
	if r.Size >= 360 {
		return true
	}
	if lower <= upper {
		return d >= lower && d < upper
	}
	return d >= lower || d < upper
}

// Inverted returns the complementary range: starting at this range's
// upper bound, spanning 360° minus this range's size.
func (r DegreeRange) Inverted() DegreeRange {
	return DegreeRange{LowerBound: r.UpperBound(), Size: 360 - r.Size}
}

// HouseRange is a contiguous run of Count houses starting at LowerBound
// (mod 12).
type HouseRange struct {
	LowerBound House
	Count      int
}

// Degrees projects the house range onto the ecliptic as a DegreeRange.
func (hr HouseRange) Degrees() DegreeRange {
	return DegreeRange{LowerBound: hr.LowerBound.Degrees().LowerBound, Size: 30 * float64(hr.Count)}
}

// Contains reports whether house h falls within the range.
func (hr HouseRange) Contains(h House) bool {
	return hr.Degrees().Contains(h.Degrees().LowerBound)
}

// Inverted returns the complementary DegreeRange, the same operation
// HouseRange.Degrees().Inverted() would give.
func (hr HouseRange) Inverted() DegreeRange {
	return hr.Degrees().Inverted()
}

// Adjoining returns the three houses {h-1, h, h+1}.
func Adjoining(h House) [3]House {
	return [3]House{h.Add(-1), h, h.Add(1)}
}
