package model

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// houseGen produces arbitrary House values, including negative offsets, to
// exercise the mod-12 arithmetic invariant.
func houseGen() gopter.Gen {
	return gen.IntRange(-1000, 1000).Map(func(k int) House { return House(k) })
}

func TestHouseArithmeticIsCyclic(t *testing.T) {
	props := gopter.NewProperties(nil)

	props.Property("H + k == H + (k mod 12) for any integer k", prop.ForAll(
		func(h House, k int) bool {
			return h.Add(k) == h.Add(mod12(k))
		},
		houseGen(),
		gen.IntRange(-10000, 10000),
	))

	props.TestingRun(t)
}

func degreeRangeGen() gopter.Gen {
	return gen.Struct(reflect.TypeOf(DegreeRange{}), map[string]gopter.Gen{
		"LowerBound": gen.Float64Range(0, 359.999),
		"Size":       gen.Float64Range(0.001, 359.999),
	})
}

func TestDegreeRangeWrapCorrectness(t *testing.T) {
	props := gopter.NewProperties(nil)

	props.Property("range.contains(d) XOR range.inverted().contains(d), off boundary", prop.ForAll(
		func(r DegreeRange, d float64) bool {
			d = NormalizeLongitude(d)
			lower := NormalizeLongitude(r.LowerBound)
			upper := r.UpperBound()
			if d == lower || d == upper {
				return true // boundary, excluded by the invariant
			}
			return r.Contains(d) != r.Inverted().Contains(d)
		},
		degreeRangeGen(),
		gen.Float64Range(0, 359.999),
	))

	props.TestingRun(t)
}

func TestNakshatraRoundTrip(t *testing.T) {
	props := gopter.NewProperties(nil)

	props.Property("NakshatraOf reconstructs a longitude within one arcsecond", prop.ForAll(
		func(longitude float64) bool {
			n, deg, min, sec := NakshatraOf(longitude)
			reconstructed := float64(n)*48000 + float64(deg)*3600 + float64(min)*60 + float64(sec)
			want := NormalizeLongitude(longitude) * 3600
			diff := reconstructed - want
			if diff < 0 {
				diff = -diff
			}
			return diff < 1.0
		},
		gen.Float64Range(0, 359.999),
	))

	props.TestingRun(t)
}
