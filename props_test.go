package pmfield

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property-based checks over randomized elements. Elements are derived
// from uint64 seeds through the hash-to-field map, which reaches
// full-width values in every field.

func fieldProperties(t *testing.T, f *Field) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	properties.Property("addition commutes", prop.ForAll(
		func(a, b uint64) bool {
			x, y := seedElement(a, f), seedElement(b, f)
			var l, r Element
			l.Add(&x, &y, f)
			r.Add(&y, &x, f)
			return l.Equal(&r, f)
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("addition associates", prop.ForAll(
		func(a, b, c uint64) bool {
			x, y, z := seedElement(a, f), seedElement(b, f), seedElement(c, f)
			var l, r Element
			l.Add(&x, &y, f)
			l.Add(&l, &z, f)
			r.Add(&y, &z, f)
			r.Add(&x, &r, f)
			return l.Equal(&r, f)
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.Property("multiplication commutes", prop.ForAll(
		func(a, b uint64) bool {
			x, y := seedElement(a, f), seedElement(b, f)
			var l, r Element
			l.Mul(&x, &y, f)
			r.Mul(&y, &x, f)
			return l.Equal(&r, f)
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("multiplication associates", prop.ForAll(
		func(a, b, c uint64) bool {
			x, y, z := seedElement(a, f), seedElement(b, f), seedElement(c, f)
			var l, r Element
			l.Mul(&x, &y, f)
			l.Mul(&l, &z, f)
			r.Mul(&y, &z, f)
			r.Mul(&x, &r, f)
			return l.Equal(&r, f)
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c uint64) bool {
			x, y, z := seedElement(a, f), seedElement(b, f), seedElement(c, f)
			var sum, l, xy, xz, r Element
			sum.Add(&y, &z, f)
			l.Mul(&x, &sum, f)
			xy.Mul(&x, &y, f)
			xz.Mul(&x, &z, f)
			r.Add(&xy, &xz, f)
			return l.Equal(&r, f)
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.Property("subtraction inverts addition", prop.ForAll(
		func(a, b uint64) bool {
			x, y := seedElement(a, f), seedElement(b, f)
			var s Element
			s.Add(&x, &y, f)
			s.Sub(&s, &y, f)
			return s.Equal(&x, f)
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("square matches self-multiplication", prop.ForAll(
		func(a uint64) bool {
			x := seedElement(a, f)
			var m, s Element
			m.Mul(&x, &x, f)
			s.Sqr(&x, f)
			return m.Equal(&s, f)
		},
		gen.UInt64(),
	))

	properties.Property("nonzero elements invert", prop.ForAll(
		func(a uint64) bool {
			x := seedElement(a, f)
			if x.IsZero(f) {
				return true
			}
			var xi, prod Element
			xi.Inv(&x, f)
			prod.Mul(&x, &xi, f)
			one := f.One()
			return prod.Equal(&one, f)
		},
		gen.UInt64(),
	))

	properties.Property("squares have square roots", prop.ForAll(
		func(a uint64) bool {
			x := seedElement(a, f)
			var sq, root, back Element
			sq.Sqr(&x, f)
			if !root.Sqrt(&sq, f) {
				return false
			}
			back.Sqr(&root, f)
			return back.Equal(&sq, f)
		},
		gen.UInt64(),
	))

	properties.Property("pack/unpack round-trips", prop.ForAll(
		func(a uint64) bool {
			x := seedElement(a, f)
			b := x.Bytes(f)
			var back Element
			if back.Unpack(b, f) != nil {
				return false
			}
			return back.Equal(&x, f)
		},
		gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestFieldProperties(t *testing.T) {
	for _, f := range Fields {
		t.Run(f.Name(), func(t *testing.T) {
			fieldProperties(t, f)
		})
	}
}
