package pmfield

import "testing"

func benchFields(b *testing.B, run func(b *testing.B, f *Field)) {
	for _, f := range Fields {
		b.Run(f.Name(), func(b *testing.B) {
			run(b, f)
		})
	}
}

func BenchmarkMul(b *testing.B) {
	benchFields(b, func(b *testing.B, f *Field) {
		x := seedElement(1, f)
		y := seedElement(2, f)
		var z Element
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			z.Mul(&x, &y, f)
		}
	})
}

func BenchmarkSqr(b *testing.B) {
	benchFields(b, func(b *testing.B, f *Field) {
		x := seedElement(1, f)
		var z Element
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			z.Sqr(&x, f)
		}
	})
}

func BenchmarkAdd(b *testing.B) {
	benchFields(b, func(b *testing.B, f *Field) {
		x := seedElement(1, f)
		y := seedElement(2, f)
		var z Element
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			z.Add(&x, &y, f)
		}
	})
}

func BenchmarkInv(b *testing.B) {
	benchFields(b, func(b *testing.B, f *Field) {
		x := seedElement(1, f)
		var z Element
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			z.Inv(&x, f)
		}
	})
}

func BenchmarkSqrt(b *testing.B) {
	benchFields(b, func(b *testing.B, f *Field) {
		x := seedElement(1, f)
		var sq, r Element
		sq.Sqr(&x, f)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			r.Sqrt(&sq, f)
		}
	})
}

func BenchmarkNormalize(b *testing.B) {
	benchFields(b, func(b *testing.B, f *Field) {
		x := seedElement(1, f)
		y := seedElement(2, f)
		var lazy Element
		lazy.Mul(&x, &y, f)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			z := lazy
			z.Normalize(f)
		}
	})
}

func BenchmarkPack(b *testing.B) {
	benchFields(b, func(b *testing.B, f *Field) {
		x := seedElement(1, f)
		dst := make([]byte, f.Size())
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			x.Pack(dst, f)
		}
	})
}

func BenchmarkUnpack(b *testing.B) {
	benchFields(b, func(b *testing.B, f *Field) {
		x := seedElement(1, f)
		src := x.Bytes(f)
		var z Element
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if err := z.Unpack(src, f); err != nil {
				b.Fatal(err)
			}
		}
	})
}
