package pmfield

// Every exponent this package needs — p-2, (p-1)/2, (p-1)/4, (p+1)/4,
// (p+3)/8 — has the shape 2^k - m with m small, because p = 2^N - C. Its
// binary expansion is a long run of ones followed by the 64-bit tail
// 2^64 - m, so one square-and-multiply chain per (k, m) pair covers all of
// them. The branch pattern depends only on the public exponent, never on
// the operand.

// powChain sets z = x^(2^k - m) for k >= 65 (or m == 0, any k).
func (z *Element) powChain(x *Element, k uint, m uint64, f *Field) {
	base := *x
	r := base
	if m == 0 {
		for i := uint(0); i < k; i++ {
			r.Sqr(&r, f)
		}
		*z = r
		return
	}
	// Bit k-1 is set (consumed by r = x above); bits k-2 down to 64 are
	// all ones; the low 64 bits are the two's complement of m.
	for i := uint(0); i < k-65; i++ {
		r.Sqr(&r, f)
		r.Mul(&r, &base, f)
	}
	w := -m
	for i := 63; i >= 0; i-- {
		r.Sqr(&r, f)
		if (w>>uint(i))&1 == 1 {
			r.Mul(&r, &base, f)
		}
	}
	*z = r
}

// Inv sets z = x^(p-2), the multiplicative inverse of x. Inv of zero is
// zero by the structure of the chain; callers that need division semantics
// must check for zero themselves.
func (z *Element) Inv(x *Element, f *Field) {
	z.powChain(x, f.bits, uint64(f.c)+2, f)
}

// Div sets z = x / y, defined as x * Inv(y). Division by zero yields zero.
func (z *Element) Div(x, y *Element, f *Field) {
	var t Element
	t.Inv(y, f)
	z.Mul(x, &t, f)
}

// Legendre sets z = x^((p-1)/2): one for quadratic residues, p-1 for
// non-residues, zero for zero.
func (z *Element) Legendre(x *Element, f *Field) {
	z.powChain(x, f.bits-1, uint64(f.c+1)/2, f)
}

// QuarticLegendre sets z = x^((p-1)/4), the fourth-power residue test used
// to pick the right square root when p ≡ 5 (mod 8). Panics for moduli with
// p ≡ 3 (mod 4), where the exponent is not an integer.
func (z *Element) QuarticLegendre(x *Element, f *Field) {
	if f.pMod8 != 5 {
		panic("pmfield: quartic residue test requires p ≡ 1 (mod 4)")
	}
	z.powChain(x, f.bits-2, uint64(f.c+1)/4, f)
}

// IsSquare reports whether x is a quadratic residue (or zero).
func (x *Element) IsSquare(f *Field) bool {
	var leg Element
	leg.Legendre(x, f)
	mOne := f.mOne
	return !leg.Equal(&mOne, f)
}

// Sqrt sets z to a square root of x and reports whether x was a quadratic
// residue. For p ≡ 3 (mod 4) the root is x^((p+1)/4); for p ≡ 5 (mod 8)
// it is x^((p+3)/8), corrected by sqrt(-1) when the candidate squares to
// -x. The correction is selected in constant time. When x is a
// non-residue z holds an unrelated value and the result is false.
func (z *Element) Sqrt(x *Element, f *Field) bool {
	var r Element
	switch f.pMod8 {
	case 7: // p ≡ 3 (mod 4)
		r.powChain(x, f.bits-2, uint64(f.c-1)/4, f)
	case 5:
		r.powChain(x, f.bits-3, uint64(f.c-3)/8, f)
		var sq, ri Element
		sq.Sqr(&r, f)
		ri.Mul(&r, &f.sqrtM1, f)
		r.Cmov(&ri, 1-boolToInt(sq.Equal(x, f)))
	default:
		panic("pmfield: no square root chain for this modulus shape")
	}
	var check Element
	check.Sqr(&r, f)
	*z = r
	return check.Equal(x, f)
}

// BatchInv inverts a slice of elements with a single chain inversion using
// Montgomery's trick. out and in must have the same length and may alias.
// A zero anywhere in the input zeroes the whole running product and with it
// every output; callers must screen zeros first.
func BatchInv(out, in []Element, f *Field) {
	n := len(in)
	if n == 0 {
		return
	}
	if len(out) != n {
		panic("pmfield: BatchInv length mismatch")
	}

	// s[i] = in[0] * ... * in[i-1]
	s := make([]Element, n)
	s[0].d[0] = 1
	for i := 1; i < n; i++ {
		s[i].Mul(&s[i-1], &in[i-1], f)
	}

	var u Element
	u.Mul(&s[n-1], &in[n-1], f)
	u.Inv(&u, f)

	// Walk backwards so the algorithm works in place.
	for i := n - 1; i >= 0; i-- {
		prev := in[i]
		out[i].Mul(&u, &s[i], f)
		u.Mul(&u, &prev, f)
	}
}
