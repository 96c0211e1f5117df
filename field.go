package pmfield

import (
	"crypto/subtle"
	"unsafe"
)

// Digit layout shared by every field: 28 value bits per digit, split into
// 14-bit halves during multiplication so partial products accumulate well
// below 2^63.
const (
	limbW    = 28
	halfW    = limbW / 2
	maskLimb = (1 << limbW) - 1
	maskHalf = (1 << halfW) - 1

	// maxLimbs is sized for the largest field (2^521 - 1 at 19 digits).
	maxLimbs = 19
)

// Element is a field element in lazy form: sum(d[i] << (28*i)) modulo the
// field prime. Digits below the top are kept in [0, 2^28); the top digit
// holds topBits value bits plus a signed carry stash at the weight 2^N,
// which the next operation consumes as stash*C (2^N ≡ C mod p). The zero
// value is the field element 0 in every field.
type Element struct {
	d [maxLimbs]int64
}

// Field describes one pseudo-Mersenne modulus 2^bits - c. The four package
// level descriptors are immutable after init; every Element operation takes
// the descriptor of the field it works in.
type Field struct {
	name    string
	bits    uint // N
	c       int64
	limbs   int   // L = ceil(N/28)
	topBits uint  // value bits in the top digit: N - 28*(L-1)
	topMask int64 // (1 << topBits) - 1
	gap     uint  // 28 - topBits: realignment shift for 2^(28L) ≡ C*2^gap
	size    int   // ceil(N/8)
	pMod8   int

	modulus Element
	mOne    Element
	sqrtM1  Element // sqrt(-1), set at init for p ≡ 5 (mod 8)
}

func newField(name string, bits uint, c int64) *Field {
	f := &Field{
		name:  name,
		bits:  bits,
		c:     c,
		limbs: int((bits + limbW - 1) / limbW),
		size:  int((bits + 7) / 8),
		pMod8: int((8 - c%8) % 8),
	}
	f.topBits = bits - uint(f.limbs-1)*limbW
	f.topMask = (1 << f.topBits) - 1
	f.gap = limbW - f.topBits

	// p = 2^N - C in base 2^28.
	f.modulus.d[0] = (1 << limbW) - c
	for i := 1; i < f.limbs-1; i++ {
		f.modulus.d[i] = maskLimb
	}
	f.modulus.d[f.limbs-1] = f.topMask
	f.mOne = f.modulus
	f.mOne.d[0]--
	return f
}

// Name returns a human-readable name of the modulus, e.g. "2^255-19".
func (f *Field) Name() string { return f.name }

func (f *Field) String() string { return f.name }

// Bits returns the bit width N of the modulus.
func (f *Field) Bits() uint { return f.bits }

// Size returns the canonical serialization length in bytes, ceil(N/8).
func (f *Field) Size() int { return f.size }

// Zero returns the field element 0.
func (f *Field) Zero() Element { return Element{} }

// One returns the field element 1.
func (f *Field) One() Element {
	var e Element
	e.d[0] = 1
	return e
}

// MOne returns the field element -1, i.e. p-1 in canonical form.
func (f *Field) MOne() Element { return f.mOne }

// Modulus returns the prime p itself as an element. It is a denormalized
// representation of zero; normalizing it yields 0.
func (f *Field) Modulus() Element { return f.modulus }

// SetInt sets z to a small nonnegative integer.
func (z *Element) SetInt(v int64) {
	if v < 0 || v > maskLimb {
		panic("pmfield: SetInt value out of range")
	}
	*z = Element{}
	z.d[0] = v
}

// carryOut reads the signed carry stashed above the top digit's value bits.
func (x *Element) carryOut(f *Field) int64 {
	return x.d[f.limbs-1] >> f.topBits
}

// Add sets z = x + y. The operands' carry stashes are consumed as carry-in
// (folded through 2^N ≡ C) and z carries a fresh stash.
func (z *Element) Add(x, y *Element, f *Field) {
	l := f.limbs
	c := (x.carryOut(f) + y.carryOut(f)) * f.c
	xt := x.d[l-1] & f.topMask
	yt := y.d[l-1] & f.topMask
	for i := 0; i < l-1; i++ {
		c += x.d[i] + y.d[i]
		z.d[i] = c & maskLimb
		c >>= limbW
	}
	z.d[l-1] = c + xt + yt
}

// Sub sets z = x - y. Two copies of the modulus are added so the running
// value stays clear of deep negatives without affecting the residue.
func (z *Element) Sub(x, y *Element, f *Field) {
	l := f.limbs
	c := (x.carryOut(f) - y.carryOut(f)) * f.c
	xt := x.d[l-1] & f.topMask
	yt := y.d[l-1] & f.topMask
	for i := 0; i < l-1; i++ {
		c += x.d[i] - y.d[i] + 2*f.modulus.d[i]
		z.d[i] = c & maskLimb
		c >>= limbW
	}
	z.d[l-1] = c + xt - yt + 2*f.modulus.d[l-1]
}

// Neg sets z = -x, computed as 2p - x to stay inside the carry scheme.
func (z *Element) Neg(x *Element, f *Field) {
	l := f.limbs
	c := -x.carryOut(f) * f.c
	xt := x.d[l-1] & f.topMask
	for i := 0; i < l-1; i++ {
		c += 2*f.modulus.d[i] - x.d[i]
		z.d[i] = c & maskLimb
		c >>= limbW
	}
	z.d[l-1] = c + 2*f.modulus.d[l-1] - xt
}

// AddInt sets z = x + v for a machine-integer addend, which may be negative.
func (z *Element) AddInt(x *Element, v int64, f *Field) {
	if v >= 1<<47 || v <= -(1<<47) {
		panic("pmfield: AddInt addend out of range")
	}
	l := f.limbs
	c := x.carryOut(f)*f.c + v
	xt := x.d[l-1] & f.topMask
	for i := 0; i < l-1; i++ {
		c += x.d[i]
		z.d[i] = c & maskLimb
		c >>= limbW
	}
	z.d[l-1] = c + xt
}

// SubInt sets z = x - v.
func (z *Element) SubInt(x *Element, v int64, f *Field) {
	z.AddInt(x, -v, f)
}

// MulInt sets z = x * v for a small nonnegative machine integer.
func (z *Element) MulInt(x *Element, v int64, f *Field) {
	if v < 0 || v > 1<<15 {
		panic("pmfield: MulInt multiplier out of range")
	}
	l := f.limbs
	c := x.carryOut(f) * v * f.c
	xt := x.d[l-1] & f.topMask
	for i := 0; i < l-1; i++ {
		c += x.d[i] * v
		z.d[i] = c & maskLimb
		c >>= limbW
	}
	z.d[l-1] = c + xt*v
}

// condense folds the carry stash and runs two carry passes. Afterwards all
// digits are in [0, 2^28) except d[0], which may hold a small signed excess
// (within ±2^34) left by the final fold. Value is preserved modulo p.
// Tolerates any digit magnitudes the public operations can produce,
// including negative running values from subtraction chains.
func (x *Element) condense(f *Field) {
	l := f.limbs
	c := x.carryOut(f) * f.c
	x.d[l-1] &= f.topMask
	for i := 0; i < l; i++ {
		c += x.d[i]
		x.d[i] = c & maskLimb
		c >>= limbW
	}
	// Carry out of digit L-1 sits at weight 2^(28L) ≡ C * 2^gap.
	c = (c * f.c) << f.gap
	for i := 0; i < l; i++ {
		c += x.d[i]
		x.d[i] = c & maskLimb
		c >>= limbW
	}
	x.d[0] += (c * f.c) << f.gap
}

// reduceStep performs one fixed-shape reduction pass: add C, extract
// k = carry past bit N, then subtract C + k*p. For an input value in
// [0, 3p) one pass lands in [0, p+3C); a second pass is canonical.
// No data-dependent branching.
func (z *Element) reduceStep(f *Field) {
	l := f.limbs
	c := f.c
	for i := 0; i < l-1; i++ {
		c += z.d[i]
		z.d[i] = c & maskLimb
		c >>= limbW
	}
	c += z.d[l-1]
	k := c >> f.topBits
	z.d[l-1] = c & f.topMask
	// The top bits k*2^N are gone; restore k*C and take back the probe C.
	c = k*f.c - f.c
	for i := 0; i < l-1; i++ {
		c += z.d[i]
		z.d[i] = c & maskLimb
		c >>= limbW
	}
	z.d[l-1] += c
}

// Normalize reduces z to its canonical representation in [0, p), with no
// stash bits set. Fixed cost, branch-free on the operand value.
func (z *Element) Normalize(f *Field) {
	l := f.limbs
	z.condense(f)
	// Fold the top digit's bits above topBits and add one modulus so the
	// value is strictly positive before the reduction passes.
	c := z.carryOut(f) * f.c
	z.d[l-1] &= f.topMask
	for i := 0; i < l-1; i++ {
		c += z.d[i] + f.modulus.d[i]
		z.d[i] = c & maskLimb
		c >>= limbW
	}
	z.d[l-1] += c + f.modulus.d[l-1]
	z.reduceStep(f)
	z.reduceStep(f)
}

// Equal reports whether x and y represent the same residue. Both are
// normalized on copies first; denormalized representations of the same
// value always compare equal. Constant time.
func (x *Element) Equal(y *Element, f *Field) bool {
	a, b := *x, *y
	a.Normalize(f)
	b.Normalize(f)
	return subtle.ConstantTimeCompare(
		(*[8 * maxLimbs]byte)(unsafe.Pointer(&a.d[0]))[:],
		(*[8 * maxLimbs]byte)(unsafe.Pointer(&b.d[0]))[:],
	) == 1
}

// IsZero reports whether x normalizes to zero.
func (x *Element) IsZero(f *Field) bool {
	t := *x
	t.Normalize(f)
	var v int64
	for i := 0; i < f.limbs; i++ {
		v |= t.d[i]
	}
	return v == 0
}

// IsOdd reports whether the canonical value of x is odd.
func (x *Element) IsOdd(f *Field) bool {
	t := *x
	t.Normalize(f)
	return t.d[0]&1 == 1
}

// Cmov conditionally moves a into z. If flag is 1, z = a; if 0, z is
// unchanged. Constant time.
func (z *Element) Cmov(a *Element, flag int) {
	mask := int64(-(int64(flag) & 1))
	for i := 0; i < maxLimbs; i++ {
		z.d[i] ^= mask & (z.d[i] ^ a.d[i])
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
