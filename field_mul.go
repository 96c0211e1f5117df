package pmfield

// Multiplication strategy: operands are condensed to 28-bit digits, split
// into 14-bit halves, and convolved schoolbook-style at half-digit
// resolution so every accumulator stays below 2^53. The half words are
// recombined into 2L+1 28-bit words and folded back to L digits in two
// reduction passes using 2^N ≡ C (mod p). Fixed shape, no branching on
// operand values.

// Mul sets z = x * y. Operands may be denormalized; the result is
// denormalized with a small carry stash.
func (z *Element) Mul(x, y *Element, f *Field) {
	a, b := *x, *y
	a.condense(f)
	b.condense(f)

	l := f.limbs
	n := 2 * l
	var ah, bh [2 * maxLimbs]int64
	for i := 0; i < l; i++ {
		ah[2*i] = a.d[i] & maskHalf
		ah[2*i+1] = a.d[i] >> halfW
		bh[2*i] = b.d[i] & maskHalf
		bh[2*i+1] = b.d[i] >> halfW
	}

	var u [4*maxLimbs - 1]int64
	for i := 0; i < n; i++ {
		hi := ah[i]
		for j := 0; j < n; j++ {
			u[i+j] += hi * bh[j]
		}
	}

	z.reduceWide(&u, f)
}

// Sqr sets z = x * x, skipping the symmetric half-digit products.
func (z *Element) Sqr(x *Element, f *Field) {
	a := *x
	a.condense(f)

	l := f.limbs
	n := 2 * l
	var ah [2 * maxLimbs]int64
	for i := 0; i < l; i++ {
		ah[2*i] = a.d[i] & maskHalf
		ah[2*i+1] = a.d[i] >> halfW
	}

	var u [4*maxLimbs - 1]int64
	for i := 0; i < n; i++ {
		u[2*i] += ah[i] * ah[i]
		twice := 2 * ah[i]
		for j := i + 1; j < n; j++ {
			u[i+j] += twice * ah[j]
		}
	}

	z.reduceWide(&u, f)
}

// reduceWide recombines a half-digit convolution into 2L+1 digit words and
// folds everything above bit N back down, exploiting 2^N ≡ C (mod p). The
// high half is realigned by the gap between 28L and N before the multiply
// by C. Two folds bring 2L+1 words to exactly L digits.
func (z *Element) reduceWide(u *[4*maxLimbs - 1]int64, f *Field) {
	l := f.limbs
	tb := f.topBits

	// Recombine 14-bit convolution words into 28-bit digit words t[0..2L],
	// propagating carry between adjacent words.
	var t [2*maxLimbs + 1]int64
	var c int64
	for k := 0; k < 2*l; k++ {
		c += u[2*k]
		if 2*k+1 < 4*l-1 {
			c += u[2*k+1] << halfW
		}
		t[k] = c & maskLimb
		c >>= limbW
	}
	t[2*l] = c

	// First fold: words at and above bit N form the high half h, shifted
	// into digit alignment; the result l + C*h spans L+3 words.
	nh := l + 2
	var h [maxLimbs + 2]int64
	for j := 0; j < nh; j++ {
		h[j] = t[l-1+j] >> tb
		if l+j < 2*l+1 {
			h[j] |= (t[l+j] & f.topMask) << f.gap
		}
	}
	t[l-1] &= f.topMask
	c = 0
	for j := 0; j < nh; j++ {
		c += f.c * h[j]
		if j < l {
			c += t[j]
		}
		t[j] = c & maskLimb
		c >>= limbW
	}
	t[nh] = c

	// Second fold: the remaining overhang is at most four small words.
	var h2 [4]int64
	for j := 0; j < 4; j++ {
		h2[j] = t[l-1+j] >> tb
		if l+j < nh+1 {
			h2[j] |= (t[l+j] & f.topMask) << f.gap
		}
	}
	t[l-1] &= f.topMask
	c = 0
	for j := 0; j < l-1; j++ {
		c += t[j]
		if j < 4 {
			c += f.c * h2[j]
		}
		z.d[j] = c & maskLimb
		c >>= limbW
	}
	z.d[l-1] = c + t[l-1]
}
