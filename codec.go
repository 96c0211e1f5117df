package pmfield

import "errors"

// Serialization is little-endian over ceil(N/8) bytes. The 28-bit digit
// width never aligns to byte boundaries, so bytes straddle digits; a bit
// accumulator streams value bits across the seams in both directions. The
// top byte uses only N mod 8 bits: always zero-padded on output, masked
// (not validated) on input unless the caller asks for strict
// canonicalization.

var (
	errLength    = errors.New("pmfield: byte slice length does not match field size")
	errCanonical = errors.New("pmfield: encoding is not canonical")
)

// PackNormalized writes the canonical little-endian encoding of x into
// dst, which must be exactly Size bytes. x must already be normalized;
// stash or guard bits would corrupt the output.
func (x *Element) PackNormalized(dst []byte, f *Field) {
	if len(dst) != f.size {
		panic("pmfield: Pack buffer length does not match field size")
	}
	var acc uint64
	var nbits uint
	bi := 0
	for i := 0; i < f.limbs; i++ {
		w := uint(limbW)
		if i == f.limbs-1 {
			w = f.topBits
		}
		acc |= uint64(x.d[i]) << nbits
		nbits += w
		for nbits >= 8 {
			dst[bi] = byte(acc)
			acc >>= 8
			nbits -= 8
			bi++
		}
	}
	if nbits > 0 {
		dst[bi] = byte(acc)
	}
}

// Pack normalizes z in place, then writes its canonical encoding to dst.
func (z *Element) Pack(dst []byte, f *Field) {
	z.Normalize(f)
	z.PackNormalized(dst, f)
}

// Bytes returns the canonical encoding of x without mutating it.
func (x *Element) Bytes(f *Field) []byte {
	t := *x
	b := make([]byte, f.size)
	t.Pack(b, f)
	return b
}

// Unpack sets z from a little-endian encoding of exactly Size bytes. Bits
// above N are ignored. Values in [p, 2^N) are accepted as denormalized
// representatives; use UnpackCanonical to reject them.
func (z *Element) Unpack(b []byte, f *Field) error {
	if len(b) != f.size {
		return errLength
	}
	*z = Element{}
	var acc uint64
	var nbits uint
	bi := 0
	for i := 0; i < f.limbs; i++ {
		w := uint(limbW)
		if i == f.limbs-1 {
			w = f.topBits
		}
		for nbits < w && bi < f.size {
			acc |= uint64(b[bi]) << nbits
			nbits += 8
			bi++
		}
		z.d[i] = int64(acc & (1<<w - 1))
		acc >>= w
		nbits -= w
	}
	return nil
}

// UnpackCanonical is Unpack restricted to canonical encodings: the unused
// top bits must be clear and the value must be below the modulus.
func (z *Element) UnpackCanonical(b []byte, f *Field) error {
	if len(b) != f.size {
		return errLength
	}
	if pad := uint(8*f.size) - f.bits; pad > 0 && b[f.size-1]>>(8-pad) != 0 {
		return errCanonical
	}
	if err := z.Unpack(b, f); err != nil {
		return err
	}
	var borrow int64
	for i := 0; i < f.limbs; i++ {
		borrow = (z.d[i] - f.modulus.d[i] + borrow) >> limbW
	}
	if borrow == 0 {
		*z = Element{}
		return errCanonical
	}
	return nil
}

// SetWideBytes sets z from a little-endian value twice the field size,
// reduced modulo p. Folding double-width input keeps the result
// statistically uniform, which is what the sampling helpers rely on.
func (z *Element) SetWideBytes(b []byte, f *Field) error {
	if len(b) != 2*f.size {
		return errLength
	}
	*z = Element{}
	for i := len(b) - 1; i >= 0; i-- {
		z.MulInt(z, 256, f)
		z.AddInt(z, int64(b[i]), f)
	}
	z.Normalize(f)
	return nil
}
