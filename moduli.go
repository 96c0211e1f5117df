package pmfield

// The four supported moduli. All share the 28-bit digit layout; they
// differ in digit count, the top digit's width, and the reduction
// constant C.
var (
	// P25519 is 2^255 - 19, the coordinate field of Curve25519.
	P25519 = newField("2^255-19", 255, 19)

	// P41417 is 2^414 - 17, the coordinate field of Curve41417.
	P41417 = newField("2^414-17", 414, 17)

	// P511187 is 2^511 - 187, the coordinate field of M-511.
	P511187 = newField("2^511-187", 511, 187)

	// P521 is 2^521 - 1, the Mersenne coordinate field of E-521.
	P521 = newField("2^521-1", 521, 1)
)

// Fields lists every supported modulus.
var Fields = []*Field{P25519, P41417, P511187, P521}

func init() {
	// For p ≡ 5 (mod 8) the square root needs sqrt(-1). Since 2 is a
	// non-residue for these primes, 2^((p-1)/4) squares to -1.
	for _, f := range Fields {
		if f.pMod8 != 5 {
			continue
		}
		var two Element
		two.d[0] = 2
		f.sqrtM1.powChain(&two, f.bits-2, uint64(f.c+1)/4, f)
		f.sqrtM1.Normalize(f)
	}
}
