// Package pmfield implements constant-time arithmetic over pseudo-Mersenne
// prime fields, the coordinate and scalar fields of several elliptic curves:
//
//   - P25519:  2^255 - 19   (Curve25519)
//   - P41417:  2^414 - 17   (Curve41417)
//   - P511187: 2^511 - 187  (M-511)
//   - P521:    2^521 - 1    (E-521)
//
// A field element is a fixed array of 28-bit digits held in int64 words.
// Operations are lazy: results may exceed the modulus and the top digit
// stashes a signed carry that the next operation consumes, so chains of
// additions and multiplications defer the full reduction until Normalize
// or Pack. All operations run a fixed sequence of instructions with no
// branching on operand values.
//
// Basic usage:
//
//	var x, y, z pmfield.Element
//	x.Unpack(xb, pmfield.P25519)
//	y.Unpack(yb, pmfield.P25519)
//	z.Mul(&x, &y, pmfield.P25519)
//	z.Pack(out, pmfield.P25519)
//
// Elements are plain values with no shared state; concurrent use is safe
// as long as each goroutine works on its own copies.
package pmfield
