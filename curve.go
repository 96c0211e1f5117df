package pmfield

// Consumer-side contracts. Curve packages build their point types on top
// of Element and one of the Field descriptors; this package declares only
// the method surface it expects back, so protocol code can stay generic
// over curves without this package depending on any of them.

// Codec is the serialization contract shared by compressed points and any
// other fixed-size wire value a curve package defines. Pack writes the
// canonical encoding into dst (exactly Size bytes); Unpack is its inverse
// and rejects malformed encodings.
type Codec interface {
	Pack(dst []byte) error
	Unpack(src []byte) error
	Size() int
}

// Point is the group law contract a curve package implements over a field
// element type. P is the concrete point type; methods mutate the receiver
// and return it for chaining, mirroring the in-place style of the field
// operations.
type Point[P any] interface {
	// SetIdentity sets the receiver to the group identity.
	SetIdentity() P

	// Set copies p into the receiver.
	Set(p P) P

	// Add sets the receiver to p + q. p and q may alias the receiver.
	Add(p, q P) P

	// Double sets the receiver to p + p.
	Double(p P) P

	// Neg sets the receiver to -p.
	Neg(p P) P

	// ScalarMult sets the receiver to k*p for a little-endian scalar.
	// Implementations must be constant time in k.
	ScalarMult(k []byte, p P) P

	// IsIdentity reports whether the receiver is the identity.
	IsIdentity() bool

	// Equal reports whether the receiver and p are the same point.
	Equal(p P) bool
}

// Compressed is a point in compressed wire form: the packed X coordinate
// plus a sign. Decompression recovers Y via Sqrt on the curve equation,
// which is why the field contract includes the square root and residue
// tests.
type Compressed[P any] interface {
	Codec

	// Decompress recovers the full point, reporting false when the X
	// coordinate is not on the curve.
	Decompress() (P, bool)
}
