package pmfield

import (
	"io"

	sha256 "github.com/minio/sha256-simd"
)

// Random returns a uniformly distributed element of [0, p), normalized.
// rand is typically crypto/rand.Reader. Double-width bytes are reduced
// modulo p, so no rejection loop is needed.
func Random(rand io.Reader, f *Field) (*Element, error) {
	buf := make([]byte, 2*f.size)
	if _, err := io.ReadFull(rand, buf); err != nil {
		return nil, err
	}
	var e Element
	if err := e.SetWideBytes(buf, f); err != nil {
		return nil, err
	}
	return &e, nil
}

// HashToElement maps a message to a field element by expanding it through
// SHA-256 in counter mode to double the field width and reducing modulo p.
// The map is deterministic and near-uniform over the field.
func HashToElement(msg []byte, f *Field) *Element {
	wide := make([]byte, 2*f.size)
	block := make([]byte, sha256.Size)
	for off, ctr := 0, byte(0); off < len(wide); off, ctr = off+sha256.Size, ctr+1 {
		h := sha256.New()
		h.Write([]byte{ctr})
		h.Write(msg)
		copy(wide[off:], h.Sum(block[:0]))
	}
	var e Element
	// Length is correct by construction; SetWideBytes cannot fail here.
	_ = e.SetWideBytes(wide, f)
	return &e
}
