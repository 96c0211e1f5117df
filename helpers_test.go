package pmfield

import "encoding/binary"

// seedElement derives a deterministic pseudo-random element from a seed,
// so tests and properties are reproducible without fixture files.
func seedElement(seed uint64, f *Field) Element {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], seed)
	return *HashToElement(b[:], f)
}
