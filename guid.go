package guid

import (
	"encoding/hex"
	"math/bits"
)

// GUID is a 128-bit (16 byte) identifier. It is treated as an opaque value:
// no version or variant bits are interpreted. The all-zero value is reserved
// and reads as invalid.
type GUID [16]byte

// Nil is the invalid GUID (all zeros)
var Nil GUID

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
	offset32 uint32 = 2166136261
	prime32  uint32 = 16777619
)

// String returns the canonical representation of the GUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (g GUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], g)
	return string(buf[:])
}

// encodeHex writes the 36 byte canonical form of g into dst
func encodeHex(dst []byte, g GUID) {
	hex.Encode(dst[0:8], g[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], g[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], g[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], g[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], g[10:16])
}

// Valid reports whether g is anything other than the all-zero GUID.
func (g GUID) Valid() bool {
	return g != Nil
}

// IsNil returns true if the GUID is the nil GUID (all zeros)
func (g GUID) IsNil() bool {
	return g == Nil
}

// Reset sets every byte of g to zero.
func (g *GUID) Reset() {
	*g = Nil
}

// Bytes returns a copy of the GUID as a byte slice
func (g GUID) Bytes() []byte {
	return g[:]
}

// Compare returns an integer comparing two GUIDs lexicographically.
// The result will be 0 if g==other, -1 if g < other, and +1 if g > other.
func (g GUID) Compare(other GUID) int {
	for i := 0; i < 16; i++ {
		if g[i] < other[i] {
			return -1
		}
		if g[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Equal returns true if g and other hold the same 16 bytes
func (g GUID) Equal(other GUID) bool {
	return g == other
}

// Hash returns the 64-bit FNV-1a hash of the GUID bytes.
func (g GUID) Hash() uint64 {
	h := offset64
	for _, b := range g {
		h ^= uint64(b)
		h *= prime64
	}
	return h
}

// Hash32 returns the 32-bit FNV-1a hash of the GUID bytes.
func (g GUID) Hash32() uint32 {
	h := offset32
	for _, b := range g {
		h ^= uint32(b)
		h *= prime32
	}
	return h
}

// HashWord returns the FNV-1a hash sized to the host word: the 64-bit
// variant on 64-bit platforms and the 32-bit variant elsewhere.
func (g GUID) HashWord() uintptr {
	if bits.UintSize == 64 {
		return uintptr(g.Hash())
	}
	return uintptr(g.Hash32())
}
