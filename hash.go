package doubloom

import (
	"github.com/dgryski/go-metro"
	"github.com/zeebo/xxh3"
	"github.com/zhenjl/cityhash"
)

// Hasher is a seeded 64-bit digest over byte and string keys. Both
// functions must produce the same digest for a string and its byte
// representation; the String form exists so string keys hash without
// allocating.
//
// Any general-purpose (non-cryptographic) hash with reasonable avalanche
// behavior works: the filter derives its two base digests as h1 = H(key, 0)
// and h2 = H(key, h1), so the seed is the decorrelation channel.
type Hasher struct {
	Bytes  func(key []byte, seed uint64) uint64
	String func(key string, seed uint64) uint64
}

// Built-in hashers. XXH3 is the default used by [New].
var (
	// XXH3 hashes with zeebo/xxh3.
	XXH3 = Hasher{
		Bytes:  xxh3.HashSeed,
		String: xxh3.HashStringSeed,
	}

	// Metro hashes with dgryski/go-metro (MetroHash64).
	Metro = Hasher{
		Bytes:  metro.Hash64,
		String: metro.Hash64Str,
	}

	// City hashes with zhenjl/cityhash. The string form converts, so it
	// allocates; prefer XXH3 or Metro for string-heavy workloads.
	City = Hasher{
		Bytes: func(key []byte, seed uint64) uint64 {
			return cityhash.CityHash64WithSeed(key, uint32(len(key)), seed)
		},
		String: func(key string, seed uint64) uint64 {
			b := []byte(key)
			return cityhash.CityHash64WithSeed(b, uint32(len(b)), seed)
		},
	}
)

// digestPair computes the two base digests for a byte key.
func (h Hasher) digestPair(key []byte) (h1, h2 uint64) {
	h1 = h.Bytes(key, 0)
	h2 = h.Bytes(key, h1)
	if h2 == 0 {
		// A zero stride would collapse all k probes onto one bit.
		h2 = 1
	}
	return h1, h2
}

// digestPairString computes the two base digests for a string key without
// converting it to a byte slice.
func (h Hasher) digestPairString(key string) (h1, h2 uint64) {
	h1 = h.String(key, 0)
	h2 = h.String(key, h1)
	if h2 == 0 {
		h2 = 1
	}
	return h1, h2
}
