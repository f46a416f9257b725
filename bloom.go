package doubloom

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Filter is a non-thread-safe bloom filter backed by a flat []uint64 bit
// vector and probed with Kirsch–Mitzenmacher double hashing.
//
// The bit count and hash function count are fixed at construction; growing
// the filter afterwards would invalidate every previously computed bit
// position, since positions are taken modulo the bit count.
type Filter struct {
	words    []uint64 // Backing bit vector, bitCount/64 words
	bitCount uint64   // Total addressable bits, always a multiple of WordBits
	k        uint32   // Number of simulated hash functions
	hasher   Hasher   // Digest pair source
	count    uint64   // Number of items inserted since the last Clear (approximate)
}

// New creates a bloom filter for the expected number of items using the
// default xxh3 hasher. The sizing directive is either a [FalsePositiveRate]
// or a [HashCount].
//
// Returns an error wrapping [ErrInvalidParameter] if expectedItems is zero
// or the sizing directive is invalid.
func New(expectedItems uint64, sizing Sizing) (*Filter, error) {
	return NewWithHasher(expectedItems, sizing, XXH3)
}

// NewWithHasher is like [New] but hashes keys with the given [Hasher].
func NewWithHasher(expectedItems uint64, sizing Sizing, hasher Hasher) (*Filter, error) {
	if expectedItems == 0 {
		return nil, fmt.Errorf("%w: expected items must be greater than zero", ErrInvalidParameter)
	}
	if hasher.Bytes == nil || hasher.String == nil {
		return nil, fmt.Errorf("%w: hasher must provide byte and string digests", ErrInvalidParameter)
	}

	m, k, err := sizing.derive(expectedItems)
	if err != nil {
		return nil, err
	}

	// The word-rounded value, not the raw minimum, drives all later index
	// math; mixing the two would skew the realized false positive rate.
	bitCount := roundToWord(m)

	return &Filter{
		words:    make([]uint64, bitCount/WordBits),
		bitCount: bitCount,
		k:        k,
		hasher:   hasher,
	}, nil
}

// Insert adds a byte key to the filter.
func (f *Filter) Insert(key []byte) {
	h1, h2 := f.hasher.digestPair(key)
	f.setBits(h1, h2)
}

// InsertString adds a string key to the filter without allocating.
func (f *Filter) InsertString(key string) {
	h1, h2 := f.hasher.digestPairString(key)
	f.setBits(h1, h2)
}

// InsertUint64 adds an integer key, hashed from its 8-byte little-endian
// encoding.
func (f *Filter) InsertUint64(key uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	f.Insert(buf[:])
}

// Contains reports whether a byte key might be in the filter. A true
// answer may be a false positive; a false answer is definitive.
func (f *Filter) Contains(key []byte) bool {
	h1, h2 := f.hasher.digestPair(key)
	return f.testBits(h1, h2)
}

// ContainsString reports whether a string key might be in the filter
// without allocating.
func (f *Filter) ContainsString(key string) bool {
	h1, h2 := f.hasher.digestPairString(key)
	return f.testBits(h1, h2)
}

// ContainsUint64 reports whether an integer key might be in the filter.
func (f *Filter) ContainsUint64(key uint64) bool {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	return f.Contains(buf[:])
}

// setBits sets the k probe bits for a digest pair.
func (f *Filter) setBits(h1, h2 uint64) {
	for i := uint64(0); i < uint64(f.k); i++ {
		// Wrapping overflow is fine: the probe sequence only has to be
		// reproducible, not ordered.
		idx := (h1 + i*h2) % f.bitCount
		f.words[idx/WordBits] |= 1 << (idx % WordBits)
	}
	f.count++
}

// testBits checks the k probe bits for a digest pair, short-circuiting on
// the first clear bit. That first clear bit is the common exit for absent
// keys, which makes misses cheaper than hits.
func (f *Filter) testBits(h1, h2 uint64) bool {
	for i := uint64(0); i < uint64(f.k); i++ {
		idx := (h1 + i*h2) % f.bitCount
		if f.words[idx/WordBits]&(1<<(idx%WordBits)) == 0 {
			return false
		}
	}
	return true
}

// Clear resets every bit to zero and the insert count with it. The bit
// count and hash function count are unchanged.
func (f *Filter) Clear() {
	clear(f.words)
	f.count = 0
}

// BitCount returns the total number of bits in the backing storage, after
// rounding up to the word width.
func (f *Filter) BitCount() uint64 {
	return f.bitCount
}

// HashCount returns the number of simulated hash functions (k).
func (f *Filter) HashCount() uint32 {
	return f.k
}

// MemoryUsageBytes returns the bytes occupied by the backing word array.
// This is allocated capacity, independent of how many bits are set.
func (f *Filter) MemoryUsageBytes() uint64 {
	return uint64(len(f.words)) * wordBytes
}

// Count returns the number of items inserted since the last Clear.
// Re-inserting the same key counts again, so this is an upper bound on the
// number of distinct items.
func (f *Filter) Count() uint64 {
	return f.count
}

// EstimatedFillRatio returns the proportion of bits currently set.
func (f *Filter) EstimatedFillRatio() float64 {
	var set uint64
	for _, word := range f.words {
		set += uint64(bits.OnesCount64(word))
	}
	return float64(set) / float64(f.bitCount)
}

// EstimatedFalsePositiveRate estimates the current false positive rate
// based on the number of items inserted.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.bitCount, f.k, f.count)
}
