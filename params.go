package doubloom

import (
	"errors"
	"fmt"
	"math"
)

const (
	// WordBits is the width of one backing storage word.
	WordBits = 64
	// wordBytes is the byte width of one backing storage word.
	wordBytes = WordBits / 8
	// ln2 is the natural logarithm of 2.
	ln2 = 0.6931471805599453
	// ln2Squared is ln(2)^2.
	ln2Squared = 0.4804530139182014
)

// ErrInvalidParameter is returned by New when a construction parameter is
// invalid: zero expected items, a false positive rate outside (0, 1), or a
// zero hash count. It always indicates a caller configuration error, never
// an environmental failure.
var ErrInvalidParameter = errors.New("doubloom: invalid construction parameter")

// Sizing directs how the filter derives its bit count and hash function
// count from the expected item count. The two implementations are
// [FalsePositiveRate] and [HashCount].
type Sizing interface {
	// derive returns the minimum required bit count m (before word
	// rounding) and the hash function count k for n expected items.
	derive(n uint64) (m uint64, k uint32, err error)
}

// FalsePositiveRate sizes the filter for a target false positive
// probability, strictly between 0 and 1. The filter derives both the bit
// count and the optimal hash function count.
type FalsePositiveRate float64

func (p FalsePositiveRate) derive(n uint64) (uint64, uint32, error) {
	rate := float64(p)
	if rate <= 0 || rate >= 1 {
		return 0, 0, fmt.Errorf("%w: false positive rate %v must be in (0, 1)", ErrInvalidParameter, rate)
	}

	// m = -n * ln(p) / ln(2)^2
	m := uint64(math.Ceil(-float64(n) * math.Log(rate) / ln2Squared))

	// k = (m/n) * ln(2), from the raw m rather than the word-rounded one
	k := uint32(math.Ceil(float64(m) / float64(n) * ln2))

	return m, k, nil
}

// HashCount sizes the filter for a fixed number of hash functions. The bit
// count is derived under the optimal-fill assumption (50% of bits set,
// giving p ≈ 2^-k): m = k*n / ln(2).
type HashCount uint32

func (k HashCount) derive(n uint64) (uint64, uint32, error) {
	if k == 0 {
		return 0, 0, fmt.Errorf("%w: hash count must be greater than zero", ErrInvalidParameter)
	}

	m := uint64(math.Ceil(float64(k) * float64(n) / ln2))
	return m, uint32(k), nil
}

// roundToWord rounds m up to the next multiple of WordBits.
func roundToWord(m uint64) uint64 {
	return (m + WordBits - 1) / WordBits * WordBits
}

// EstimateFalsePositiveRate estimates the false positive rate of a filter
// with bitCount bits and k hash functions after itemsAdded insertions.
// Formula: (1 - e^(-kn/m))^k
func EstimateFalsePositiveRate(bitCount uint64, k uint32, itemsAdded uint64) float64 {
	m := float64(bitCount)
	n := float64(itemsAdded)
	kf := float64(k)

	if m == 0 || n == 0 {
		return 0
	}

	return math.Pow(1-math.Exp(-kf*n/m), kf)
}
