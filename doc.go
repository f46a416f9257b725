// Package doubloom provides a classic double-hashing bloom filter for Go.
//
// A bloom filter is a space-efficient probabilistic data structure that tests
// whether an element is a member of a set. False positive matches are possible,
// but false negatives are not – if the filter says an element is not present,
// it definitely is not. If it says an element might be present, it could be a
// false positive.
//
// # Architecture
//
// The filter is a flat bit vector backed by a []uint64, probed with the
// double-hashing technique: two real 64-bit digests h1 and h2 are computed
// per key, and the i-th simulated hash function addresses bit
//
//	(h1 + i*h2) mod m
//
// for i in [0, k). Kirsch and Mitzenmacher showed this scheme matches the
// false positive behavior of k independent hash functions while paying for
// only two hash computations. The second digest is derived by re-hashing the
// key with h1 folded in as the seed, which decorrelates it from h1.
//
// # Choosing Parameters
//
// Use [New] with your expected number of items and a sizing directive:
//
//	// Filter for 1 million items with 1% false positive rate
//	f, err := doubloom.New(1_000_000, doubloom.FalsePositiveRate(0.01))
//
//	// Or fix the number of hash functions and let the filter size itself
//	// for the optimal 50% fill at that k (p ≈ 2^-k)
//	f, err := doubloom.New(1_000_000, doubloom.HashCount(7))
//
// With a [FalsePositiveRate], the filter derives the minimum bit count
//
//	m = -n * ln(p) / (ln 2)²
//
// and the matching hash function count k = (m/n) * ln 2. With a fixed
// [HashCount], it derives m = k*n / ln 2. Either way the bit count is
// rounded up to a multiple of 64 so the backing words are fully used, and
// the rounded value drives all index math.
//
// Construction fails with [ErrInvalidParameter] if the expected item count
// is zero, the rate is outside (0, 1), or the hash count is zero. Every
// other operation on a constructed filter always succeeds.
//
// # Keys
//
// Keys are hashed from their byte representation. [Filter.Insert] and
// [Filter.Contains] take []byte; the String and Uint64 variants avoid
// conversions and allocations for the two most common key shapes. Composite
// types should be hashed via a canonical byte encoding chosen by the caller.
// The filter never stores or takes ownership of a key – any stable encoding
// works.
//
// # Hash Functions
//
// The default digest is xxh3, a fast high-quality non-cryptographic hash.
// [NewWithHasher] accepts an alternative [Hasher]; [Metro] and [City] are
// provided. Exact digest values are not part of the filter's contract and
// may change between releases; only consistency within one filter instance
// is guaranteed, so do not persist bit positions across processes.
//
// # False Positive Rate
//
// The realized false positive rate depends on the filter capacity, the
// number of hash functions, and the number of items added. A filter filled
// to its intended capacity achieves approximately the target rate; adding
// more items than planned degrades it. Use
// [Filter.EstimatedFalsePositiveRate] to monitor the current rate and
// [Filter.EstimatedFillRatio] to watch saturation.
//
// # Memory Usage
//
// Memory is a single allocation of m/64 words, reported by
// [Filter.MemoryUsageBytes]. For n items at false positive rate p:
//
//	memory_bits ≈ -n * ln(p) / (ln 2)²
//
// Example: 1 million items at 1% FP rate ≈ 1.2 MB.
//
// # Thread Safety
//
// Filter is NOT thread-safe. It is designed for a single owner: Insert and
// Clear require exclusive access, while Contains and the accessors are pure
// reads and may run concurrently with each other but never with a mutation.
// Callers that share a filter across goroutines must bring their own
// locking discipline.
//
// # References
//
//   - Less Hashing, Same Performance: https://www.eecs.harvard.edu/~michaelm/postscripts/rsa2008.pdf
//   - Space/Time Trade-offs in Hash Coding with Allowable Errors (Bloom, 1970)
package doubloom
