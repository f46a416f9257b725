package benchmarks

import (
	"fmt"
	"testing"

	bab "github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
	"github.com/doubloom/doubloom"
	atomicbloom "github.com/ericvolp12/atomic-bloom"
	"github.com/greatroar/blobloom"
)

const (
	benchItems  = 1_000_000
	benchFPRate = 0.01
)

// Pre-generate test data to avoid measuring string generation
var testKeys [][]byte
var testKeysStr []string

func init() {
	testKeys = make([][]byte, benchItems)
	testKeysStr = make([]string, benchItems)
	for i := range benchItems {
		s := fmt.Sprintf("key-%d", i)
		testKeys[i] = []byte(s)
		testKeysStr[i] = s
	}
}

func newFilter(b *testing.B, hasher doubloom.Hasher) *doubloom.Filter {
	b.Helper()
	f, err := doubloom.NewWithHasher(benchItems, doubloom.FalsePositiveRate(benchFPRate), hasher)
	if err != nil {
		b.Fatal(err)
	}
	return f
}

// ============================================================================
// Sequential Insert Benchmarks
// ============================================================================

func BenchmarkInsertSequential_Doubloom(b *testing.B) {
	f := newFilter(b, doubloom.XXH3)
	b.ResetTimer()
	for i := range b.N {
		f.Insert(testKeys[i%benchItems])
	}
}

func BenchmarkInsertSequential_DoubloomString(b *testing.B) {
	f := newFilter(b, doubloom.XXH3)
	b.ResetTimer()
	for i := range b.N {
		f.InsertString(testKeysStr[i%benchItems])
	}
}

func BenchmarkInsertSequential_DoubloomMetro(b *testing.B) {
	f := newFilter(b, doubloom.Metro)
	b.ResetTimer()
	for i := range b.N {
		f.Insert(testKeys[i%benchItems])
	}
}

func BenchmarkInsertSequential_DoubloomCity(b *testing.B) {
	f := newFilter(b, doubloom.City)
	b.ResetTimer()
	for i := range b.N {
		f.Insert(testKeys[i%benchItems])
	}
}

func BenchmarkInsertSequential_BitsAndBlooms(b *testing.B) {
	f := bab.NewWithEstimates(benchItems, benchFPRate)
	b.ResetTimer()
	for i := range b.N {
		f.Add(testKeys[i%benchItems])
	}
}

func BenchmarkInsertSequential_AtomicBloom(b *testing.B) {
	f := atomicbloom.NewWithEstimates(benchItems, benchFPRate)
	b.ResetTimer()
	for i := range b.N {
		f.Add(testKeys[i%benchItems])
	}
}

func BenchmarkInsertSequential_Blobloom(b *testing.B) {
	f := blobloom.NewOptimized(blobloom.Config{
		Capacity: benchItems,
		FPRate:   benchFPRate,
	})
	b.ResetTimer()
	for i := range b.N {
		// blobloom requires pre-hashing
		h := xxhash.Sum64(testKeys[i%benchItems])
		f.Add(h)
	}
}

// ============================================================================
// Sequential Contains Benchmarks (hits: all k probes checked)
// ============================================================================

func BenchmarkContainsSequential_Doubloom(b *testing.B) {
	f := newFilter(b, doubloom.XXH3)
	for i := range benchItems {
		f.Insert(testKeys[i])
	}
	b.ResetTimer()
	for i := range b.N {
		f.Contains(testKeys[i%benchItems])
	}
}

func BenchmarkContainsSequential_DoubloomString(b *testing.B) {
	f := newFilter(b, doubloom.XXH3)
	for i := range benchItems {
		f.Insert(testKeys[i])
	}
	b.ResetTimer()
	for i := range b.N {
		f.ContainsString(testKeysStr[i%benchItems])
	}
}

func BenchmarkContainsSequential_BitsAndBlooms(b *testing.B) {
	f := bab.NewWithEstimates(benchItems, benchFPRate)
	for i := range benchItems {
		f.Add(testKeys[i])
	}
	b.ResetTimer()
	for i := range b.N {
		f.Test(testKeys[i%benchItems])
	}
}

func BenchmarkContainsSequential_AtomicBloom(b *testing.B) {
	f := atomicbloom.NewWithEstimates(benchItems, benchFPRate)
	for i := range benchItems {
		f.Add(testKeys[i])
	}
	b.ResetTimer()
	for i := range b.N {
		f.Test(testKeys[i%benchItems])
	}
}

func BenchmarkContainsSequential_Blobloom(b *testing.B) {
	f := blobloom.NewOptimized(blobloom.Config{
		Capacity: benchItems,
		FPRate:   benchFPRate,
	})
	// Pre-hash keys for fair comparison
	hashes := make([]uint64, benchItems)
	for i := range benchItems {
		hashes[i] = xxhash.Sum64(testKeys[i])
		f.Add(hashes[i])
	}
	b.ResetTimer()
	for i := range b.N {
		f.Has(hashes[i%benchItems])
	}
}

// ============================================================================
// Miss Benchmarks (absent keys short-circuit on the first clear bit)
// ============================================================================

func BenchmarkContainsMiss_Doubloom(b *testing.B) {
	f := newFilter(b, doubloom.XXH3)
	for i := range benchItems {
		f.Insert(testKeys[i])
	}
	misses := make([][]byte, benchItems)
	for i := range benchItems {
		misses[i] = fmt.Appendf(nil, "miss-%d", i)
	}
	b.ResetTimer()
	for i := range b.N {
		f.Contains(misses[i%benchItems])
	}
}

func BenchmarkContainsMiss_BitsAndBlooms(b *testing.B) {
	f := bab.NewWithEstimates(benchItems, benchFPRate)
	for i := range benchItems {
		f.Add(testKeys[i])
	}
	misses := make([][]byte, benchItems)
	for i := range benchItems {
		misses[i] = fmt.Appendf(nil, "miss-%d", i)
	}
	b.ResetTimer()
	for i := range b.N {
		f.Test(misses[i%benchItems])
	}
}

// ============================================================================
// Empty Filter Benchmarks (best case: the very first probe misses)
// ============================================================================

func BenchmarkContainsEmpty_Doubloom(b *testing.B) {
	f := newFilter(b, doubloom.XXH3)
	b.ResetTimer()
	for i := range b.N {
		f.Contains(testKeys[i%benchItems])
	}
}

// ============================================================================
// False Positive Rate Measurement
// ============================================================================

func BenchmarkMeasureFPRate_Doubloom(b *testing.B) {
	for range b.N {
		b.StopTimer()
		f := newFilter(b, doubloom.XXH3)
		for i := range benchItems {
			f.Insert(testKeys[i])
		}
		b.StartTimer()

		var falsePositives int
		for i := range benchItems {
			if f.Contains(fmt.Appendf(nil, "absent-%d", i)) {
				falsePositives++
			}
		}
		b.ReportMetric(float64(falsePositives)/float64(benchItems), "fprate")
	}
}
