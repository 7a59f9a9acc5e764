package randz

import (
	"fmt"
	"math"
)

// Measurement helpers for generator quality, used by the distribution
// tests and the randstat command. They follow the same ownership rules
// as the generators: no internal synchronization.

// A Histogram counts draws over equal-width buckets spanning
// [lower, upper).
type Histogram struct {
	lower, upper uint64
	counts       []int64
	total        int64
	outside      int64
}

// NewHistogram returns a histogram over [lower, upper) with the given
// number of buckets. The range must be non-empty and divide evenly into
// the buckets, so that a uniform draw puts equal mass in each.
func NewHistogram(lower, upper uint64, buckets int) (*Histogram, error) {
	if lower >= upper {
		return nil, fmt.Errorf("empty range [%d, %d)", lower, upper)
	}
	if buckets <= 0 {
		return nil, fmt.Errorf("need at least one bucket")
	}
	if (upper-lower)%uint64(buckets) != 0 {
		return nil, fmt.Errorf("range size %d is not a multiple of %d buckets", upper-lower, buckets)
	}
	return &Histogram{lower: lower, upper: upper, counts: make([]int64, buckets)}, nil
}

// Add records one draw. Values outside [lower, upper) are tallied
// separately and excluded from the buckets.
func (h *Histogram) Add(v uint64) {
	if v < h.lower || v >= h.upper {
		h.outside++
		return
	}
	per := (h.upper - h.lower) / uint64(len(h.counts))
	h.counts[(v-h.lower)/per]++
	h.total++
}

// Counts returns a copy of the per-bucket counts.
func (h *Histogram) Counts() []int64 {
	counts := make([]int64, len(h.counts))
	copy(counts, h.counts)
	return counts
}

// Total reports the number of draws that fell inside the range.
func (h *Histogram) Total() int64 { return h.total }

// Outside reports the number of draws that fell outside the range.
func (h *Histogram) Outside() int64 { return h.outside }

// ChiSquared returns the chi-squared statistic of the bucket counts
// against a uniform distribution over the range, with len(Counts())-1
// degrees of freedom.
func (h *Histogram) ChiSquared() float64 {
	if h.total == 0 {
		return 0
	}
	expected := float64(h.total) / float64(len(h.counts))
	x := 0.0
	for _, c := range h.counts {
		d := float64(c) - expected
		x += d * d / expected
	}
	return x
}

// ChiSquaredCritical returns the critical value of the chi-squared
// distribution with df degrees of freedom at significance level alpha,
// using the Wilson-Hilferty cube approximation. It is within a few
// tenths of a percent of the exact value for df >= 9. Supported alphas
// are 0.10, 0.05, 0.01 and 0.001; others panic.
func ChiSquaredCritical(df int, alpha float64) float64 {
	var z float64
	switch alpha {
	case 0.10:
		z = 1.2816
	case 0.05:
		z = 1.6449
	case 0.01:
		z = 2.3263
	case 0.001:
		z = 3.0902
	default:
		panic(fmt.Sprintf("randz: ChiSquaredCritical: unsupported alpha %v", alpha))
	}
	a := 2 / (9 * float64(df))
	c := 1 - a + z*math.Sqrt(a)
	return float64(df) * c * c * c
}

// A CountingSource wraps a Source and counts raw pulls, which makes the
// rejection overhead of bounded draws observable without instrumenting
// the draw itself.
type CountingSource struct {
	src   Source
	pulls int64
}

// NewCountingSource returns a CountingSource drawing from src.
func NewCountingSource(src Source) *CountingSource {
	return &CountingSource{src: src}
}

// Raw advances the wrapped source.
func (c *CountingSource) Raw() [RawLen]byte {
	c.pulls++
	return c.src.Raw()
}

// Reseed reseeds the wrapped source. The pull count is unaffected.
func (c *CountingSource) Reseed(seed []byte) {
	c.src.Reseed(seed)
}

// Pulls reports the number of raw outputs drawn so far.
func (c *CountingSource) Pulls() int64 { return c.pulls }
