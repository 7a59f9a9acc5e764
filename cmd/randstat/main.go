// The randstat command draws values from one of the randz generators
// and reports how uniformly they spread over equal-width buckets:
// per-bucket counts, the chi-squared statistic against the uniform
// expectation, and the raw-pull overhead of the rejection step.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/dnswlt/randz"
	"github.com/dnswlt/randz/u128"
)

var (
	sourceName = flag.String("source", "wyrand", "Source to draw from: wyrand, pcg64 or chacha")
	seedHex    = flag.String("seed", "", "Seed bytes in hex; empty seeds from OS entropy")
	numDraws   = flag.Int("n", 1_000_000, "Number of draws")
	valueBits  = flag.Int("bits", 64, "Value width in bits: 8, 16, 32, 64 or 128")
	lower      = flag.Uint64("lower", 0, "Lower bound (inclusive)")
	upper      = flag.Uint64("upper", 1<<16, "Upper bound (exclusive)")
	upperHi    = flag.Uint64("upper128hi", 0, "With -bits=128, draw in [0, upper128hi * 2^64)")
	fullWidth  = flag.Bool("full", false, "Draw full-width values instead of a bounded range")
	numBuckets = flag.Int("buckets", 64, "Number of histogram buckets")
	alpha      = flag.Float64("alpha", 0.01, "Significance level for the critical value")
	cpuProfile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func newSource() (randz.Source, error) {
	var s randz.Source
	switch *sourceName {
	case "wyrand":
		s = randz.NewWyRand()
	case "pcg64":
		s = randz.NewPcg64()
	case "chacha":
		s = randz.NewChaCha()
	default:
		return nil, fmt.Errorf("unknown source %q", *sourceName)
	}
	if *seedHex != "" {
		seed, err := hex.DecodeString(*seedHex)
		if err != nil {
			return nil, fmt.Errorf("invalid -seed: %v", err)
		}
		s.Reseed(seed)
	}
	return s, nil
}

// draws returns the histogram range to bucket over and a function
// yielding one bucketable value per call.
func draws(src randz.Source) (lo, hi uint64, draw func() uint64, err error) {
	if *fullWidth {
		switch *valueBits {
		case 8:
			return 0, 1 << 8, func() uint64 { return uint64(randz.Uint[uint8](src)) }, nil
		case 16:
			return 0, 1 << 16, func() uint64 { return uint64(randz.Uint[uint16](src)) }, nil
		case 32:
			return 0, 1 << 32, func() uint64 { return uint64(randz.Uint[uint32](src)) }, nil
		case 64:
			// [0, 2^64) exceeds the histogram's domain; bucket 64-bit
			// draws by their top byte instead.
			return 0, 1 << 8, func() uint64 { return randz.Uint[uint64](src) >> 56 }, nil
		}
		return 0, 0, nil, fmt.Errorf("-full supports 8, 16, 32 or 64 bits")
	}
	if *valueBits == 128 {
		if *upperHi == 0 {
			return 0, 0, nil, fmt.Errorf("-bits=128 needs -upper128hi")
		}
		// Draws are uniform in [0, upper128hi * 2^64), so their high
		// words are uniform in [0, upper128hi): bucket those.
		up := u128.Uint{Hi: *upperHi}
		return 0, *upperHi, func() uint64 { return u128.Range(src, u128.Uint{}, up).Hi }, nil
	}
	if *lower >= *upper {
		return 0, 0, nil, fmt.Errorf("empty range [%d, %d)", *lower, *upper)
	}
	switch *valueBits {
	case 8, 16, 32:
		if max := uint64(1)<<*valueBits - 1; *upper > max {
			return 0, 0, nil, fmt.Errorf("-upper %d does not fit %d bits (max %d)", *upper, *valueBits, max)
		}
	}
	switch *valueBits {
	case 8:
		return *lower, *upper, func() uint64 { return uint64(randz.UintRange[uint8](src, uint8(*lower), uint8(*upper))) }, nil
	case 16:
		return *lower, *upper, func() uint64 { return uint64(randz.UintRange[uint16](src, uint16(*lower), uint16(*upper))) }, nil
	case 32:
		return *lower, *upper, func() uint64 { return uint64(randz.UintRange[uint32](src, uint32(*lower), uint32(*upper))) }, nil
	case 64:
		return *lower, *upper, func() uint64 { return randz.UintRange[uint64](src, *lower, *upper) }, nil
	}
	return 0, 0, nil, fmt.Errorf("unsupported -bits %d", *valueBits)
}

func main() {
	flag.Parse()
	if len(flag.Args()) > 0 {
		log.Fatalf("unexpected args: %v", flag.Args())
	}
	if *numBuckets < 2 {
		log.Fatal("need at least 2 buckets")
	}
	switch *alpha {
	case 0.10, 0.05, 0.01, 0.001:
	default:
		log.Fatalf("unsupported -alpha %v (use 0.10, 0.05, 0.01 or 0.001)", *alpha)
	}
	src, err := newSource()
	if err != nil {
		log.Fatal(err)
	}
	cs := randz.NewCountingSource(src)
	lo, hi, draw, err := draws(cs)
	if err != nil {
		log.Fatal(err)
	}
	h, err := randz.NewHistogram(lo, hi, *numBuckets)
	if err != nil {
		log.Fatal(err)
	}
	// Optional profiling
	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	for i := 0; i < *numDraws; i++ {
		h.Add(draw())
	}

	fmt.Printf("%d draws from %s, %d bits, bucketed over [%d, %d):\n", *numDraws, *sourceName, *valueBits, lo, hi)
	per := (hi - lo) / uint64(*numBuckets)
	for i, c := range h.Counts() {
		fmt.Printf("%12d ... %12d: %8d\n", lo+uint64(i)*per, lo+uint64(i+1)*per, c)
	}
	if h.Outside() > 0 {
		fmt.Printf("outside range: %d\n", h.Outside())
	}
	chi := h.ChiSquared()
	crit := randz.ChiSquaredCritical(*numBuckets-1, *alpha)
	verdict := "ok"
	if chi > crit {
		verdict = "SUSPECT"
	}
	fmt.Printf("chi-squared: %.2f, critical value at alpha %v: %.2f (%s)\n", chi, *alpha, crit, verdict)
	fmt.Printf("raw pulls: %d (%.4f per draw)\n", cs.Pulls(), float64(cs.Pulls())/float64(*numDraws))
}
