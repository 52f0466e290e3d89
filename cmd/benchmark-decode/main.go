// Command benchmark-decode times decoding a simulated packet-loss sketch
// against two strawman baselines and the power-sum quACK itself, across a
// configurable number of trials. CLI parsing lives here, outside the core
// field/poly/quack/wire packages.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/thearossman/quack/bench"
	"github.com/thearossman/quack/field"
)

func main() {
	var (
		variantName = flag.String("variant", "power-sum", "quack variant: strawman1a, strawman1b, strawman2, power-sum")
		numTrials   = flag.Int("trials", 10, "number of trials")
		numPackets  = flag.Int("n", 1000, "number of sent packets")
		numDrop     = flag.Int("dropped", 20, "number of dropped packets")
		threshold   = flag.Int("t", 20, "threshold number of dropped packets")
		numBitsID   = flag.Int("bits", 32, "number of identifier bits (16, 32, or 64)")
		precompute  = flag.Bool("precompute", false, "enable the precomputed power-table accelerator (w=16 only)")
		montgomery  = flag.Bool("montgomery", false, "enable the Montgomery accelerator (w=64 only)")
		factor      = flag.Bool("factor", false, "decode by factorization instead of the identifier log (w=32 only)")
		seed        = flag.Int64("seed", time.Now().UnixNano(), "PRNG seed")
	)
	flag.Parse()

	variant, err := parseVariant(*variantName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if countSet(*precompute, *montgomery, *factor) > 1 {
		fmt.Fprintln(os.Stderr, "bench: -precompute, -montgomery, and -factor are mutually exclusive")
		os.Exit(2)
	}

	params := bench.Params{
		Threshold:  *threshold,
		NumBitsID:  *numBitsID,
		Precompute: *precompute,
		Montgomery: *montgomery,
		Factor:     *factor,
	}

	if *montgomery || *precompute {
		log.Printf("fast widening multiply available: %v", field.FastWideningMultiplyAvailable())
	}

	rng := rand.New(rand.NewSource(*seed))
	summary, err := bench.RunBenchmark(rng, variant, *numTrials, *numPackets, *numDrop, params)
	if err != nil {
		log.Fatalf("benchmark failed: %v", err)
	}
	bench.LogSummary(summary)
}

func parseVariant(name string) (bench.Variant, error) {
	switch name {
	case "strawman1a":
		return bench.Strawman1a, nil
	case "strawman1b":
		return bench.Strawman1b, nil
	case "strawman2":
		return bench.Strawman2, nil
	case "power-sum", "powersum":
		return bench.PowerSum, nil
	default:
		return 0, fmt.Errorf("bench: unknown variant %q", name)
	}
}

func countSet(bs ...bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
