package bench

import (
	"fmt"
	"math/rand"
	"time"
)

// RunTrial runs one trial of variant with the given workload and returns
// its decode duration. Strawman1b has no implementation, so this rejects it
// with an error instead of silently returning a meaningless duration.
func RunTrial(rng *rand.Rand, variant Variant, numPackets, numDrop int, params Params) (time.Duration, error) {
	switch variant {
	case Strawman1a:
		return DecodeStrawman1a(rng, numPackets, numDrop)
	case Strawman1b:
		return 0, fmt.Errorf("bench: strawman1b is not implemented")
	case Strawman2:
		return DecodeStrawman2(rng, numPackets, numDrop), nil
	case PowerSum:
		return runPowerSumTrial(rng, numPackets, numDrop, params)
	default:
		return 0, fmt.Errorf("bench: unknown variant %v", variant)
	}
}

func runPowerSumTrial(rng *rand.Rand, numPackets, numDrop int, params Params) (time.Duration, error) {
	switch {
	case params.Factor:
		switch params.NumBitsID {
		case 32:
			return DecodePowerSumFactor32(rng, params.Threshold, numPackets, numDrop)
		default:
			return 0, fmt.Errorf("bench: factorization accelerator is only wired for w=32")
		}
	case params.Precompute:
		switch params.NumBitsID {
		case 16:
			return DecodePowerSumPrecompute16(rng, params.Threshold, numPackets, numDrop)
		default:
			return 0, fmt.Errorf("bench: precompute accelerator is only wired for w=16")
		}
	case params.Montgomery:
		switch params.NumBitsID {
		case 64:
			return DecodePowerSumMontgomery64(rng, params.Threshold, numPackets, numDrop)
		default:
			return 0, fmt.Errorf("bench: montgomery accelerator is only wired for w=64")
		}
	default:
		switch params.NumBitsID {
		case 16:
			return DecodePowerSum16(rng, params.Threshold, numPackets, numDrop)
		case 32:
			return DecodePowerSum32(rng, params.Threshold, numPackets, numDrop)
		case 64:
			return DecodePowerSum64(rng, params.Threshold, numPackets, numDrop)
		default:
			return 0, fmt.Errorf("bench: unsupported identifier width %d", params.NumBitsID)
		}
	}
}

// RunBenchmark runs numTrials+1 trials, discarding the first as a warmup,
// and summarizes the kept trials.
func RunBenchmark(rng *rand.Rand, variant Variant, numTrials, numPackets, numDrop int, params Params) (Summary, error) {
	durations := make([]time.Duration, 0, numTrials)
	for i := 0; i <= numTrials; i++ {
		d, err := RunTrial(rng, variant, numPackets, numDrop, params)
		if err != nil {
			return Summary{}, err
		}
		if i > 0 {
			durations = append(durations, d)
		}
	}
	return Summarize(durations, numPackets)
}
