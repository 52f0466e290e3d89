package bench

import (
	"fmt"
	"log"
	"time"

	"github.com/montanaflynn/stats"
)

// Summary is the trial-timing summary for a benchmark run: mean, standard
// deviation, and median across trials, plus a per-packet throughput
// figure, computed with montanaflynn/stats rather than by hand.
type Summary struct {
	NumTrials   int
	Mean        time.Duration
	StdDev      time.Duration
	Median      time.Duration
	PerPacket   time.Duration
	PacketsPerS float64
}

// Summarize computes a Summary over a set of per-trial durations, including
// a per-packet breakdown.
func Summarize(durations []time.Duration, numPackets int) (Summary, error) {
	if len(durations) == 0 {
		return Summary{}, nil
	}
	ns := make([]float64, len(durations))
	for i, d := range durations {
		ns[i] = float64(d.Nanoseconds())
	}

	mean, err := stats.Mean(ns)
	if err != nil {
		return Summary{}, fmt.Errorf("bench: mean: %w", err)
	}
	stddev, err := stats.StandardDeviation(ns)
	if err != nil {
		return Summary{}, fmt.Errorf("bench: stddev: %w", err)
	}
	median, err := stats.Median(ns)
	if err != nil {
		return Summary{}, fmt.Errorf("bench: median: %w", err)
	}

	perPacketNs := mean / float64(numPackets)
	var packetsPerS float64
	if perPacketNs > 0 {
		packetsPerS = 1e9 / perPacketNs
	}

	return Summary{
		NumTrials:   len(durations),
		Mean:        time.Duration(mean),
		StdDev:      time.Duration(stddev),
		Median:      time.Duration(median),
		PerPacket:   time.Duration(perPacketNs),
		PacketsPerS: packetsPerS,
	}, nil
}

// LogSummary prints s via the standard log package rather than a
// structured logger: this harness is the one package in the repository
// allowed to log at all.
func LogSummary(s Summary) {
	log.Printf("SUMMARY: num_trials=%d mean=%s stddev=%s median=%s", s.NumTrials, s.Mean, s.StdDev, s.Median)
	log.Printf("SUMMARY (per-packet): %s/packet = %.0f packets/s", s.PerPacket, s.PacketsPerS)
}
