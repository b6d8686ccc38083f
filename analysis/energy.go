// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"math"
)

// Energies partitions samples into non-overlapping windows of windowSize
// samples (the final window may be shorter) and computes each window's energy,
// the sum of its squared samples. The energies are normalized by the maximum
// so the result lies in [0, 1] with at least one window at exactly 1.0.
//
// An empty or all-zero signal has no meaningful maximum to normalize by and
// returns ErrDegenerateSignal instead of propagating NaNs.
func Energies(samples []float32, windowSize int) ([]float32, error) {
	if windowSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWindowSize, windowSize)
	}

	if len(samples) == 0 {
		return nil, ErrDegenerateSignal
	}

	energies := make([]float32, 0, (len(samples)+windowSize-1)/windowSize)

	for start := 0; start < len(samples); start += windowSize {
		end := min(start+windowSize, len(samples))

		var sum float32
		for _, s := range samples[start:end] {
			sum += s * s
		}

		energies = append(energies, sum)
	}

	var maxEnergy float32
	for _, e := range energies {
		if e > maxEnergy {
			maxEnergy = e
		}
	}

	if maxEnergy <= 0 || math.IsNaN(float64(maxEnergy)) {
		return nil, ErrDegenerateSignal
	}

	for i := range energies {
		energies[i] /= maxEnergy
	}

	return energies, nil
}
