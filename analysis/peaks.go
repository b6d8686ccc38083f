// SPDX-License-Identifier: EPL-2.0

package analysis

import "math"

// Peaks scans normalized energies for strict local maxima above threshold and
// returns their window indices in order. A window is a peak iff its energy is
// strictly greater than the threshold and both of its neighbours. The first
// and last windows have only one neighbour each and are never peaks.
func Peaks(energies []float32, threshold float32) []int {
	var peaks []int

	for i := 1; i+1 < len(energies); i++ {
		if energies[i] > threshold && energies[i] > energies[i-1] && energies[i] > energies[i+1] {
			peaks = append(peaks, i)
		}
	}

	return peaks
}

// DynamicThreshold derives a peak threshold from the energy distribution:
// mean + k*stddev, where stddev uses the population formula. Larger k keeps
// only the strongest onsets.
func DynamicThreshold(energies []float32, k float32) float32 {
	mean, stddev := meanStdDev(energies)
	return mean + k*stddev
}

func meanStdDev(xs []float32) (mean, stddev float32) {
	if len(xs) == 0 {
		return 0, 0
	}

	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	avg := sum / float64(len(xs))

	var variance float64
	for _, x := range xs {
		d := float64(x) - avg
		variance += d * d
	}
	variance /= float64(len(xs))

	return float32(avg), float32(math.Sqrt(variance))
}
