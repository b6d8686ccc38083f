// SPDX-License-Identifier: EPL-2.0

package analysis

import "fmt"

// Tempo converts detected peak positions into a beats-per-minute estimate.
// Each gap between consecutive peaks spans
//
//	(peaks[i] - peaks[i-1]) * windowSize / sampleRate
//
// seconds; the estimate is 60 divided by the mean gap. Fewer than two peaks
// leave no gaps to average and return ErrInsufficientPeaks, never NaN or
// infinity.
func Tempo(peaks []int, windowSize int, sampleRate uint32) (float32, error) {
	if windowSize < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidWindowSize, windowSize)
	}

	if len(peaks) < 2 {
		return 0, fmt.Errorf("%w: detected %d, need at least 2", ErrInsufficientPeaks, len(peaks))
	}

	var sum float32
	for i := 1; i < len(peaks); i++ {
		sum += float32(peaks[i]-peaks[i-1]) * float32(windowSize) / float32(sampleRate)
	}

	meanGap := sum / float32(len(peaks)-1)

	return 60.0 / meanGap, nil
}
