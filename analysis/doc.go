// SPDX-License-Identifier: EPL-2.0

// Package analysis implements energy-based onset detection and tempo
// estimation over normalized PCM samples.
//
// The pipeline has three stages, each a pure function:
//
//	energies, _ := analysis.Energies(samples, windowSize)
//	peaks := analysis.Peaks(energies, threshold)
//	bpm, _ := analysis.Tempo(peaks, windowSize, sampleRate)
//
// Energies computes the sum of squared samples per fixed-size window and
// normalizes the result to [0, 1]. Peaks finds strict local maxima above a
// threshold, which can be a fixed constant or derived from the distribution
// with DynamicThreshold (mean + k*stddev). Tempo averages the time gaps
// between consecutive peaks and converts the mean gap to BPM.
//
// All stages return errors for degenerate input (silent signal, fewer than
// two peaks) rather than letting NaN or infinity propagate into the result.
package analysis
