// SPDX-License-Identifier: EPL-2.0

package aiffbeat

import (
	"github.com/ik5/aiffbeat/aiff"
	"github.com/ik5/aiffbeat/analysis"
)

// EstimateBPM estimates the tempo of a decoded track using a fixed peak
// threshold in [0, 1].
//
// The pipeline:
//  1. Pick the reference channel (stereo is downmixed by averaging).
//  2. Compute normalized per-window energies.
//  3. Detect strict local maxima above threshold.
//  4. Convert the mean gap between peaks into BPM.
//
// windowSize is the analysis window in samples; for a 44.1kHz track, 1024
// samples is roughly 23ms. Returns analysis.ErrInsufficientPeaks when fewer
// than two peaks clear the threshold.
func EstimateBPM(t *aiff.Track, windowSize int, threshold float32) (float32, error) {
	energies, err := analysis.Energies(referenceChannel(t), windowSize)
	if err != nil {
		return 0, err
	}

	peaks := analysis.Peaks(energies, threshold)

	return analysis.Tempo(peaks, windowSize, t.SampleRate)
}

// EstimateBPMDynamic estimates the tempo with a threshold derived from the
// energy distribution itself: mean + k*stddev. This adapts to the overall
// loudness of the track, so quiet recordings do not need a hand-tuned
// threshold. Typical k values lie between 1 and 3.
func EstimateBPMDynamic(t *aiff.Track, windowSize int, k float32) (float32, error) {
	energies, err := analysis.Energies(referenceChannel(t), windowSize)
	if err != nil {
		return 0, err
	}

	threshold := analysis.DynamicThreshold(energies, k)
	peaks := analysis.Peaks(energies, threshold)

	return analysis.Tempo(peaks, windowSize, t.SampleRate)
}

// referenceChannel picks the buffer the onset analysis runs on. Stereo tracks
// are downmixed by averaging left and right per sample, which avoids the
// phase-cancellation artifacts of analyzing one raw channel.
func referenceChannel(t *aiff.Track) []float32 {
	if t.NumChannels == 1 {
		return t.Left
	}

	mixed := make([]float32, len(t.Left))
	for i := range mixed {
		mixed[i] = (t.Left[i] + t.Right[i]) * 0.5
	}

	return mixed
}
