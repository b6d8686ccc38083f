// SPDX-License-Identifier: EPL-2.0

package aiffbeat_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/ik5/aiffbeat"
	"github.com/ik5/aiffbeat/aiff"
	"github.com/ik5/aiffbeat/analysis"
	"github.com/ik5/aiffbeat/internal/audiotest"
)

const (
	beatRate   = 8000 // Hz
	beatWindow = 80   // samples per analysis window
	// One burst every 4000 samples is one onset per 0.5s: 120 BPM.
	beatPeriod = 4000
)

// beatTrack decodes a synthetic track with onsets exactly 0.5s apart.
func beatTrack(t *testing.T, channels int) *aiff.Track {
	t.Helper()

	samples := audiotest.BurstPCM(5*beatRate, beatPeriod, beatWindow, 16000)
	if channels == 2 {
		// Bursts on the left channel only; the right stays silent so the
		// estimate depends on the downmix.
		samples = audiotest.Interleave(samples, make([]int, len(samples)))
	}

	fixture := audiotest.Fixture{
		Channels:   channels,
		SampleRate: beatRate,
		BitDepth:   16,
		Samples:    samples,
	}

	track, err := aiff.Decode(bytes.NewReader(fixture.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	return track
}

func TestEstimateBPM_SyntheticBeat(t *testing.T) {
	t.Parallel()

	track := beatTrack(t, 1)

	bpm, err := aiffbeat.EstimateBPM(track, beatWindow, 0.5)
	if err != nil {
		t.Fatalf("EstimateBPM() error = %v", err)
	}

	if math.Abs(float64(bpm-120)) > 1e-3 {
		t.Errorf("EstimateBPM() = %v, want 120", bpm)
	}
}

func TestEstimateBPMDynamic_SyntheticBeat(t *testing.T) {
	t.Parallel()

	track := beatTrack(t, 1)

	bpm, err := aiffbeat.EstimateBPMDynamic(track, beatWindow, 2)
	if err != nil {
		t.Fatalf("EstimateBPMDynamic() error = %v", err)
	}

	if math.Abs(float64(bpm-120)) > 1e-3 {
		t.Errorf("EstimateBPMDynamic() = %v, want 120", bpm)
	}
}

func TestEstimateBPM_StereoDownmix(t *testing.T) {
	t.Parallel()

	track := beatTrack(t, 2)

	bpm, err := aiffbeat.EstimateBPM(track, beatWindow, 0.5)
	if err != nil {
		t.Fatalf("EstimateBPM() error = %v", err)
	}

	if math.Abs(float64(bpm-120)) > 1e-3 {
		t.Errorf("EstimateBPM() = %v, want 120 from the downmixed signal", bpm)
	}
}

func TestEstimate_InsufficientPeaks(t *testing.T) {
	t.Parallel()

	// A single onset leaves no gap to average.
	fixture := audiotest.Fixture{
		Channels:   1,
		SampleRate: beatRate,
		BitDepth:   16,
		Samples:    audiotest.BurstPCM(2*beatPeriod, beatPeriod, beatWindow, 16000),
	}

	track, err := aiff.Decode(bytes.NewReader(fixture.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	for name, estimate := range map[string]func() (float32, error){
		"fixed":   func() (float32, error) { return aiffbeat.EstimateBPM(track, beatWindow, 0.5) },
		"dynamic": func() (float32, error) { return aiffbeat.EstimateBPMDynamic(track, beatWindow, 2) },
	} {
		bpm, err := estimate()
		if !errors.Is(err, analysis.ErrInsufficientPeaks) {
			t.Errorf("%s: error = %v, want ErrInsufficientPeaks", name, err)
		}

		if math.IsNaN(float64(bpm)) || math.IsInf(float64(bpm), 0) {
			t.Errorf("%s: bpm = %v, want finite zero value", name, bpm)
		}
	}
}

func TestEstimateBPM_SilentTrack(t *testing.T) {
	t.Parallel()

	fixture := audiotest.Fixture{
		Channels:   1,
		SampleRate: beatRate,
		BitDepth:   16,
		Samples:    make([]int, beatRate),
	}

	track, err := aiff.Decode(bytes.NewReader(fixture.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	_, err = aiffbeat.EstimateBPM(track, beatWindow, 0.5)
	if !errors.Is(err, analysis.ErrDegenerateSignal) {
		t.Errorf("EstimateBPM(silence) error = %v, want ErrDegenerateSignal", err)
	}
}
