// SPDX-License-Identifier: EPL-2.0

// Package aiffbeat decodes AIFF audio files and estimates their tempo in
// beats per minute using energy-based onset detection.
//
// The package is built from small, composable stages: the aiff subpackage
// parses the container and normalizes the PCM payload to float32 buffers,
// and the analysis subpackage turns those buffers into windowed energies,
// detected onset peaks and finally a BPM figure. The root package wires the
// stages together behind two convenience calls.
//
// # Quick Start
//
//	track, err := aiff.DecodeFile("song.aiff")
//	if err != nil {
//	    // Handle error
//	}
//
//	bpm, err := aiffbeat.EstimateBPMDynamic(track, 1024, 2)
//	if err != nil {
//	    // Handle error
//	}
//
//	fmt.Printf("%s: %.1f BPM\n", track.Name, bpm)
//
// # Threshold Strategies
//
// Two estimators share the same energy/peak pipeline and differ only in how
// the peak threshold is chosen:
//
//	// Fixed: caller supplies a constant in [0, 1]
//	bpm, err := aiffbeat.EstimateBPM(track, 1024, 0.5)
//
//	// Dynamic: threshold = mean + k*stddev of the energies
//	bpm, err := aiffbeat.EstimateBPMDynamic(track, 1024, 2)
//
// Both return analysis.ErrInsufficientPeaks when fewer than two onsets are
// found; neither ever produces NaN or infinity.
//
// # Batch Processing
//
// Several files can be analyzed concurrently. Each file's pipeline is
// independent, so failures are reported per file:
//
//	for _, res := range aiffbeat.EstimateBatch(paths, 1024, 2) {
//	    if res.Err != nil {
//	        fmt.Println(res.Path, "failed:", res.Err)
//	        continue
//	    }
//	    fmt.Printf("%s: %.1f BPM\n", res.Path, res.BPM)
//	}
//
// # Playback and Export
//
// The decoded track exposes everything an output sink needs via go-audio
// types (Track.Format, Track.Buffer), and ExportWAV converts a track to
// 16-bit PCM WAV:
//
//	f, _ := os.Create("song.wav")
//	err := aiffbeat.ExportWAV(f, track)
//
// # Limitations
//
//   - Only uncompressed AIFF is supported (no AIFC).
//   - Mono and stereo only.
//   - The whole file is decoded in memory; there is no streaming mode.
//   - Single tempo per track; no time-signature or multi-tempo detection.
package aiffbeat
