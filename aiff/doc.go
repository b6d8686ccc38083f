// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) containers into
// normalized float32 PCM buffers.
//
// Unlike streaming decoders, this package reads the whole file into memory
// and produces a single immutable Track holding the header fields together
// with the decoded samples. That trade-off keeps the parser a set of pure
// functions over a byte buffer and gives the analysis stages random access to
// the full signal.
//
// # Container Layout
//
// The parser walks the canonical chunk ordering of well-formed AIFF files:
//
//	FORM <size> AIFF
//	[NAME <size> <track name>]      optional
//	COMM <18> <channels> <frames> <bit depth> <sample rate (80-bit float)>
//	SSND <size> <offset> <block size> <PCM bytes...>
//
// The sample rate is stored as a 10-byte IEEE-854 extended precision float;
// DecodeExtended converts it to a float64.
//
// # Decoding
//
//	track, err := aiff.DecodeFile("song.aiff")
//	if err != nil {
//	    // Handle error
//	}
//
//	fmt.Println(track.Name, track.SampleRate, len(track.Left))
//
// Samples are normalized to [-1.0, 1.0] by the full-scale value of the
// declared bit depth (2^(bitDepth-1)). Mono tracks copy the single channel
// into Right and Interleaved so callers never branch on channel count.
//
// # Playback and Export
//
// Track.Format and Track.Buffer expose the decoded stream as go-audio types,
// which is all an output sink needs:
//
//	buf := track.Buffer() // *audio.Float32Buffer, interleaved
//
// # Error Handling
//
// All parse failures are terminal and reported as sentinel errors:
//   - ErrMalformedContainer: no FORM header
//   - ErrUnsupportedFormat: FORM type is not AIFF (e.g. AIFC)
//   - ErrMissingChunk: COMM or SSND absent (wrapped with the chunk ID)
//   - ErrUnexpectedChunkSize: COMM chunk size is not 18
//   - ErrUnsupportedChannelLayout: channel count outside {1, 2}
//   - ErrUnsupportedBitDepth: bit depth outside {8, 16, 24, 32}
//   - ErrInvalidSampleRate: decoded rate is zero, negative or absurd
//   - ErrChannelLengthMismatch: defensive invariant, should be unreachable
//
// Truncated input wraps io.ErrUnexpectedEOF with the offset of the failed
// read.
//
// # Limitations
//
//   - AIFC / compressed AIFF is not supported.
//   - Chunks are expected in canonical order; a generic chunk walk is not
//     performed.
//   - Odd-length chunks are not padded to even boundaries, so a file with an
//     odd-sized NAME chunk followed by a pad byte will fail on the COMM scan.
package aiff
