// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrMalformedContainer indicates the input does not start with a FORM header.
	ErrMalformedContainer = errors.New("malformed container: missing FORM header")

	// ErrUnsupportedFormat indicates the FORM type is not AIFF (e.g. AIFC).
	ErrUnsupportedFormat = errors.New("unsupported form type: not AIFF")

	// ErrMissingChunk indicates an expected chunk (COMM or SSND) was not found.
	// The error is wrapped with the chunk ID that was expected.
	ErrMissingChunk = errors.New("missing chunk")

	// ErrUnexpectedChunkSize indicates the COMM chunk does not declare its
	// fixed 18-byte size.
	ErrUnexpectedChunkSize = errors.New("unexpected COMM chunk size")

	// ErrUnsupportedChannelLayout indicates a channel count other than mono or stereo.
	ErrUnsupportedChannelLayout = errors.New("must have either 1 or 2 audio channels")

	// ErrUnsupportedBitDepth indicates a bit depth the byte-level PCM decode
	// cannot handle.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

	// ErrInvalidSampleRate indicates the COMM sample rate decoded to a value
	// that cannot drive the analysis (zero, negative or absurdly large).
	ErrInvalidSampleRate = errors.New("invalid sample rate")

	// ErrChannelLengthMismatch indicates the decoded channel buffers have
	// unequal lengths. This should be unreachable.
	ErrChannelLengthMismatch = errors.New("left and right audio channels have unequal length")
)
