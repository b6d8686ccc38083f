// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"testing"
)

func TestSentinelErrors_Distinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrMalformedContainer,
		ErrUnsupportedFormat,
		ErrMissingChunk,
		ErrUnexpectedChunkSize,
		ErrUnsupportedChannelLayout,
		ErrUnsupportedBitDepth,
		ErrInvalidSampleRate,
		ErrChannelLengthMismatch,
	}

	for i, a := range sentinels {
		if a == nil {
			t.Fatalf("sentinel %d is nil", i)
		}

		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %d matches sentinel %d, want distinct", i, j)
			}
		}
	}
}

func TestErrMissingChunk_WrappedWithID(t *testing.T) {
	t.Parallel()

	err := decodeErrFor(t)

	if !errors.Is(err, ErrMissingChunk) {
		t.Fatalf("error = %v, want ErrMissingChunk", err)
	}

	want := "missing chunk: COMM"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

// decodeErrFor produces a missing-COMM parse failure.
func decodeErrFor(t *testing.T) error {
	t.Helper()

	data := []byte("FORM\x00\x00\x00\x08AIFFJUNK")

	_, err := decode(data)
	if err == nil {
		t.Fatal("decode() error = nil, want missing chunk error")
	}

	return err
}
