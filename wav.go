// SPDX-License-Identifier: EPL-2.0

package aiffbeat

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/aiffbeat/aiff"
	"github.com/ik5/aiffbeat/utils"
)

// ExportWAV writes a decoded track as 16-bit PCM WAV, preserving the channel
// count and sample rate. Samples outside [-1, 1] are clamped.
//
// The writer must support seeking so the encoder can patch chunk sizes on
// Close.
func ExportWAV(w io.WriteSeeker, t *aiff.Track) error {
	enc := gowav.NewEncoder(w, int(t.SampleRate), 16, t.NumChannels, 1)

	buf := &goaudio.IntBuffer{
		Format:         t.Format(),
		SourceBitDepth: 16,
		Data:           make([]int, len(t.Interleaved)),
	}
	for i, s := range t.Interleaved {
		buf.Data[i] = int(utils.Float32ToInt16(s))
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
