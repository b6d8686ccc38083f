// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	goaudio "github.com/go-audio/audio"
)

// Format reports the stream layout a playback sink needs to consume the track.
func (t *Track) Format() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: t.NumChannels,
		SampleRate:  int(t.SampleRate),
	}
}

// Buffer returns the interleaved samples as a go-audio Float32Buffer. The
// sample data is copied so consumers cannot mutate the decoded track.
func (t *Track) Buffer() *goaudio.Float32Buffer {
	return &goaudio.Float32Buffer{
		Format:         t.Format(),
		Data:           append([]float32(nil), t.Interleaved...),
		SourceBitDepth: int(t.BitDepth),
	}
}
