// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds AIFF fixtures and synthetic PCM signals for tests.
package audiotest

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// Fixture describes an AIFF container to assemble byte by byte. Samples are
// interleaved integer PCM values at BitDepth resolution, so a stereo fixture
// carries len(Samples)/2 frames.
type Fixture struct {
	Name       string // optional NAME chunk, omitted when empty
	Channels   int
	SampleRate int
	BitDepth   int
	Samples    []int
	// Offset and BlockSize fill the SSND header fields; Offset pad bytes are
	// inserted before the PCM data to match.
	Offset    uint32
	BlockSize uint32
}

// Bytes assembles the fixture into a complete AIFF byte stream:
// FORM/AIFF, optional NAME, COMM (18 bytes) and SSND with the PCM payload.
func (f Fixture) Bytes() []byte {
	bps := f.BitDepth / 8
	if bps < 1 {
		bps = 1
	}

	pcm := make([]byte, 0, len(f.Samples)*bps)
	for _, s := range f.Samples {
		for shift := (bps - 1) * 8; shift >= 0; shift -= 8 {
			pcm = append(pcm, byte(s>>shift))
		}
	}

	var body []byte

	body = append(body, "AIFF"...)

	if f.Name != "" {
		body = append(body, "NAME"...)
		body = be32(body, uint32(len(f.Name)))
		body = append(body, f.Name...)
	}

	body = append(body, "COMM"...)
	body = be32(body, 18)
	body = be16(body, uint16(int16(f.Channels)))

	frames := 0
	if f.Channels > 0 {
		frames = len(f.Samples) / f.Channels
	}
	body = be32(body, uint32(frames))
	body = be16(body, uint16(f.BitDepth))

	ext := goaudio.IntToIEEEFloat(f.SampleRate)
	body = append(body, ext[:]...)

	body = append(body, "SSND"...)
	body = be32(body, uint32(8+int(f.Offset)+len(pcm)))
	body = be32(body, f.Offset)
	body = be32(body, f.BlockSize)
	body = append(body, make([]byte, f.Offset)...)
	body = append(body, pcm...)

	out := make([]byte, 0, len(body)+8)
	out = append(out, "FORM"...)
	out = be32(out, uint32(len(body)))
	out = append(out, body...)

	return out
}

func be16(dst []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(dst, v)
}

func be32(dst []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, v)
}

// BurstPCM generates a pulse-train signal: silence with a burst of amplitude
// every period samples, each burst burstLen samples long. The first burst
// starts at sample period, so the opening window of any analysis stays quiet.
func BurstPCM(totalSamples, period, burstLen, amplitude int) []int {
	samples := make([]int, totalSamples)

	for start := period; start+burstLen <= totalSamples; start += period {
		for i := 0; i < burstLen; i++ {
			samples[start+i] = amplitude
		}
	}

	return samples
}

// SinePCM generates a sine wave at freq Hz quantized to the given amplitude.
func SinePCM(sampleRate, totalSamples int, freq float64, amplitude int) []int {
	samples := make([]int, totalSamples)

	for i := range samples {
		t := float64(i) / float64(sampleRate)
		samples[i] = int(float64(amplitude) * math.Sin(2*math.Pi*freq*t))
	}

	return samples
}

// Interleave merges per-channel sample slices into L,R,L,R order.
func Interleave(left, right []int) []int {
	out := make([]int, 0, len(left)+len(right))
	for i := range left {
		out = append(out, left[i], right[i])
	}

	return out
}

// EncodeWithGoAudio produces reference AIFF bytes via the upstream go-audio
// encoder, for interop tests against the hand-rolled parser.
func EncodeWithGoAudio(samples []int, channels, sampleRate, bitDepth int) ([]byte, error) {
	var ws writeSeeker

	enc := goaiff.NewEncoder(&ws, sampleRate, bitDepth, channels)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
		Data:           samples,
	}

	if err := enc.Write(buf); err != nil {
		return nil, fmt.Errorf("writing aiff data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("finalizing aiff: %w", err)
	}

	return ws.data, nil
}

// writeSeeker implements io.WriteSeeker over an in-memory buffer so encoders
// can seek back and patch chunk sizes.
type writeSeeker struct {
	data   []byte
	offset int64
}

func (ws *writeSeeker) Write(p []byte) (int, error) {
	if need := ws.offset + int64(len(p)); need > int64(len(ws.data)) {
		grown := make([]byte, need)
		copy(grown, ws.data)
		ws.data = grown
	}

	copy(ws.data[ws.offset:], p)
	ws.offset += int64(len(p))

	return len(p), nil
}

func (ws *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = ws.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(ws.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	ws.offset = newOffset

	return newOffset, nil
}
