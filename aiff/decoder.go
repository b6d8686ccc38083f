// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// Track is the fully decoded contents of an AIFF file: the header fields of
// the container plus the PCM payload as normalized float32 buffers in [-1, 1].
//
// A Track is built once by Decode and never mutated afterwards. For mono
// input, Right and Interleaved are copies of Left.
type Track struct {
	// FileSize is the container size in bytes, including the 8-byte FORM header.
	FileSize uint32
	// NumChannels is 1 (mono) or 2 (stereo).
	NumChannels int
	// NumSampleFrames is the frame count declared in the COMM chunk.
	NumSampleFrames uint32
	// BitDepth is the bits per sample declared in the COMM chunk.
	BitDepth uint16
	// SampleRate in Hz, truncated to an integer.
	SampleRate uint32
	// Name is the track name from the optional NAME chunk, empty when absent.
	Name string
	// Length is the track length in whole seconds.
	Length uint16
	// Offset and BlockSize are the SSND chunk header fields. Offset is the
	// number of bytes skipped before the PCM data begins.
	Offset    uint32
	BlockSize uint32

	// Left and Right hold the per-channel samples, Interleaved holds them in
	// L,R,L,R order.
	Left        []float32
	Right       []float32
	Interleaved []float32
}

// cursor is an explicit position over an in-memory byte buffer. Every read
// advances the position; a failed read reports the offset it failed at.
type cursor struct {
	data []byte
	pos  int
}

func (c *cursor) bytes(n int) ([]byte, error) {
	if c.pos+n > len(c.data) {
		return nil, fmt.Errorf("reading %d bytes at offset %d: %w", n, c.pos, io.ErrUnexpectedEOF)
	}

	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

func (c *cursor) uint16BE() (uint16, error) {
	b, err := c.bytes(2)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(b), nil
}

func (c *cursor) uint32BE() (uint32, error) {
	b, err := c.bytes(4)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(b), nil
}

func (c *cursor) rewind(n int) {
	c.pos -= n
}

func (c *cursor) skip(n int) error {
	_, err := c.bytes(n)
	return err
}

// rest returns everything from the current position to the end of the buffer.
func (c *cursor) rest() []byte {
	return c.data[c.pos:]
}

// Decode reads an entire AIFF stream into memory and parses it into a Track.
//
// The chunk walk is a linear scan over the canonical ordering of well-formed
// AIFF files: FORM/AIFF, an optional NAME chunk, COMM, then SSND with the PCM
// payload running to the end of the input. Chunks are not padded to even
// length by this parser; files relying on odd-chunk pad bytes are not
// supported.
func Decode(r io.Reader) (*Track, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	return decode(data)
}

// DecodeFile opens and decodes the AIFF file at path.
func DecodeFile(path string) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

func decode(data []byte) (*Track, error) {
	cur := &cursor{data: data}

	magic, err := cur.bytes(4)
	if err != nil {
		return nil, err
	}

	if string(magic) != "FORM" {
		return nil, ErrMalformedContainer
	}

	// The declared size excludes the 8 bytes of the FORM header itself.
	declared, err := cur.uint32BE()
	if err != nil {
		return nil, err
	}
	fileSize := declared + 8

	formType, err := cur.bytes(4)
	if err != nil {
		return nil, err
	}

	if string(formType) != "AIFF" {
		return nil, ErrUnsupportedFormat
	}

	name, err := readName(cur)
	if err != nil {
		return nil, err
	}

	id, err := cur.bytes(4)
	if err != nil {
		return nil, err
	}

	if string(id) != "COMM" {
		return nil, fmt.Errorf("%w: COMM", ErrMissingChunk)
	}

	commSize, err := cur.uint32BE()
	if err != nil {
		return nil, err
	}

	if commSize != commChunkSize {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedChunkSize, commSize)
	}

	channels, err := cur.uint16BE()
	if err != nil {
		return nil, err
	}

	frames, err := cur.uint32BE()
	if err != nil {
		return nil, err
	}

	bitDepth, err := cur.uint16BE()
	if err != nil {
		return nil, err
	}

	rateBytes, err := cur.bytes(10)
	if err != nil {
		return nil, err
	}

	var ext [10]byte
	copy(ext[:], rateBytes)

	rate := DecodeExtended(ext)
	if rate <= 0 || rate >= math.MaxUint32 {
		return nil, fmt.Errorf("%w: %g Hz", ErrInvalidSampleRate, rate)
	}

	id, err = cur.bytes(4)
	if err != nil {
		return nil, err
	}

	if string(id) != "SSND" {
		return nil, fmt.Errorf("%w: SSND", ErrMissingChunk)
	}

	// The SSND chunk size is read but not validated further; the PCM payload
	// runs to the end of the input.
	if _, err = cur.uint32BE(); err != nil {
		return nil, err
	}

	offset, err := cur.uint32BE()
	if err != nil {
		return nil, err
	}

	blockSize, err := cur.uint32BE()
	if err != nil {
		return nil, err
	}

	if err = cur.skip(int(offset)); err != nil {
		return nil, err
	}

	t := &Track{
		FileSize:        fileSize,
		NumChannels:     int(int16(channels)),
		NumSampleFrames: frames,
		BitDepth:        bitDepth,
		SampleRate:      uint32(rate),
		Name:            name,
		Offset:          offset,
		BlockSize:       blockSize,
	}
	t.Length = uint16(frames / t.SampleRate)

	if err = t.decodePCM(cur.rest()); err != nil {
		return nil, err
	}

	return t, nil
}

// commChunkSize is the fixed size of the COMM chunk payload: channel count,
// frame count, bit depth and the 10-byte extended sample rate.
const commChunkSize = 18

// readName consumes the optional NAME chunk. When the next chunk is not NAME
// the cursor is rewound so the caller sees it untouched.
func readName(cur *cursor) (string, error) {
	id, err := cur.bytes(4)
	if err != nil {
		return "", err
	}

	if string(id) != "NAME" {
		cur.rewind(4)
		return "", nil
	}

	size, err := cur.uint32BE()
	if err != nil {
		return "", err
	}

	raw, err := cur.bytes(int(size))
	if err != nil {
		return "", err
	}

	return strings.ToValidUTF8(string(raw), "\uFFFD"), nil
}

// decodePCM converts the raw big-endian PCM bytes into the normalized channel
// buffers. Samples are scaled by 2^(bitDepth-1) so full-scale input maps to
// [-1, 1].
func (t *Track) decodePCM(pcm []byte) error {
	switch t.BitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, t.BitDepth)
	}

	bps := int(t.BitDepth) / 8
	scale := float32(int64(1) << (t.BitDepth - 1))

	switch t.NumChannels {
	case 1:
		n := len(pcm) / bps
		t.Left = make([]float32, 0, n)

		for i := 0; i+bps <= len(pcm); i += bps {
			t.Left = append(t.Left, decodeSample(pcm[i:i+bps])/scale)
		}

		t.Right = append([]float32(nil), t.Left...)
		t.Interleaved = append([]float32(nil), t.Left...)
	case 2:
		frame := bps * 2
		n := len(pcm) / frame
		t.Left = make([]float32, 0, n)
		t.Right = make([]float32, 0, n)
		t.Interleaved = make([]float32, 0, 2*n)

		// A trailing partial frame is dropped.
		for i := 0; i+frame <= len(pcm); i += frame {
			left := decodeSample(pcm[i:i+bps]) / scale
			right := decodeSample(pcm[i+bps:i+frame]) / scale

			t.Left = append(t.Left, left)
			t.Right = append(t.Right, right)
			t.Interleaved = append(t.Interleaved, left, right)
		}
	default:
		return fmt.Errorf("%w: got %d", ErrUnsupportedChannelLayout, t.NumChannels)
	}

	if len(t.Left) != len(t.Right) {
		return ErrChannelLengthMismatch
	}

	return nil
}

// decodeSample sign-extends a big-endian sample of 1 to 4 bytes.
func decodeSample(b []byte) float32 {
	var v int32
	for _, c := range b {
		v = v<<8 | int32(c)
	}

	shift := 32 - 8*len(b)

	return float32(v << shift >> shift)
}
