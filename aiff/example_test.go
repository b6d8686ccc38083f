// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/aiffbeat/aiff"
	"github.com/ik5/aiffbeat/internal/audiotest"
)

// Example_decode shows decoding an AIFF stream and inspecting its header.
func Example_decode() {
	fixture := audiotest.Fixture{
		Name:       "demo",
		Channels:   1,
		SampleRate: 8000,
		BitDepth:   16,
		Samples:    []int{16384, -16384, 8192, -8192},
	}

	track, err := aiff.Decode(bytes.NewReader(fixture.Bytes()))
	if err != nil {
		fmt.Println("decode error:", err)
		return
	}

	fmt.Printf("name=%s channels=%d rate=%d Hz samples=%d\n",
		track.Name, track.NumChannels, track.SampleRate, len(track.Left))
	// Output: name=demo channels=1 rate=8000 Hz samples=4
}

// ExampleDecodeExtended decodes the 80-bit sample rate field directly.
func ExampleDecodeExtended() {
	rate := aiff.DecodeExtended([10]byte{0x40, 0x0E, 0xAC, 0x44, 0, 0, 0, 0, 0, 0})

	fmt.Printf("%.0f Hz\n", rate)
	// Output: 44100 Hz
}
