// SPDX-License-Identifier: EPL-2.0

package aiffbeat

import (
	"sync"

	"github.com/ik5/aiffbeat/aiff"
)

// BatchResult is the outcome of one file's decode-and-analyze pipeline.
// When Err is set the remaining fields (beyond Path) are zero.
type BatchResult struct {
	Path  string
	Track *aiff.Track
	BPM   float32
	Err   error
}

// EstimateBatch decodes the given AIFF files and estimates each one's tempo
// with the dynamic threshold. Every file runs its own independent pipeline on
// a separate goroutine; there is no shared state between files, so one
// malformed file never affects the others. Results are returned in input
// order.
func EstimateBatch(paths []string, windowSize int, k float32) []BatchResult {
	results := make([]BatchResult, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		i, path := i, path
		wg.Add(1)

		go func() {
			defer wg.Done()

			res := BatchResult{Path: path}

			res.Track, res.Err = aiff.DecodeFile(path)
			if res.Err == nil {
				res.BPM, res.Err = EstimateBPMDynamic(res.Track, windowSize, k)
			}

			if res.Err != nil {
				res.Track = nil
			}

			results[i] = res
		}()
	}
	wg.Wait()

	return results
}
