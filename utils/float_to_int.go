// SPDX-License-Identifier: EPL-2.0

// Package utils holds small numeric helpers shared across the module.
package utils

// Float32ToInt16 converts a normalized sample in [-1, 1] to 16-bit PCM,
// clamping out-of-range input. Used when exporting decoded tracks to WAV.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}
