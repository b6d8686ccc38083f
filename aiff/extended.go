// SPDX-License-Identifier: EPL-2.0

package aiff

import "math"

// DecodeExtended converts a 10-byte IEEE-854 80-bit extended precision float
// into a float64. AIFF stores the sample rate in this format, which Go does
// not support natively.
//
// Layout: bit 79 is the sign, bits 78-64 are a 15-bit exponent biased by
// 16383, and bits 63-0 are the mantissa with an explicit leading integer bit
// (unlike float64, which normalizes with an implicit bit).
//
// There is no error path: an all-zero buffer decodes to 0.0, so callers must
// validate that the resulting sample rate is sane.
func DecodeExtended(b [10]byte) float64 {
	sign := 1.0
	if b[0]&0x80 != 0 {
		sign = -1.0
	}

	exponent := int(uint16(b[0]&0x7F)<<8|uint16(b[1])) - 16383
	mantissa := uint64(b[2])<<56 | uint64(b[3])<<48 |
		uint64(b[4])<<40 | uint64(b[5])<<32 |
		uint64(b[6])<<24 | uint64(b[7])<<16 |
		uint64(b[8])<<8 | uint64(b[9])

	return sign * math.Ldexp(float64(mantissa), exponent-63)
}
