// SPDX-License-Identifier: EPL-2.0

package analysis

import "errors"

var (
	// ErrInvalidWindowSize indicates a window size below one sample.
	ErrInvalidWindowSize = errors.New("window size must be at least one sample")

	// ErrDegenerateSignal indicates an empty or all-zero signal whose energies
	// cannot be normalized.
	ErrDegenerateSignal = errors.New("empty or silent signal: cannot normalize energies")

	// ErrInsufficientPeaks indicates fewer than two detected peaks, leaving no
	// gaps to average into a tempo.
	ErrInsufficientPeaks = errors.New("not enough peaks to estimate tempo")
)
