// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrNegativeDuration  = errors.New("duration must be a non-negative number")
	ErrNegativeFrequency = errors.New("frequency must be a non-negative number")
	ErrFormatMismatch    = errors.New("source format does not match sequence")
	ErrUnknownFormat     = errors.New("no decoder registered for format")
)
