// SPDX-License-Identifier: EPL-2.0

package utils

// PCMScale returns the magnitude of full scale for signed PCM of bitDepth bits.
// Unknown depths fall back to 16-bit.
func PCMScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// FloatToPCM clamps x to [-1, 1] and scales it to a signed integer of bitDepth bits.
// Positive full scale maps to 2^(bitDepth-1)-1 so it never overflows.
func FloatToPCM(x float32, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int(x * (PCMScale(bitDepth) - 1))
}

// PCMToFloat normalizes a signed PCM value of bitDepth bits to [-1, 1).
func PCMToFloat(v int, bitDepth int) float32 {
	return float32(v) / PCMScale(bitDepth)
}

// Float32ToInt16 is FloatToPCM for 16-bit output.
func Float32ToInt16(x float32) int16 {
	return int16(FloatToPCM(x, 16))
}
