// Package comb implements an integer-delay feedback comb filter.
//
// The filter produces peaks at multiples of sampleRate/delay:
//
//	g    = sharpness^delay
//	y[n] = (1-g)*x[n] + g*y[n-delay]
//
// Delay is truncated (not rounded) to an integer in [1, 100] and sharpness
// is clamped to [0.5, 1]. Both are read once per block.
package comb
