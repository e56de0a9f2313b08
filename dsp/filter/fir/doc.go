// Package fir provides a one-term FIR filter: the input mixed with a single
// delayed copy of itself.
//
//	y[n] = (1 - w/2)*x[n] + (w/2)*x[n-shift]
//	shift = floor(sampleRate / (2*freq))
//
// The delayed copy cancels the direct signal at odd multiples of freq,
// so the response has dips at freq, 3*freq, 5*freq and so on.
//
// The history length is fixed when the filter is built, from the sample rate
// alone, so that any frequency >= [MinFreq] fits. A frequency below MinFreq
// yields a shift that wraps around the history and aliases. That is
// intentional and preserved. Non-positive frequencies are treated as MinFreq.
//
// Dry/wet mixing runs block-wise on SIMD kernels from algo-vecmath.
package fir
