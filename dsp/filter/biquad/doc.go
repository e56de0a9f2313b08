// Package biquad provides the second-order section runtime used as the
// closed-form model of the recursive kernels.
//
// A [Section] runs Direct Form II Transposed with a0 normalised to 1:
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2)
//
// The one-pole and resonator kernels map onto a Section exactly in theory.
// DF-II-T orders the additions differently from their direct recursions, so
// sample outputs agree to rounding only. [Coefficients.MagnitudeDB] gives the
// analytic response that measured impulse responses are checked against.
package biquad
