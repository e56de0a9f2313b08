// Package iir implements a normalised one-pole recursive filter.
//
//	y[n] = (1-|c|)*x[n] + c*y[n-1]
//
// A positive coefficient gives a low-pass response, a negative one a
// high-pass response, and zero passes the input through unchanged. The
// coefficient is clamped to [-0.99999, 0.99999] so the pole stays inside
// the unit circle.
package iir
