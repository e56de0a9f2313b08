// Package reson implements a two-pole resonator that passes a band around a
// centre frequency and attenuates frequencies below and above it.
//
// The pole radius follows the bandwidth and the pole angle follows the centre
// frequency, corrected so the peak lands on the requested frequency:
//
//	r     = 1 - pi*bw/fs
//	theta = acos(2r/(1+r^2) * cos(2*pi*f/fs))
//	g     = (1-r^2) * sin(theta)
//	y[n]  = g*x[n] + 2r*cos(theta)*y[n-1] - r^2*y[n-2]
//
// The acos argument is clamped to [-1, 1], so out-of-range parameters never
// produce NaN coefficients. Bandwidth is otherwise not limited. Above
// 2*fs/pi the radius drops below -1 and the recursion diverges.
//
// [Coeffs.Biquad] maps the coefficients onto a [biquad.Section] for
// analytic frequency response. Filter keeps the recursion in the order
// written above, so its output is bit-exact to the formula.
package reson
