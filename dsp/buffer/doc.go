// Package buffer holds multichannel audio as one float64 slice per channel,
// the layout kernels process, and converts it to and from interleaved
// integer PCM.
package buffer
