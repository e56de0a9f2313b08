// Package delay provides the circular history buffer shared by the
// delay-based filter kernels.
package delay

import "fmt"

// Line is a fixed-length circular history addressed relative to a cursor.
//
// Kernels read the slot under the cursor and schedule future values by
// writing ahead of it, then advance the cursor once per frame:
//
//	y := line.Current()
//	line.WriteAhead(d, x)
//	line.Advance()
type Line struct {
	buffer []float64
	pos    int
}

// New returns a zeroed line of fixed size.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}
	return &Line{buffer: make([]float64, size)}, nil
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Pos returns the cursor position in [0, Len()).
func (d *Line) Pos() int {
	return d.pos
}

// Current reads the slot under the cursor.
func (d *Line) Current() float64 {
	return d.buffer[d.pos]
}

// WriteAhead stores v at (pos + offset) mod Len(). Offsets >= Len() wrap.
func (d *Line) WriteAhead(offset int, v float64) {
	i := d.pos + offset
	if i >= len(d.buffer) {
		i %= len(d.buffer)
	}
	d.buffer[i] = v
}

// Advance moves the cursor forward by one slot.
func (d *Line) Advance() {
	d.pos++
	if d.pos >= len(d.buffer) {
		d.pos = 0
	}
}

// Reset clears line state.
func (d *Line) Reset() {
	for i := range d.buffer {
		d.buffer[i] = 0
	}
	d.pos = 0
}
