package device

import "bufio"

// Display is a byte-at-a-time output sink backed by a bufio.Writer,
// typically stdout. Every trap routine that produces visible output flushes
// through it explicitly (spec §4.5), so nothing waits on Go's buffered I/O.
type Display struct {
	w *bufio.Writer
}

// NewDisplay wraps w.
func NewDisplay(w *bufio.Writer) *Display {
	return &Display{w: w}
}

func (d *Display) WriteByte(b byte) error {
	return d.w.WriteByte(b)
}

func (d *Display) WriteString(s string) error {
	_, err := d.w.WriteString(s)
	return err
}

func (d *Display) Flush() error {
	return d.w.Flush()
}
