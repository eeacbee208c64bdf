package device

import (
	"bufio"
	"time"
)

// pollInterval bounds how often Keyboard checks the underlying reader for a
// byte. The reference C implementation waits up to 1000ms per probe, which
// stalls tight polling loops (spec's open question); this follows the
// teacher's own 5ms ticker instead, per the spec's recommendation of a much
// shorter probe latency.
const pollInterval = 5 * time.Millisecond

// Keyboard is a non-blocking character source backed by a bufio.Reader,
// typically stdin in raw mode. A background goroutine continuously drains
// the reader into a small buffered channel so ProbeReady never blocks.
type Keyboard struct {
	r        *bufio.Reader
	buf      chan byte
	stop     chan struct{}
	interval time.Duration
}

// NewKeyboard starts polling r in the background at the default interval
// (pollInterval). Call Close to stop.
func NewKeyboard(r *bufio.Reader) *Keyboard {
	return NewKeyboardInterval(r, pollInterval)
}

// NewKeyboardInterval is NewKeyboard with an explicit poll interval, for
// callers that need something other than the 5ms default (spec §9's
// latency recommendation).
func NewKeyboardInterval(r *bufio.Reader, interval time.Duration) *Keyboard {
	k := &Keyboard{
		r:        r,
		buf:      make(chan byte, 1),
		stop:     make(chan struct{}),
		interval: interval,
	}
	go k.poll()
	return k
}

func (k *Keyboard) poll() {
	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	for {
		select {
		case <-k.stop:
			return
		case <-ticker.C:
			if len(k.buf) > 0 {
				continue
			}
			b, err := k.r.ReadByte()
			if err != nil {
				continue
			}
			k.buf <- b
		}
	}
}

// ProbeReady reports whether a byte is already buffered. It never blocks.
func (k *Keyboard) ProbeReady() bool {
	return len(k.buf) > 0
}

// ReadByte blocks until a byte is available and returns it.
func (k *Keyboard) ReadByte() (byte, error) {
	return <-k.buf, nil
}

// Close stops the background poller.
func (k *Keyboard) Close() {
	close(k.stop)
}
