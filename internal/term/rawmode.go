// Package term puts the controlling terminal into the unbuffered, no-echo
// mode the LC-3's character I/O needs, and restores it afterward.
package term

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"
)

// Raw holds enough state to restore the terminal to whatever mode it was in
// before Enter was called.
type Raw struct {
	fd       uintptr
	original unix.Termios
	isTTY    bool
}

// Enter puts stdin into raw mode (no canonical line buffering, no local
// echo), matching the teacher's enable_raw_mode. If stdin is not a terminal
// (piped input, a test harness, CI), it is a deliberate no-op: ioctl'ing a
// non-tty fd would fail, and there is nothing to restore later.
func Enter(f *os.File) (*Raw, error) {
	fd := f.Fd()
	r := &Raw{fd: fd}

	if !xterm.IsTerminal(int(fd)) {
		return r, nil
	}
	r.isTTY = true

	if err := termios.Tcgetattr(fd, &r.original); err != nil {
		return nil, err
	}

	raw := r.original
	raw.Lflag &^= unix.ICANON | unix.ECHO
	if err := termios.Tcsetattr(fd, termios.TCSANOW, &raw); err != nil {
		return nil, err
	}
	return r, nil
}

// Exit restores the terminal mode captured by Enter. Safe to call on a Raw
// from a non-tty stdin (it's a no-op then).
func (r *Raw) Exit() error {
	if r == nil || !r.isTTY {
		return nil
	}
	return termios.Tcsetattr(r.fd, termios.TCSANOW, &r.original)
}
