package vm

import (
	"fmt"

	"github.com/lc3-tools/lc3vm/internal/device"
)

// fakeInput is a scripted device.Input: bytes are delivered in order, each
// ProbeReady reporting true exactly when bytes remain.
type fakeInput struct {
	bytes []byte
	pos   int
}

func (f *fakeInput) ProbeReady() bool {
	return f.pos < len(f.bytes)
}

func (f *fakeInput) ReadByte() (byte, error) {
	b := f.bytes[f.pos]
	f.pos++
	return b, nil
}

// fakeOutput is a device.Output that records every write and flush.
type fakeOutput struct {
	buf      []byte
	flushed  bool
	flushLog []string
}

func (f *fakeOutput) WriteByte(b byte) error {
	f.buf = append(f.buf, b)
	return nil
}

func (f *fakeOutput) WriteString(s string) error {
	f.buf = append(f.buf, s...)
	return nil
}

func (f *fakeOutput) Flush() error {
	f.flushed = true
	f.flushLog = append(f.flushLog, string(f.buf))
	return nil
}

// recordingLogger captures Printf calls instead of writing anywhere.
type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Printf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func newTestMachine(in []byte) (*Machine, *fakeOutput) {
	out := &fakeOutput{}
	var input device.Input = &fakeInput{bytes: in}
	m := New(input, out)
	return m, out
}
