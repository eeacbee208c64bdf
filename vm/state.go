// Package vm implements the LC-3 architectural state and the
// fetch/decode/execute cycle: registers, memory, condition flags, and the
// sixteen-opcode instruction set.
package vm

import "github.com/lc3-tools/lc3vm/internal/device"

// General-purpose register indices.
const (
	R0 = 0b000
	R1 = 0b001
	R2 = 0b010
	R3 = 0b011
	R4 = 0b100
	R5 = 0b101
	R6 = 0b110
	R7 = 0b111
)

// Condition flags. Exactly one is set in Cond at all times.
type Flag uint16

const (
	FlagPOS Flag = 1 << 0
	FlagZRO Flag = 1 << 1
	FlagNEG Flag = 1 << 2
)

// Memory layout constants (spec §6).
const (
	TrapVectorTableStart = 0x0000
	InterruptTableStart  = 0x0100
	SystemSpaceStart     = 0x0200
	UserSpaceStart       = 0x3000
	MMIOStart            = 0xFE00

	KBSR = MMIOStart
	KBDR = MMIOStart + 0x0002
)

// MemorySize is the number of addressable 16-bit words.
const MemorySize = 1 << 16

// Logger receives diagnostics for conditions the ISA leaves undefined
// (unused opcodes, unknown trap vectors). The core never writes to stderr
// directly; it reports through this interface so it stays testable with a
// recording fake.
type Logger interface {
	Printf(format string, args ...any)
}

// nopLogger discards everything. Used when a caller doesn't supply one.
type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// Machine is one independent LC-3 virtual machine: memory, registers, and
// the injected I/O devices it talks to. Nothing about it is global —
// constructing another Machine gives you a second, fully independent one.
type Machine struct {
	Memory [MemorySize]uint16
	Reg    [8]uint16
	PC     uint16
	Cond   Flag

	Running bool

	In  device.Input
	Out device.Output
	Log Logger
}

// New constructs a Machine with PC at the conventional user-space origin
// (UserSpaceStart) and COND initialized to ZRO, wired to the given devices.
func New(in device.Input, out device.Output) *Machine {
	return NewAt(UserSpaceStart, in, out)
}

// NewAt is New with an explicit starting PC, for programs loaded at an
// origin other than the conventional UserSpaceStart.
func NewAt(pc uint16, in device.Input, out device.Output) *Machine {
	return &Machine{
		PC:   pc,
		Cond: FlagZRO,
		In:   in,
		Out:  out,
		Log:  nopLogger{},
	}
}

// SetLogger overrides the diagnostic sink used for undefined-opcode and
// unknown-trap-vector reporting. Pass nil to silence it.
func (m *Machine) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	m.Log = l
}
