package vm

// Trap vectors dispatched by the low 8 bits of a TRAP instruction.
const (
	trapGETC  uint16 = 0x20 // read one byte, no echo, into R0
	trapOUT   uint16 = 0x21 // write low byte of R0
	trapPUTS  uint16 = 0x22 // write a zero-terminated string of words starting at R0
	trapIN    uint16 = 0x23 // prompt, read one byte with echo, into R0
	trapPUTSP uint16 = 0x24 // write a zero-terminated string of packed byte-pairs
	trapHALT  uint16 = 0x25 // halt the machine
)

// trap dispatches on the 8-bit trap vector (spec §4.5). R7 already holds the
// return address; that's set by the caller before trap is invoked.
func (m *Machine) trap(vector uint16) {
	switch vector {
	case trapGETC:
		b, _ := m.In.ReadByte()
		m.Reg[R0] = uint16(b)
		m.updateFlags(R0)

	case trapOUT:
		m.Out.WriteByte(byte(m.Reg[R0]))
		m.Out.Flush()

	case trapPUTS:
		addr := m.Reg[R0]
		for c := m.memRead(addr); c != 0; c = m.memRead(addr) {
			m.Out.WriteByte(byte(c))
			addr++
		}
		m.Out.Flush()

	case trapIN:
		m.Out.WriteString("Enter a character: ")
		b, _ := m.In.ReadByte()
		m.Out.WriteByte(b)
		m.Out.Flush()
		m.Reg[R0] = uint16(b)
		m.updateFlags(R0)

	case trapPUTSP:
		addr := m.Reg[R0]
		for w := m.memRead(addr); w != 0; w = m.memRead(addr) {
			m.Out.WriteByte(byte(w))
			if hi := byte(w >> 8); hi != 0 {
				m.Out.WriteByte(hi)
			}
			addr++
		}
		m.Out.Flush()

	case trapHALT:
		m.Out.WriteString("HALT\n")
		m.Out.Flush()
		m.Running = false

	default:
		m.Log.Printf("0x%04x: unknown trap vector 0x%02x, halting", m.PC, vector)
		m.Running = false
	}
}
