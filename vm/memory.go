package vm

// memWrite stores v at addr unconditionally. Writes to the MMIO registers
// carry no special semantics (spec §3); they are plain memory cells from the
// write side.
func (m *Machine) memWrite(addr, v uint16) {
	m.Memory[addr] = v
}

// memRead returns the stored word, intercepting reads of KBSR to implement
// keyboard MMIO (spec §4.3): if a key is available, it is consumed, stashed
// at KBDR, and KBSR reflects ready (bit 15 set); otherwise KBSR reads as 0.
func (m *Machine) memRead(addr uint16) uint16 {
	if addr == KBSR {
		if m.In.ProbeReady() {
			b, err := m.In.ReadByte()
			if err == nil {
				m.Memory[KBDR] = uint16(b)
				m.Memory[KBSR] = 0x8000
			} else {
				m.Memory[KBSR] = 0
			}
		} else {
			m.Memory[KBSR] = 0
		}
	}
	return m.Memory[addr]
}
