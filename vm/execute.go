package vm

// Opcodes, selected by the top four bits of the instruction word (spec §4.4).
const (
	opBR uint16 = iota
	opADD
	opLD
	opST
	opJSR
	opAND
	opLDR
	opSTR
	opRTI
	opNOT
	opLDI
	opSTI
	opJMP
	opRES
	opLEA
	opTRAP
)

// Step executes exactly one fetch/decode/execute cycle: it reads the word at
// PC, advances PC by one (wrapping), then dispatches on the opcode. All
// PC-relative offsets in the dispatched instruction are therefore measured
// from the *next* instruction, per spec §4.6.
func (m *Machine) Step() {
	instr := m.memRead(m.PC)
	m.PC++
	m.execute(instr)
}

// Run steps the machine until it halts.
func (m *Machine) Run() {
	m.Running = true
	for m.Running {
		m.Step()
	}
}

func (m *Machine) execute(instr uint16) {
	op := instr >> 12

	switch op {
	case opADD:
		dr := (instr >> 9) & 0b111
		sr1 := (instr >> 6) & 0b111
		if (instr>>5)&0b1 == 1 {
			imm5 := signExtend(instr&0x1F, 5)
			m.Reg[dr] = m.Reg[sr1] + imm5
		} else {
			sr2 := instr & 0b111
			m.Reg[dr] = m.Reg[sr1] + m.Reg[sr2]
		}
		m.updateFlags(dr)

	case opAND:
		dr := (instr >> 9) & 0b111
		sr1 := (instr >> 6) & 0b111
		if (instr>>5)&0b1 == 1 {
			imm5 := signExtend(instr&0x1F, 5)
			m.Reg[dr] = m.Reg[sr1] & imm5
		} else {
			sr2 := instr & 0b111
			m.Reg[dr] = m.Reg[sr1] & m.Reg[sr2]
		}
		m.updateFlags(dr)

	case opNOT:
		dr := (instr >> 9) & 0b111
		sr := (instr >> 6) & 0b111
		m.Reg[dr] = ^m.Reg[sr]
		m.updateFlags(dr)

	case opBR:
		nzp := (instr >> 9) & 0b111
		pcoffset9 := instr & 0x1FF
		if nzp&uint16(m.Cond) != 0 {
			m.PC += signExtend(pcoffset9, 9)
		}

	case opJMP:
		br := (instr >> 6) & 0b111
		m.PC = m.Reg[br]

	case opJSR:
		m.Reg[R7] = m.PC
		if (instr>>11)&0b1 == 1 {
			pcoffset11 := instr & 0x7FF
			m.PC += signExtend(pcoffset11, 11)
		} else {
			br := (instr >> 6) & 0b111
			m.PC = m.Reg[br]
		}

	case opLD:
		dr := (instr >> 9) & 0b111
		pcoffset9 := instr & 0x1FF
		m.Reg[dr] = m.memRead(m.PC + signExtend(pcoffset9, 9))
		m.updateFlags(dr)

	case opLDI:
		dr := (instr >> 9) & 0b111
		pcoffset9 := instr & 0x1FF
		m.Reg[dr] = m.memRead(m.memRead(m.PC + signExtend(pcoffset9, 9)))
		m.updateFlags(dr)

	case opLDR:
		dr := (instr >> 9) & 0b111
		br := (instr >> 6) & 0b111
		offset6 := instr & 0x3F
		m.Reg[dr] = m.memRead(m.Reg[br] + signExtend(offset6, 6))
		m.updateFlags(dr)

	case opLEA:
		dr := (instr >> 9) & 0b111
		pcoffset9 := instr & 0x1FF
		m.Reg[dr] = m.PC + signExtend(pcoffset9, 9)
		m.updateFlags(dr)

	case opST:
		sr := (instr >> 9) & 0b111
		pcoffset9 := instr & 0x1FF
		m.memWrite(m.PC+signExtend(pcoffset9, 9), m.Reg[sr])

	case opSTI:
		sr := (instr >> 9) & 0b111
		pcoffset9 := instr & 0x1FF
		m.memWrite(m.memRead(m.PC+signExtend(pcoffset9, 9)), m.Reg[sr])

	case opSTR:
		sr := (instr >> 9) & 0b111
		br := (instr >> 6) & 0b111
		offset6 := instr & 0x3F
		m.memWrite(m.Reg[br]+signExtend(offset6, 6), m.Reg[sr])

	case opTRAP:
		m.Reg[R7] = m.PC
		m.trap(instr & 0xFF)

	case opRTI:
		m.Log.Printf("0x%04x: RTI is unused by this machine, halting", m.PC-1)
		m.Running = false

	case opRES:
		m.Log.Printf("0x%04x: reserved opcode 0b1101, halting", m.PC-1)
		m.Running = false
	}
}
