package vm

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Load reads a big-endian LC-3 object image: the first word is the origin
// (load address), and subsequent words are copied into memory starting
// there, up to the bound of the address space (spec §6). Loading multiple
// images sequentially is supported; a later image overwrites an earlier one
// at overlapping addresses, since Load writes directly into m.Memory.
func (m *Machine) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return m.loadImage(data)
}

func (m *Machine) loadImage(data []byte) error {
	if len(data) < 2 {
		return fmt.Errorf("image too short: need at least an origin word")
	}

	origin := binary.BigEndian.Uint16(data[:2])
	body := data[2:]

	maxWords := MemorySize - int(origin)
	n := len(body) / 2
	if n > maxWords {
		n = maxWords
	}

	for i := 0; i < n; i++ {
		m.Memory[int(origin)+i] = binary.BigEndian.Uint16(body[i*2 : i*2+2])
	}
	return nil
}
