// This file is part of Gopher86.
//
// Gopher86 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher86 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher86.  If not, see <https://www.gnu.org/licenses/>.

package instructions

import (
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gopher86/hardware/cpu/registers"
)

// Fetcher returns the byte at offset bytes past the start of the data being
// decoded.
type Fetcher func(offset uint32) (uint8, error)

// Displacement indicates which, if any, displacement field of the ModRM type
// is populated.
type Displacement int

// List of valid Displacement values.
const (
	NoDisplacement Displacement = iota
	Displacement8
	Displacement32
)

// ModRM is the decoded form of a ModRM byte and the SIB and displacement bytes
// that may follow it.
type ModRM struct {
	Mod uint8

	// Reg is either a register index or, for grouped opcodes, an extension of
	// the opcode. The instruction definition decides which.
	Reg uint8

	RM uint8

	// SIB is only valid if HasSIB is true. the SIB byte is read but is not
	// used in effective address calculations
	HasSIB bool
	SIB    uint8

	Displacement Displacement
	Disp8        int8
	Disp32       int32
}

// DecodeModRM decodes the ModRM byte at offset zero of fetch and any bytes
// that follow it. The number of bytes consumed is returned along with the
// decoded ModRM.
func DecodeModRM(fetch Fetcher) (ModRM, uint32, error) {
	var m ModRM

	b, err := fetch(0)
	if err != nil {
		return m, 0, err
	}
	m.Mod = b >> 6
	m.Reg = (b >> 3) & 0x07
	m.RM = b & 0x07
	n := uint32(1)

	if m.Mod != 3 && m.RM == 4 {
		m.SIB, err = fetch(n)
		if err != nil {
			return m, n, err
		}
		m.HasSIB = true
		n++
	}

	if (m.Mod == 0 && m.RM == 5) || m.Mod == 2 {
		var d [4]uint8
		for i := range d {
			d[i], err = fetch(n + uint32(i))
			if err != nil {
				return m, n, err
			}
		}
		m.Disp32 = int32(binary.LittleEndian.Uint32(d[:]))
		m.Displacement = Displacement32
		n += 4
	} else if m.Mod == 1 {
		d, err := fetch(n)
		if err != nil {
			return m, n, err
		}
		m.Disp8 = int8(d)
		m.Displacement = Displacement8
		n++
	}

	return m, n, nil
}

// IsRegister returns true if the RM field names a register rather than a
// memory location.
func (m ModRM) IsRegister() bool {
	return m.Mod == 3
}

func (m ModRM) String() string {
	return fmt.Sprintf("mod=%d reg=%d rm=%d", m.Mod, m.Reg, m.RM)
}

// Reg32 returns the Reg field as the name of a 32-bit register.
func (m ModRM) Reg32() string {
	return registers.Register(m.Reg).String()
}

// Reg8 returns the Reg field as the name of a byte register.
func (m ModRM) Reg8() string {
	return registers.ByteRegisterName(m.Reg)
}

// RM32 returns the RM operand for an instruction with 32-bit operands.
func (m ModRM) RM32() string {
	if m.IsRegister() {
		return registers.Register(m.RM).String()
	}
	return m.memory()
}

// RM8 returns the RM operand for an instruction with byte operands.
func (m ModRM) RM8() string {
	if m.IsRegister() {
		return registers.ByteRegisterName(m.RM)
	}
	return m.memory()
}

func (m ModRM) memory() string {
	var base string
	if m.HasSIB {
		base = fmt.Sprintf("sib:%02x", m.SIB)
	} else if m.Mod == 0 && m.RM == 5 {
		return fmt.Sprintf("[0x%08x]", uint32(m.Disp32))
	} else {
		base = registers.Register(m.RM).String()
	}

	var disp int64
	switch m.Displacement {
	case Displacement8:
		disp = int64(m.Disp8)
	case Displacement32:
		disp = int64(m.Disp32)
	default:
		return fmt.Sprintf("[%s]", base)
	}

	if disp < 0 {
		return fmt.Sprintf("[%s-%#x]", base, -disp)
	}
	return fmt.Sprintf("[%s+%#x]", base, disp)
}
