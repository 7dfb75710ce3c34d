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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher86/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher86/hardware/cpu/registers"
)

// source returns the byte at address. addresses outside the region being
// disassembled return an error.
type source func(address uint32) (uint8, error)

// undecoded returns a "db" entry for the byte at address.
func undecoded(address uint32, b uint8) *Entry {
	return &Entry{
		Address:  address,
		Bytes:    []uint8{b},
		Mnemonic: "db",
		Operand:  fmt.Sprintf("0x%02x", b),
	}
}

// decode the instruction at address. an error is only returned if the opcode
// itself cannot be read.
func decode(src source, defns []*instructions.Definition, address uint32) (*Entry, error) {
	opcode, err := src(address)
	if err != nil {
		return nil, err
	}

	defn := defns[opcode]
	if defn == nil {
		return undecoded(address, opcode), nil
	}

	e := &Entry{
		Address:  address,
		Bytes:    []uint8{opcode},
		Defn:     defn,
		Mnemonic: defn.Mnemonic,
	}

	// number of bytes consumed so far
	n := uint32(1)

	read := func() (uint8, error) {
		b, err := src(address + n)
		if err != nil {
			return 0, err
		}
		e.Bytes = append(e.Bytes, b)
		n++
		return b, nil
	}

	read32 := func() (uint32, error) {
		var v uint32
		for i := 0; i < 4; i++ {
			b, err := read()
			if err != nil {
				return 0, err
			}
			v |= uint32(b) << (i * 8)
		}
		return v, nil
	}

	var m instructions.ModRM
	if defn.HasModRM() {
		var c uint32
		m, c, err = instructions.DecodeModRM(func(offset uint32) (uint8, error) {
			return src(address + n + offset)
		})
		if err != nil {
			return undecoded(address, opcode), nil
		}
		for i := uint32(0); i < c; i++ {
			b, _ := src(address + n + i)
			e.Bytes = append(e.Bytes, b)
		}
		n += c

		mn, ok := defn.ExtensionMnemonic(m.Reg)
		if !ok {
			return undecoded(address, opcode), nil
		}
		e.Mnemonic = mn
	}

	tokens := defn.OperandTokens()
	operands := make([]string, 0, len(tokens))

	for _, t := range tokens {
		var s string

		switch t {
		case instructions.OperandRM32:
			s = m.RM32()
		case instructions.OperandRM8:
			s = m.RM8()
		case instructions.OperandR32:
			if defn.Form == instructions.RegisterInOpcode {
				s = registers.Register(opcode & 0x07).String()
			} else {
				s = m.Reg32()
			}
		case instructions.OperandR8:
			if defn.Form == instructions.RegisterInOpcode {
				s = registers.ByteRegisterName(opcode & 0x07)
			} else {
				s = m.Reg8()
			}
		case instructions.OperandImm8:
			v, err := read()
			if err != nil {
				return undecoded(address, opcode), nil
			}
			s = fmt.Sprintf("0x%02x", v)
		case instructions.OperandImm32:
			v, err := read32()
			if err != nil {
				return undecoded(address, opcode), nil
			}
			s = fmt.Sprintf("0x%08x", v)
		case instructions.OperandRel8:
			v, err := read()
			if err != nil {
				return undecoded(address, opcode), nil
			}
			e.Target = address + n + uint32(int32(int8(v)))
			e.HasTarget = true
			s = fmt.Sprintf("0x%08x", e.Target)
		case instructions.OperandRel32:
			v, err := read32()
			if err != nil {
				return undecoded(address, opcode), nil
			}
			e.Target = address + n + v
			e.HasTarget = true
			s = fmt.Sprintf("0x%08x", e.Target)
		default:
			// fixed register operand
			s = t
		}

		operands = append(operands, s)
	}

	e.Operand = strings.Join(operands, ", ")

	return e, nil
}
