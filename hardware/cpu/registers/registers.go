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

package registers

import (
	"fmt"
	"strings"
)

// Register identifies one of the eight 32-bit general purpose registers. The
// numeric value of the register is the value used in instruction encodings.
type Register uint8

// List of general purpose registers in encoding order.
const (
	EAX Register = iota
	ECX
	EDX
	EBX
	ESP
	EBP
	ESI
	EDI
	NumRegisters
)

var registerNames = [NumRegisters]string{"EAX", "ECX", "EDX", "EBX", "ESP", "EBP", "ESI", "EDI"}

var byteRegisterNames = [NumRegisters]string{"AL", "CL", "DL", "BL", "AH", "CH", "DH", "BH"}

func (r Register) String() string {
	if r >= NumRegisters {
		return fmt.Sprintf("R%d", r)
	}
	return registerNames[r]
}

// ByteRegisterName returns the name of the byte register for the encoding
// index.
func ByteRegisterName(idx uint8) string {
	if idx >= uint8(NumRegisters) {
		return fmt.Sprintf("R%dB", idx)
	}
	return byteRegisterNames[idx]
}

// RegisterFromName returns the 32-bit register with the name. The comparison
// is case insensitive.
func RegisterFromName(name string) (Register, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range registerNames {
		if n == name {
			return Register(i), true
		}
	}
	return 0, false
}

// ByteRegisterFromName returns the encoding index of the byte register with the
// name. The comparison is case insensitive.
func ByteRegisterFromName(name string) (uint8, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range byteRegisterNames {
		if n == name {
			return uint8(i), true
		}
	}
	return 0, false
}

// File is the set of general purpose registers.
type File struct {
	regs [NumRegisters]uint32
}

// NewFile is the preferred method of initialisation for the File type. All
// registers are zero.
func NewFile() File {
	return File{}
}

func (f File) String() string {
	s := strings.Builder{}
	for i := range f.regs {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%s=%08x", Register(i), f.regs[i]))
	}
	return s.String()
}

// Reset sets all registers to zero.
func (f *File) Reset() {
	f.regs = [NumRegisters]uint32{}
}

// Get returns the value of the 32-bit register.
func (f *File) Get(r Register) uint32 {
	return f.regs[r&0x07]
}

// Set loads a value into the 32-bit register.
func (f *File) Set(r Register, v uint32) {
	f.regs[r&0x07] = v
}

// Get8 returns the value of the byte register with the encoding index.
func (f *File) Get8(idx uint8) uint8 {
	idx &= 0x07
	if idx < 4 {
		return uint8(f.regs[idx])
	}
	return uint8(f.regs[idx-4] >> 8)
}

// Set8 loads a value into the byte register with the encoding index. The other
// bits of the owning 32-bit register are preserved.
func (f *File) Set8(idx uint8, v uint8) {
	idx &= 0x07
	if idx < 4 {
		f.regs[idx] = f.regs[idx]&0xffffff00 | uint32(v)
		return
	}
	f.regs[idx-4] = f.regs[idx-4]&0xffff00ff | uint32(v)<<8
}
