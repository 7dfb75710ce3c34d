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

import "fmt"

// InstructionPointer is the EIP register. It holds the address of the next
// opcode to be fetched.
type InstructionPointer struct {
	value uint32
}

// NewInstructionPointer is the preferred method of initialisation for the
// InstructionPointer type.
func NewInstructionPointer(val uint32) InstructionPointer {
	return InstructionPointer{value: val}
}

// Label returns an identifying string for the EIP.
func (ip InstructionPointer) Label() string {
	return "EIP"
}

func (ip InstructionPointer) String() string {
	return fmt.Sprintf("%08x", ip.value)
}

// Address returns the current value of the EIP.
func (ip *InstructionPointer) Address() uint32 {
	return ip.value
}

// Load a value into the EIP.
func (ip *InstructionPointer) Load(val uint32) {
	ip.value = val
}

// Add an unsigned value to the EIP. Used to move past the bytes of an
// instruction.
func (ip *InstructionPointer) Add(val uint32) {
	ip.value += val
}

// Displace adds a signed displacement to the EIP. The EIP wraps in both
// directions.
func (ip *InstructionPointer) Displace(disp int32) {
	ip.value += uint32(disp)
}
