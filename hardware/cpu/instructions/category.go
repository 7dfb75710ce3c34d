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

// Category of an instruction describes its effect.
type Category int

// List of valid instruction categories.
const (
	Read Category = iota
	Write
	Modify
	Stack
	Flow
	Subroutine
	IO
)

func (e Category) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Modify:
		return "Modify"
	case Stack:
		return "Stack"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case IO:
		return "IO"
	}
	return "unknown effect"
}

// Form describes how an instruction is encoded.
type Form int

// List of valid encoding forms.
const (
	// no operand bytes other than immediate values
	Implied Form = iota

	// the low three bits of the opcode select a register
	RegisterInOpcode

	// a ModRM byte follows the opcode
	WithModRM

	// a ModRM byte follows the opcode and the Reg field selects the
	// operation
	Grouped
)

func (f Form) String() string {
	switch f {
	case Implied:
		return "Implied"
	case RegisterInOpcode:
		return "RegisterInOpcode"
	case WithModRM:
		return "ModRM"
	case Grouped:
		return "Grouped"
	}
	return "unknown form"
}
