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

// Package instructions describes the instruction set understood by the CPU.
// It has no knowledge of CPU state and is shared by the cpu package and the
// disassembly package.
//
// GetDefinitions() returns a table of Definition values indexed by opcode. A
// nil entry means the opcode is not implemented.
//
// The operand bytes of most instructions begin with a ModRM byte.
// DecodeModRM() decodes the ModRM byte and the optional SIB and displacement
// bytes that follow it. The decoder reads bytes through a Fetcher function and
// returns the number of bytes it consumed, leaving the caller to decide how
// the instruction pointer should be moved.
package instructions
