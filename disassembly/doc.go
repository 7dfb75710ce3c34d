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

// Package disassembly creates a linear disassembly of a region of memory or of
// a program that has not yet been attached to a machine.
//
// Instructions are decoded with the same definitions and ModRM decoder as the
// CPU uses so the disassembly will always agree with what the CPU executes.
// Bytes that cannot be decoded, either because the opcode is not implemented
// or because the instruction is truncated by the end of the region, are
// listed as a "db" entry of one byte. Decoding then continues with the next
// byte.
//
// Decoding is linear. There is no attempt to follow the flow of the program
// and so data embedded in the program will be disassembled as though it is
// code. Addresses that are the target of a jump or call instruction are
// labelled in the output of Write().
package disassembly
