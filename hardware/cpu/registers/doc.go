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

// Package registers implements the register file, the instruction pointer and
// the flags register of the CPU.
//
// The register file is eight 32-bit general purpose registers. The first four
// registers can also be addressed as byte registers. Byte register indexes
// 0 to 3 (AL, CL, DL, BL) refer to bits 0-7 of registers 0 to 3. Byte register
// indexes 4 to 7 (AH, CH, DH, BH) refer to bits 8-15 of registers 0 to 3. In
// other words, byte index 4 is the second byte of register 4-4 (EAX). Writing
// to a byte register never changes the other bits of the 32-bit register.
//
// The Flags type is the EFLAGS register but only four flags are modelled:
// Carry, Zero, Sign and Overflow. The flag engine functions of the Flags type
// perform an arithmetic operation and update the flags as a side effect. For
// example:
//
//	var fl registers.Flags
//	fl.Subtract32(0, 1)
//
// leaves the Carry and Sign flags set and the Zero flag clear. Conditional
// jumps query the flags with the Test() function and a Condition value.
package registers
