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

// Package cpu emulates a 32-bit processor that understands a subset of the
// x86 instruction set. There is no segmentation, no protected mode and no
// interrupts. Memory is a flat array of bytes addressed from zero.
//
// The CPU executes instructions according to the byte read from the address
// pointed to by the instruction pointer (EIP). This single byte is the opcode
// and is used to select a handler from a table of 256 entries. The handler
// reads any operand bytes that follow the opcode, performs the instruction and
// moves the EIP past the instruction, or to the target of a jump.
//
// An instance of the CPU type requires an implementation of cpubus.Memory and
// an implementation of cpubus.Ports. The cpubus package describes the
// operations.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Let's assume mem is an implementation of cpubus.Memory that has been loaded
// with a program at address 0x7c00.
//
//	mc := cpu.NewCPU(mem, ports)
//	mc.Reset(0x7c00, 0x7c00)
//
//	for !mc.Halted() {
//		err := mc.ExecuteInstruction()
//		if err != nil {
//			return err
//		}
//	}
//
// The CPU is halted when the EIP is zero. Address zero is never executed and
// is used as a sentinel. A program halts by jumping to zero or by returning
// from its entry point with zero on the stack.
//
// The LastResult field can be probed for information about the most recently
// executed instruction. See the execution package.
//
// Errors returned by ExecuteInstruction() are fatal. The CPU will be in an
// unknown state. Curated error patterns in this package identify unsupported
// instructions and addressing modes. Memory errors are curated errors matching
// cpubus.AddressError.
package cpu
