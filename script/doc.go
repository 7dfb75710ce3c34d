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

// Package script runs Lua scripts against a machine. The script can inspect
// and alter the state of the CPU and memory and control execution one
// instruction at a time.
//
// The following functions are available to the script in addition to the
// standard Lua libraries:
//
//	reg(name)             value of a 32-bit or byte register, or EIP
//	setreg(name, value)   set the value of a register
//	eip()                 value of the instruction pointer
//	seteip(value)         set the instruction pointer
//	flag(name)            state of a flag (C, Z, S or O)
//	setflag(name, bool)   set or clear a flag
//	peek(address)         byte in memory
//	poke(address, value)  write byte to memory
//	step()                execute one instruction. false once the CPU halts
//	run([limit])          run until halted or for limit instructions
//	halted()              true if the CPU has halted
//	count()               number of instructions executed since reset
//	reset()               reset the machine
//	disasm(address, n)    table of disassembled instructions in n bytes
//	log(message)          add an entry to the central log
//	print(...)            write values to the script output
//
// Errors in the machine (for example, an unimplemented instruction) are raised
// as Lua errors and end the script unless caught with pcall().
package script
