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

package cpu

import "github.com/jetsetilly/gopher86/hardware/cpu/registers"

// bindHandlers fills the handler table. the instructions package has a
// definition for every opcode bound here.
func (mc *CPU) bindHandlers() {
	mc.handlers[0x01] = mc.addRM32R32
	mc.handlers[0x03] = mc.addR32RM32
	mc.handlers[0x29] = mc.subRM32R32
	mc.handlers[0x2b] = mc.subR32RM32
	mc.handlers[0x39] = mc.cmpRM32R32
	mc.handlers[0x3b] = mc.cmpR32RM32
	mc.handlers[0x3c] = mc.cmpALImm8
	mc.handlers[0x3d] = mc.cmpEAXImm32

	for i := uint8(0); i < uint8(registers.NumRegisters); i++ {
		r := registers.Register(i)
		mc.handlers[0x40+i] = func() error { return mc.incR32(r) }
		mc.handlers[0x48+i] = func() error { return mc.decR32(r) }
		mc.handlers[0x50+i] = func() error { return mc.pushR32(r) }
		mc.handlers[0x58+i] = func() error { return mc.popR32(r) }
		mc.handlers[0xb0+i] = func() error { return mc.movR8Imm8(uint8(r)) }
		mc.handlers[0xb8+i] = func() error { return mc.movR32Imm32(r) }
	}

	mc.handlers[0x68] = mc.pushImm32
	mc.handlers[0x6a] = mc.pushImm8

	// short conditional jumps. opcodes 0x7a and 0x7b (parity) are not
	// supported and the conditions after them are shifted down by two
	for i := uint8(0); i < 16; i++ {
		if i == 0x0a || i == 0x0b {
			continue
		}
		cond := registers.Condition(i)
		if i > 0x0b {
			cond = registers.Condition(i - 2)
		}
		mc.handlers[0x70+i] = func() error { return mc.jumpShortIf(cond) }
	}

	mc.handlers[0x83] = mc.group83
	mc.handlers[0x88] = mc.movRM8R8
	mc.handlers[0x89] = mc.movRM32R32
	mc.handlers[0x8a] = mc.movR8RM8
	mc.handlers[0x8b] = mc.movR32RM32
	mc.handlers[0x90] = mc.nop
	mc.handlers[0xc3] = mc.ret
	mc.handlers[0xc6] = mc.movRM8Imm8
	mc.handlers[0xc7] = mc.movRM32Imm32
	mc.handlers[0xc9] = mc.leave
	mc.handlers[0xe8] = mc.callRel32
	mc.handlers[0xe9] = mc.jumpNear
	mc.handlers[0xeb] = mc.jumpShort
	mc.handlers[0xec] = mc.inALDX
	mc.handlers[0xee] = mc.outDXAL
	mc.handlers[0xff] = mc.groupFF
}
