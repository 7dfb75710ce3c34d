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

import (
	"github.com/jetsetilly/gopher86/hardware/cpu/registers"
)

// 0x50+r PUSH r32
func (mc *CPU) pushR32(r registers.Register) error {
	mc.advance(1)
	return mc.push32(mc.Regs.Get(r))
}

// 0x58+r POP r32
func (mc *CPU) popR32(r registers.Register) error {
	mc.advance(1)
	v, err := mc.pop32()
	if err != nil {
		return err
	}
	mc.Regs.Set(r, v)
	return nil
}

// 0x68 PUSH imm32
func (mc *CPU) pushImm32() error {
	v, err := mc.fetch32(1)
	if err != nil {
		return err
	}
	mc.advance(5)
	return mc.push32(v)
}

// 0x6a PUSH imm8
func (mc *CPU) pushImm8() error {
	v, err := mc.fetchSigned8(1)
	if err != nil {
		return err
	}
	mc.advance(2)
	return mc.push32(uint32(int32(v)))
}

// 0xc9 LEAVE
func (mc *CPU) leave() error {
	mc.advance(1)
	mc.Regs.Set(registers.ESP, mc.Regs.Get(registers.EBP))
	v, err := mc.pop32()
	if err != nil {
		return err
	}
	mc.Regs.Set(registers.EBP, v)
	return nil
}
