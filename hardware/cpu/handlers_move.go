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

// 0x88 MOV r/m8, r8
func (mc *CPU) movRM8R8() error {
	mc.advance(1)
	m, err := mc.decodeModRM()
	if err != nil {
		return err
	}
	return mc.writeRM8(m, mc.readR8(m))
}

// 0x89 MOV r/m32, r32
func (mc *CPU) movRM32R32() error {
	mc.advance(1)
	m, err := mc.decodeModRM()
	if err != nil {
		return err
	}
	return mc.writeRM32(m, mc.readR32(m))
}

// 0x8a MOV r8, r/m8
func (mc *CPU) movR8RM8() error {
	mc.advance(1)
	m, err := mc.decodeModRM()
	if err != nil {
		return err
	}
	v, err := mc.readRM8(m)
	if err != nil {
		return err
	}
	mc.writeR8(m, v)
	return nil
}

// 0x8b MOV r32, r/m32
func (mc *CPU) movR32RM32() error {
	mc.advance(1)
	m, err := mc.decodeModRM()
	if err != nil {
		return err
	}
	v, err := mc.readRM32(m)
	if err != nil {
		return err
	}
	mc.writeR32(m, v)
	return nil
}

// 0xb0+r MOV r8, imm8
func (mc *CPU) movR8Imm8(idx uint8) error {
	v, err := mc.fetch8(1)
	if err != nil {
		return err
	}
	mc.Regs.Set8(idx, v)
	mc.advance(2)
	return nil
}

// 0xb8+r MOV r32, imm32
func (mc *CPU) movR32Imm32(r registers.Register) error {
	v, err := mc.fetch32(1)
	if err != nil {
		return err
	}
	mc.Regs.Set(r, v)
	mc.advance(5)
	return nil
}

// 0xc6 /0 MOV r/m8, imm8
func (mc *CPU) movRM8Imm8() error {
	mc.advance(1)
	m, err := mc.decodeModRM()
	if err != nil {
		return err
	}
	if err := mc.extension(m); err != nil {
		return err
	}
	v, err := mc.fetch8(0)
	if err != nil {
		return err
	}
	mc.advance(1)
	return mc.writeRM8(m, v)
}

// 0xc7 /0 MOV r/m32, imm32
func (mc *CPU) movRM32Imm32() error {
	mc.advance(1)
	m, err := mc.decodeModRM()
	if err != nil {
		return err
	}
	if err := mc.extension(m); err != nil {
		return err
	}
	v, err := mc.fetch32(0)
	if err != nil {
		return err
	}
	mc.advance(4)
	return mc.writeRM32(m, v)
}

// 0x90 NOP
func (mc *CPU) nop() error {
	mc.advance(1)
	return nil
}
