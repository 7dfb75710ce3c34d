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

// 0x01 ADD r/m32, r32
func (mc *CPU) addRM32R32() error {
	mc.advance(1)
	m, err := mc.decodeModRM()
	if err != nil {
		return err
	}
	a, err := mc.readRM32(m)
	if err != nil {
		return err
	}
	return mc.writeRM32(m, mc.Flags.Add32(a, mc.readR32(m)))
}

// 0x03 ADD r32, r/m32
func (mc *CPU) addR32RM32() error {
	mc.advance(1)
	m, err := mc.decodeModRM()
	if err != nil {
		return err
	}
	b, err := mc.readRM32(m)
	if err != nil {
		return err
	}
	mc.writeR32(m, mc.Flags.Add32(mc.readR32(m), b))
	return nil
}

// 0x29 SUB r/m32, r32
func (mc *CPU) subRM32R32() error {
	mc.advance(1)
	m, err := mc.decodeModRM()
	if err != nil {
		return err
	}
	a, err := mc.readRM32(m)
	if err != nil {
		return err
	}
	return mc.writeRM32(m, mc.Flags.Subtract32(a, mc.readR32(m)))
}

// 0x2b SUB r32, r/m32
func (mc *CPU) subR32RM32() error {
	mc.advance(1)
	m, err := mc.decodeModRM()
	if err != nil {
		return err
	}
	b, err := mc.readRM32(m)
	if err != nil {
		return err
	}
	mc.writeR32(m, mc.Flags.Subtract32(mc.readR32(m), b))
	return nil
}

// 0x39 CMP r/m32, r32
func (mc *CPU) cmpRM32R32() error {
	mc.advance(1)
	m, err := mc.decodeModRM()
	if err != nil {
		return err
	}
	a, err := mc.readRM32(m)
	if err != nil {
		return err
	}
	mc.Flags.Subtract32(a, mc.readR32(m))
	return nil
}

// 0x3b CMP r32, r/m32
func (mc *CPU) cmpR32RM32() error {
	mc.advance(1)
	m, err := mc.decodeModRM()
	if err != nil {
		return err
	}
	b, err := mc.readRM32(m)
	if err != nil {
		return err
	}
	mc.Flags.Subtract32(mc.readR32(m), b)
	return nil
}

// 0x3c CMP AL, imm8
func (mc *CPU) cmpALImm8() error {
	v, err := mc.fetch8(1)
	if err != nil {
		return err
	}
	mc.Flags.Subtract8(mc.Regs.Get8(0), v)
	mc.advance(2)
	return nil
}

// 0x3d CMP EAX, imm32
func (mc *CPU) cmpEAXImm32() error {
	v, err := mc.fetch32(1)
	if err != nil {
		return err
	}
	mc.Flags.Subtract32(mc.Regs.Get(registers.EAX), v)
	mc.advance(5)
	return nil
}

// 0x40+r INC r32
func (mc *CPU) incR32(r registers.Register) error {
	mc.Regs.Set(r, mc.Flags.Increment32(mc.Regs.Get(r)))
	mc.advance(1)
	return nil
}

// 0x48+r DEC r32
func (mc *CPU) decR32(r registers.Register) error {
	mc.Regs.Set(r, mc.Flags.Decrement32(mc.Regs.Get(r)))
	mc.advance(1)
	return nil
}

// 0x83 ADD/SUB/CMP r/m32, imm8
//
// the immediate value is sign extended to 32 bits
func (mc *CPU) group83() error {
	mc.advance(1)
	m, err := mc.decodeModRM()
	if err != nil {
		return err
	}
	if err := mc.extension(m); err != nil {
		return err
	}

	imm, err := mc.fetchSigned8(0)
	if err != nil {
		return err
	}
	mc.advance(1)

	a, err := mc.readRM32(m)
	if err != nil {
		return err
	}
	b := uint32(int32(imm))

	switch m.Reg {
	case 0:
		return mc.writeRM32(m, mc.Flags.Add32(a, b))
	case 5:
		return mc.writeRM32(m, mc.Flags.Subtract32(a, b))
	case 7:
		mc.Flags.Subtract32(a, b)
	}

	return nil
}

// 0xff INC/DEC r/m32
func (mc *CPU) groupFF() error {
	mc.advance(1)
	m, err := mc.decodeModRM()
	if err != nil {
		return err
	}
	if err := mc.extension(m); err != nil {
		return err
	}

	v, err := mc.readRM32(m)
	if err != nil {
		return err
	}

	switch m.Reg {
	case 0:
		return mc.writeRM32(m, mc.Flags.Increment32(v))
	case 1:
		return mc.writeRM32(m, mc.Flags.Decrement32(v))
	}

	return nil
}
