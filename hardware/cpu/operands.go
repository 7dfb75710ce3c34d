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
	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher86/hardware/cpu/registers"
)

// decodeModRM decodes the ModRM byte at the EIP, along with any SIB and
// displacement bytes, and moves the EIP past them.
func (mc *CPU) decodeModRM() (instructions.ModRM, error) {
	m, n, err := instructions.DecodeModRM(mc.fetch8)
	if err != nil {
		return m, err
	}
	mc.advance(n)
	return m, nil
}

// effectiveAddress returns the memory address described by the ModRM. SIB
// addressing is not supported.
func (mc *CPU) effectiveAddress(m instructions.ModRM) (uint32, error) {
	if m.RM == 4 || m.Mod == 3 {
		return 0, curated.Errorf(UnimplementedAddressing, m.Mod, m.Reg, m.RM, mc.LastResult.Address)
	}

	switch m.Mod {
	case 0:
		if m.RM == 5 {
			return uint32(m.Disp32), nil
		}
		return mc.Regs.Get(registers.Register(m.RM)), nil
	case 1:
		return mc.Regs.Get(registers.Register(m.RM)) + uint32(int32(m.Disp8)), nil
	case 2:
		return mc.Regs.Get(registers.Register(m.RM)) + uint32(m.Disp32), nil
	}

	return 0, curated.Errorf(UnimplementedAddressing, m.Mod, m.Reg, m.RM, mc.LastResult.Address)
}

func (mc *CPU) readRM32(m instructions.ModRM) (uint32, error) {
	if m.IsRegister() {
		return mc.Regs.Get(registers.Register(m.RM)), nil
	}
	address, err := mc.effectiveAddress(m)
	if err != nil {
		return 0, err
	}
	return mc.read32(address)
}

func (mc *CPU) writeRM32(m instructions.ModRM, value uint32) error {
	if m.IsRegister() {
		mc.Regs.Set(registers.Register(m.RM), value)
		return nil
	}
	address, err := mc.effectiveAddress(m)
	if err != nil {
		return err
	}
	return mc.write32(address, value)
}

func (mc *CPU) readRM8(m instructions.ModRM) (uint8, error) {
	if m.IsRegister() {
		return mc.Regs.Get8(m.RM), nil
	}
	address, err := mc.effectiveAddress(m)
	if err != nil {
		return 0, err
	}
	return mc.mem.Read(address)
}

func (mc *CPU) writeRM8(m instructions.ModRM, value uint8) error {
	if m.IsRegister() {
		mc.Regs.Set8(m.RM, value)
		return nil
	}
	address, err := mc.effectiveAddress(m)
	if err != nil {
		return err
	}
	return mc.mem.Write(address, value)
}

// the Reg field of the ModRM always refers to a register

func (mc *CPU) readR32(m instructions.ModRM) uint32 {
	return mc.Regs.Get(registers.Register(m.Reg))
}

func (mc *CPU) writeR32(m instructions.ModRM, value uint32) {
	mc.Regs.Set(registers.Register(m.Reg), value)
}

func (mc *CPU) readR8(m instructions.ModRM) uint8 {
	return mc.Regs.Get8(m.Reg)
}

func (mc *CPU) writeR8(m instructions.ModRM, value uint8) {
	mc.Regs.Set8(m.Reg, value)
}
