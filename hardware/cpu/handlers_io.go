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

// 0xec IN AL, DX
//
// the port address is the low 16 bits of EDX
func (mc *CPU) inALDX() error {
	v, err := mc.ports.In(uint16(mc.Regs.Get(registers.EDX)))
	if err != nil {
		return err
	}
	mc.Regs.Set8(0, v)
	mc.advance(1)
	return nil
}

// 0xee OUT DX, AL
func (mc *CPU) outDXAL() error {
	err := mc.ports.Out(uint16(mc.Regs.Get(registers.EDX)), mc.Regs.Get8(0))
	if err != nil {
		return err
	}
	mc.advance(1)
	return nil
}
