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

// 0xeb JMP rel8
//
// the displacement is relative to the end of the instruction
func (mc *CPU) jumpShort() error {
	d, err := mc.fetchSigned8(1)
	if err != nil {
		return err
	}
	mc.advance(2)
	mc.EIP.Displace(int32(d))
	mc.LastResult.Branched = true
	return nil
}

// 0xe9 JMP rel32
func (mc *CPU) jumpNear() error {
	d, err := mc.fetchSigned32(1)
	if err != nil {
		return err
	}
	mc.advance(5)
	mc.EIP.Displace(d)
	mc.LastResult.Branched = true
	return nil
}

// 0x70 to 0x7f Jcc rel8
func (mc *CPU) jumpShortIf(cond registers.Condition) error {
	if mc.Flags.Test(cond) {
		return mc.jumpShort()
	}

	// the displacement is not read if the jump isn't taken
	mc.advance(2)
	return nil
}

// 0xe8 CALL rel32
//
// the address of the following instruction is pushed on to the stack
func (mc *CPU) callRel32() error {
	d, err := mc.fetchSigned32(1)
	if err != nil {
		return err
	}
	mc.advance(5)
	err = mc.push32(mc.EIP.Address())
	if err != nil {
		return err
	}
	mc.EIP.Displace(d)
	mc.LastResult.Branched = true
	return nil
}

// 0xc3 RET
func (mc *CPU) ret() error {
	mc.advance(1)
	v, err := mc.pop32()
	if err != nil {
		return err
	}
	mc.EIP.Load(v)
	mc.LastResult.Branched = true
	return nil
}
