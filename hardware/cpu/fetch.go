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
	"encoding/binary"

	"github.com/jetsetilly/gopher86/hardware/cpu/registers"
)

// the fetch functions read the bytes of the current instruction. the offset
// is the number of bytes past the EIP. the EIP is not changed.

func (mc *CPU) fetch8(offset uint32) (uint8, error) {
	return mc.mem.Read(mc.EIP.Address() + offset)
}

func (mc *CPU) fetchSigned8(offset uint32) (int8, error) {
	v, err := mc.fetch8(offset)
	return int8(v), err
}

func (mc *CPU) fetch32(offset uint32) (uint32, error) {
	return mc.read32(mc.EIP.Address() + offset)
}

func (mc *CPU) fetchSigned32(offset uint32) (int32, error) {
	v, err := mc.fetch32(offset)
	return int32(v), err
}

// advance moves the EIP forward past bytes of the current instruction.
func (mc *CPU) advance(n uint32) {
	mc.EIP.Add(n)
	mc.LastResult.ByteCount += int(n)
}

// read32 reads four consecutive bytes from memory, least significant byte
// first.
func (mc *CPU) read32(address uint32) (uint32, error) {
	var b [4]uint8
	var err error
	for i := range b {
		b[i], err = mc.mem.Read(address + uint32(i))
		if err != nil {
			return 0, err
		}
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// write32 writes four consecutive bytes to memory, least significant byte
// first.
func (mc *CPU) write32(address uint32, value uint32) error {
	var b [4]uint8
	binary.LittleEndian.PutUint32(b[:], value)
	for i := range b {
		err := mc.mem.Write(address+uint32(i), b[i])
		if err != nil {
			return err
		}
	}
	return nil
}

func (mc *CPU) push32(value uint32) error {
	esp := mc.Regs.Get(registers.ESP) - 4
	mc.Regs.Set(registers.ESP, esp)
	return mc.write32(esp, value)
}

func (mc *CPU) pop32() (uint32, error) {
	esp := mc.Regs.Get(registers.ESP)
	v, err := mc.read32(esp)
	if err != nil {
		return 0, err
	}
	mc.Regs.Set(registers.ESP, esp+4)
	return v, nil
}
