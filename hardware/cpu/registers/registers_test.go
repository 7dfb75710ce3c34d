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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher86/hardware/cpu/registers"
	"github.com/jetsetilly/gopher86/test"
)

func TestRegisterNames(t *testing.T) {
	test.ExpectEquality(t, registers.EAX.String(), "EAX")
	test.ExpectEquality(t, registers.EDI.String(), "EDI")
	test.ExpectEquality(t, registers.ByteRegisterName(0), "AL")
	test.ExpectEquality(t, registers.ByteRegisterName(4), "AH")
	test.ExpectEquality(t, registers.ByteRegisterName(7), "BH")

	r, ok := registers.RegisterFromName("esp")
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, r, registers.ESP)

	_, ok = registers.RegisterFromName("xyz")
	test.ExpectEquality(t, ok, false)

	b, ok := registers.ByteRegisterFromName("ch")
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, b, uint8(5))
}

func TestFile(t *testing.T) {
	f := registers.NewFile()
	for r := registers.EAX; r < registers.NumRegisters; r++ {
		test.ExpectEquality(t, f.Get(r), uint32(0))
	}

	f.Set(registers.EBX, 0xdeadbeef)
	test.ExpectEquality(t, f.Get(registers.EBX), uint32(0xdeadbeef))
	test.ExpectEquality(t, f.Get8(3), uint8(0xef))
	test.ExpectEquality(t, f.Get8(7), uint8(0xbe))

	f.Reset()
	test.ExpectEquality(t, f.Get(registers.EBX), uint32(0))
}

func TestByteRegisterIsolation(t *testing.T) {
	f := registers.NewFile()
	f.Set(registers.EAX, 0x12345678)

	// AH
	f.Set8(4, 0xab)
	test.ExpectEquality(t, f.Get(registers.EAX), uint32(0x1234ab78))

	// AL
	f.Set8(0, 0xcd)
	test.ExpectEquality(t, f.Get(registers.EAX), uint32(0x1234abcd))

	// writing DH must not touch EAX or ESP
	f.Set(registers.EDX, 0xffffffff)
	f.Set8(6, 0x00)
	test.ExpectEquality(t, f.Get(registers.EDX), uint32(0xffff00ff))
	test.ExpectEquality(t, f.Get(registers.EAX), uint32(0x1234abcd))
	test.ExpectEquality(t, f.Get(registers.ESI), uint32(0))
}

func TestInstructionPointer(t *testing.T) {
	ip := registers.NewInstructionPointer(0x7c00)
	test.ExpectEquality(t, ip.String(), "00007c00")

	ip.Add(5)
	test.ExpectEquality(t, ip.Address(), uint32(0x7c05))

	ip.Displace(-5)
	test.ExpectEquality(t, ip.Address(), uint32(0x7c00))

	ip.Load(0)
	ip.Displace(-1)
	test.ExpectEquality(t, ip.Address(), uint32(0xffffffff))
}
