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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/gopher86/disassembly"
	"github.com/jetsetilly/gopher86/hardware/memory"
	"github.com/jetsetilly/gopher86/programloader"
	"github.com/jetsetilly/gopher86/test"
)

var program = []uint8{
	0xb8, 0x2a, 0x00, 0x00, 0x00,
	0x88, 0xe0,
	0x83, 0x7d, 0xfc, 0x05,
	0x75, 0xf3,
	0x0f,
	0x90,
	0xb8, 0x01,
}

func TestFromLoader(t *testing.T) {
	ld := programloader.NewLoaderFromData("test", program)
	dsm, err := disassembly.FromLoader(&ld)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dsm.Len(), 8)

	e, ok := dsm.GetEntryByAddress(0x7c07)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Mnemonic, "CMP")
	test.ExpectEquality(t, e.Operand, "[EBP-0x4], 0x05")
	test.ExpectEquality(t, e.Bytecode(), "83 7d fc 05")
	test.ExpectSuccess(t, e.Decoded())

	e, ok = dsm.GetEntryByAddress(0x7c0b)
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, e.HasTarget)
	test.ExpectEquality(t, e.Target, uint32(0x7c00))
	test.ExpectSuccess(t, dsm.IsTarget(0x7c00))

	// truncated instruction
	e, ok = dsm.GetEntryByAddress(0x7c0f)
	test.DemandSuccess(t, ok)
	test.ExpectFailure(t, e.Decoded())
	test.ExpectEquality(t, e.String(), "00007c0f  db 0xb8")

	// not the start of an instruction
	_, ok = dsm.GetEntryByAddress(0x7c01)
	test.ExpectFailure(t, ok)
}

func TestWrite(t *testing.T) {
	ld := programloader.NewLoaderFromData("test", program)
	dsm, err := disassembly.FromLoader(&ld)
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, dsm.Write(w, disassembly.WriteAttr{Labels: true}))
	test.ExpectEquality(t, w.String(), `l_00007c00:
00007c00  MOV   EAX, 0x0000002a
00007c05  MOV   AL, AH
00007c07  CMP   [EBP-0x4], 0x05
00007c0b  JNZ   0x00007c00
00007c0d  db    0x0f
00007c0e  NOP
00007c0f  db    0xb8
00007c10  db    0x01
`)

	w.Clear()
	test.ExpectSuccess(t, dsm.WriteEntry(w, disassembly.WriteAttr{ByteCode: true}, dsm.Entries()[1]))
	test.ExpectEquality(t, w.String(), "00007c05  88 e0                            MOV   AL, AH\n")
}

func TestFromMemory(t *testing.T) {
	mem, err := memory.NewMemory(0x100)
	test.DemandSuccess(t, err)

	// mov eax, [esp]
	// inc dword [0x00000010]
	// /2 is not a valid extension of opcode ff
	// call 0x00000004
	test.DemandSuccess(t, mem.Load(0x10, []uint8{
		0x8b, 0x04, 0x24,
		0xff, 0x05, 0x10, 0x00, 0x00, 0x00,
		0xff, 0xd0,
		0xe8, 0xe4, 0xff, 0xff, 0xff,
	}))

	dsm, err := disassembly.FromMemory(mem, 0x10, 16)
	test.DemandSuccess(t, err)

	ent := dsm.Entries()
	test.DemandEquality(t, len(ent), 5)
	test.ExpectEquality(t, ent[0].String(), "00000010  MOV EAX, [sib:24]")
	test.ExpectEquality(t, ent[1].String(), "00000013  INC [0x00000010]")
	test.ExpectEquality(t, ent[2].String(), "00000019  db 0xff")
	test.ExpectEquality(t, ent[3].String(), "0000001a  db 0xd0")
	test.ExpectEquality(t, ent[4].String(), "0000001b  CALL 0x00000004")
	test.ExpectEquality(t, ent[4].Target, uint32(0x04))

	// the region is clipped by the end of memory
	_, err = disassembly.FromMemory(mem, 0xf0, 0x20)
	test.ExpectFailure(t, err)

	_, err = disassembly.FromMemory(mem, 0, 0)
	test.ExpectFailure(t, err)
}
