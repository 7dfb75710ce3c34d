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

package dump_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher86/dump"
	"github.com/jetsetilly/gopher86/hardware/cpu"
	"github.com/jetsetilly/gopher86/hardware/cpu/registers"
	"github.com/jetsetilly/gopher86/hardware/memory"
	"github.com/jetsetilly/gopher86/hardware/ports"
	"github.com/jetsetilly/gopher86/test"
)

func newCPU(t *testing.T) *cpu.CPU {
	t.Helper()
	mem, err := memory.NewMemory(0x10000)
	test.DemandSuccess(t, err)
	mc := cpu.NewCPU(mem, ports.NewBus())
	mc.Reset(0x7c00, 0x7c00)
	return mc
}

func TestRegisters(t *testing.T) {
	mc := newCPU(t)
	mc.Regs.Set(registers.EAX, 0x2a)
	mc.Regs.Set(registers.EDI, 0xdeadbeef)
	mc.Flags.Carry = true
	mc.Flags.Sign = true

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, dump.Registers(w, mc))
	test.ExpectEquality(t, w.String(), `------[registers]------
[EAX] 0000002a
[ECX] 00000000
[EDX] 00000000
[EBX] 00000000
[ESP] 00007c00
[EBP] 00000000
[ESI] 00000000
[EDI] deadbeef
[EIP] 00007c00
[FLG] C S 
-----------------------
`)
}

func TestGraph(t *testing.T) {
	mc := newCPU(t)
	mc.Regs.Set(registers.EBX, 0x1234abcd)

	w := &strings.Builder{}
	dump.Graph(w, mc)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "1234abcd"))
}
