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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/hardware/cpu"
	"github.com/jetsetilly/gopher86/hardware/memory/cpubus"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) putInstructions(origin uint32, bytes ...uint8) uint32 {
	for i, b := range bytes {
		mem.internal[origin+uint32(i)] = b
	}
	return origin + uint32(len(bytes))
}

func (mem *mockMem) put32(address uint32, v uint32) {
	mem.internal[address] = uint8(v)
	mem.internal[address+1] = uint8(v >> 8)
	mem.internal[address+2] = uint8(v >> 16)
	mem.internal[address+3] = uint8(v >> 24)
}

func (mem *mockMem) get32(address uint32) uint32 {
	return uint32(mem.internal[address]) | uint32(mem.internal[address+1])<<8 |
		uint32(mem.internal[address+2])<<16 | uint32(mem.internal[address+3])<<24
}

func (mem *mockMem) Clear() {
	clear(mem.internal)
}

func (mem *mockMem) Read(address uint32) (uint8, error) {
	if int(address) >= len(mem.internal) {
		return 0, curated.Errorf(cpubus.AddressError, address)
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint32, data uint8) error {
	if int(address) >= len(mem.internal) {
		return curated.Errorf(cpubus.AddressError, address)
	}
	mem.internal[address] = data
	return nil
}

type portAccess struct {
	port uint16
	data uint8
}

type mockPorts struct {
	in  []uint8
	out []portAccess

	// port of the last read
	lastIn uint16
}

func (p *mockPorts) In(port uint16) (uint8, error) {
	p.lastIn = port
	if len(p.in) == 0 {
		return 0, nil
	}
	v := p.in[0]
	p.in = p.in[1:]
	return v, nil
}

func (p *mockPorts) Out(port uint16, data uint8) error {
	p.out = append(p.out, portAccess{port: port, data: data})
	return nil
}

func newCPU(t *testing.T) (*cpu.CPU, *mockMem, *mockPorts) {
	t.Helper()
	mem := newMockMem()
	ports := &mockPorts{}
	mc := cpu.NewCPU(mem, ports)
	mc.Reset(0x0100, 0x8000)
	return mc, mem, ports
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
}
