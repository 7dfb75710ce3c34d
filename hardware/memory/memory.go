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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/hardware/memory/cpubus"
)

// Memory is the flat memory of the machine.
type Memory struct {
	data []uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The memory is zero-initialised.
func NewMemory(size int) (*Memory, error) {
	if size <= 0 {
		return nil, curated.Errorf("memory: invalid memory size (%d)", size)
	}
	return &Memory{
		data: make([]uint8, size),
	}, nil
}

// Size returns the number of bytes in memory.
func (mem *Memory) Size() int {
	return len(mem.data)
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%d bytes", len(mem.data))
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint32) (uint8, error) {
	if uint64(address) >= uint64(len(mem.data)) {
		return 0, curated.Errorf(cpubus.AddressError, address)
	}
	return mem.data[address], nil
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint32, data uint8) error {
	if uint64(address) >= uint64(len(mem.data)) {
		return curated.Errorf(cpubus.AddressError, address)
	}
	mem.data[address] = data
	return nil
}

// Peek returns the value at the address without any side effects.
func (mem *Memory) Peek(address uint32) (uint8, error) {
	return mem.Read(address)
}

// Poke sets the value at the address.
func (mem *Memory) Poke(address uint32, data uint8) error {
	return mem.Write(address, data)
}

// Clear sets all bytes in memory to zero.
func (mem *Memory) Clear() {
	clear(mem.data)
}

// Load copies data verbatim into memory, starting at origin. It is an error
// for the data to extend beyond the end of memory, in which case memory is not
// changed.
func (mem *Memory) Load(origin uint32, data []uint8) error {
	end := uint64(origin) + uint64(len(data))
	if end > uint64(len(mem.data)) {
		return curated.Errorf("memory: load of %d bytes at 0x%08x: %v", len(data), origin,
			curated.Errorf(cpubus.AddressError, end-1))
	}
	copy(mem.data[origin:], data)
	return nil
}

// Dump returns a hex dump of the memory between origin and origin+length.
// The range is clipped to the size of memory.
func (mem *Memory) Dump(origin uint32, length int) string {
	s := strings.Builder{}

	start := uint64(origin) &^ 0x0f
	end := uint64(origin) + uint64(length)
	if end > uint64(len(mem.data)) {
		end = uint64(len(mem.data))
	}

	for a := start; a < end; a += 16 {
		s.WriteString(fmt.Sprintf("%08x |", a))
		for i := a; i < a+16 && i < end; i++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[i]))
		}
		s.WriteString("\n")
	}

	return s.String()
}
