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

package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Accesses are always a single byte wide. Wider values are composed by the
// CPU from consecutive byte accesses, least significant byte first.
type Memory interface {
	Read(address uint32) (uint8, error)
	Write(address uint32, data uint8) error
}

// AddressError is the curated error pattern returned by Memory implementations
// when an address is outside of the memory range. There is no memory mapping
// and so no mirroring: an out of range address is always a fault.
const AddressError = "memory: address out of range (0x%08x)"

// Ports defines the port I/O operations available to the CPU. Port addresses
// are 16 bits wide and every transfer is a single byte.
type Ports interface {
	In(port uint16) (uint8, error)
	Out(port uint16, data uint8) error
}
