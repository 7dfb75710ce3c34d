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

package disassembly

import (
	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher86/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher86/programloader"
)

// DisasmError is the curated error pattern for all errors returned by the
// disassembly package.
const DisasmError = "disassembly: %v"

// Peeker is the interface required by FromMemory(). It is satisfied by the
// memory.Memory type.
type Peeker interface {
	Peek(address uint32) (uint8, error)
}

// Disassembly represents the linear disassembly of a region of memory.
type Disassembly struct {
	Origin uint32
	Length int

	entries []*Entry

	// indexed by address
	byAddress map[uint32]*Entry

	// addresses that are the target of a jump or a call
	targets map[uint32]bool
}

// FromMemory disassembles length bytes starting at origin.
func FromMemory(mem Peeker, origin uint32, length int) (*Disassembly, error) {
	if length <= 0 {
		return nil, curated.Errorf(DisasmError, "nothing to disassemble")
	}

	end := uint64(origin) + uint64(length)

	src := func(address uint32) (uint8, error) {
		if uint64(address) >= end || address < origin {
			return 0, curated.Errorf(cpubus.AddressError, address)
		}
		return mem.Peek(address)
	}

	dsm := &Disassembly{
		Origin:    origin,
		Length:    length,
		byAddress: make(map[uint32]*Entry),
		targets:   make(map[uint32]bool),
	}

	err := dsm.linear(src)
	if err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}

	return dsm, nil
}

// FromLoader disassembles the program specified by the loader. Addresses in
// the disassembly start from the loader's origin.
func FromLoader(ld *programloader.Loader) (*Disassembly, error) {
	err := ld.Load()
	if err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}
	return FromMemory(program{ld}, ld.Origin, len(ld.Data))
}

// program satisfies the Peeker interface for data that has been loaded but
// not attached to a machine.
type program struct {
	ld *programloader.Loader
}

func (p program) Peek(address uint32) (uint8, error) {
	idx := uint64(address) - uint64(p.ld.Origin)
	if address < p.ld.Origin || idx >= uint64(len(p.ld.Data)) {
		return 0, curated.Errorf(cpubus.AddressError, address)
	}
	return p.ld.Data[idx], nil
}

func (dsm *Disassembly) linear(src source) error {
	defns := instructions.GetDefinitions()

	end := uint64(dsm.Origin) + uint64(dsm.Length)
	address := uint64(dsm.Origin)

	for address < end {
		e, err := decode(src, defns, uint32(address))
		if err != nil {
			return err
		}

		dsm.entries = append(dsm.entries, e)
		dsm.byAddress[e.Address] = e
		if e.HasTarget {
			dsm.targets[e.Target] = true
		}

		address += uint64(len(e.Bytes))
	}

	return nil
}

// Len returns the number of entries in the disassembly.
func (dsm *Disassembly) Len() int {
	return len(dsm.entries)
}

// Entries returns all entries in address order. The slice should not be
// modified.
func (dsm *Disassembly) Entries() []*Entry {
	return dsm.entries
}

// GetEntryByAddress returns the entry that starts at the address.
func (dsm *Disassembly) GetEntryByAddress(address uint32) (*Entry, bool) {
	e, ok := dsm.byAddress[address]
	return e, ok
}

// IsTarget returns true if the address is the destination of a jump or a
// call instruction somewhere in the disassembly.
func (dsm *Disassembly) IsTarget(address uint32) bool {
	return dsm.targets[address]
}
