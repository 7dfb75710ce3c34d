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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher86/hardware/cpu/instructions"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Address uint32
	Bytes   []uint8

	// nil if the bytes could not be decoded
	Defn *instructions.Definition

	// the mnemonic is the extension mnemonic in the case of grouped
	// instructions. for undecoded bytes the mnemonic is "db"
	Mnemonic string
	Operand  string

	// the destination of jump and call instructions. only valid if HasTarget
	// is true
	Target    uint32
	HasTarget bool
}

// Bytecode returns the bytes of the instruction as a string of hex values.
func (e Entry) Bytecode() string {
	s := strings.Builder{}
	for i, b := range e.Bytes {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", b))
	}
	return s.String()
}

// Decoded returns false if the entry is a "db" entry.
func (e Entry) Decoded() bool {
	return e.Defn != nil
}

func (e Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%08x  %s", e.Address, e.Mnemonic)
	}
	return fmt.Sprintf("%08x  %s %s", e.Address, e.Mnemonic, e.Operand)
}
