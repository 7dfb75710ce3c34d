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
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Labels   bool
}

// the width of the bytecode column. wide enough for an instruction with a
// ModRM byte, a 32-bit displacement and a 32-bit immediate value
const bytecodeWidth = 32

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.entries {
		err := dsm.WriteEntry(output, attr, e)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single Entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	if e == nil {
		return nil
	}

	if attr.Labels && dsm.IsTarget(e.Address) {
		if _, err := fmt.Fprintf(output, "l_%08x:\n", e.Address); err != nil {
			return err
		}
	}

	var s string
	if attr.ByteCode {
		s = fmt.Sprintf("%08x  %-*s %-5s %s", e.Address, bytecodeWidth, e.Bytecode(), e.Mnemonic, e.Operand)
	} else {
		s = fmt.Sprintf("%08x  %-5s %s", e.Address, e.Mnemonic, e.Operand)
	}

	_, err := io.WriteString(output, strings.TrimRight(s, " ")+"\n")
	return err
}
