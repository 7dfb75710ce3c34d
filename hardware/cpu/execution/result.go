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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher86/hardware/cpu/instructions"
)

// Result records the execution of a single instruction.
type Result struct {
	// address of the opcode
	Address uint32

	// nil if the opcode has no definition
	Defn *instructions.Definition

	// the opcode byte. valid even when Defn is nil
	OpCode uint8

	// the mnemonic actually executed. for grouped instructions this is the
	// mnemonic of the extension
	Mnemonic string

	// number of bytes the instruction occupied
	ByteCount int

	// whether a flow instruction changed the EIP to something other than the
	// following instruction
	Branched bool

	// whether the instruction completed
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%08x  db 0x%02x", r.Address, r.OpCode)
	}

	m := r.Mnemonic
	if m == "" {
		m = r.Defn.Mnemonic
	}

	s := fmt.Sprintf("%08x  %s", r.Address, m)
	if r.Defn.Operands != "" {
		s = fmt.Sprintf("%s %s", s, r.Defn.Operands)
	}
	if r.Final {
		s = fmt.Sprintf("%s (%d bytes)", s, r.ByteCount)
	}
	if r.Branched {
		s = fmt.Sprintf("%s *", s)
	}
	return s
}

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return fmt.Errorf("cpu: execution has no instruction definition")
	}

	if r.Defn.OpCode != r.OpCode {
		return fmt.Errorf("cpu: opcode does not match definition (%02x instead of %02x)", r.OpCode, r.Defn.OpCode)
	}

	if r.ByteCount < r.Defn.MinBytes() || r.ByteCount > r.Defn.MaxBytes() {
		return fmt.Errorf("cpu: unexpected number of bytes read during decode (%d outside %d to %d)",
			r.ByteCount, r.Defn.MinBytes(), r.Defn.MaxBytes())
	}

	if r.Branched && r.Defn.Effect != instructions.Flow && r.Defn.Effect != instructions.Subroutine {
		return fmt.Errorf("cpu: %s is not a flow instruction but has branched", r.Defn.Mnemonic)
	}

	return nil
}
