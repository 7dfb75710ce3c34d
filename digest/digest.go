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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gopher86/hardware/cpu"
	"github.com/jetsetilly/gopher86/hardware/cpu/registers"
)

// Digest implementations create a hash of the emulation.
type Digest interface {
	Hash() string
	ResetDigest()
}

// length of the state data added to the digest after every instruction:
// address, opcode, EIP, the eight registers and EFLAGS
const stateLen = 4 + 1 + 4 + int(registers.NumRegisters)*4 + 4

// Execution is an implementation of the Digest interface that chains the
// state of the CPU after every instruction.
type Execution struct {
	digest [sha1.Size]byte

	// the previous digest followed by the state data
	buf []byte

	// the number of instructions added to the digest
	Count int
}

// NewExecution is the preferred method of initialisation for the Execution
// type.
func NewExecution() *Execution {
	return &Execution{
		buf: make([]byte, sha1.Size+stateLen),
	}
}

// Hash implements the Digest interface.
func (dig *Execution) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Execution) ResetDigest() {
	clear(dig.digest[:])
	dig.Count = 0
}

// Update the digest with the state of the CPU. Should be called after every
// instruction.
func (dig *Execution) Update(mc *cpu.CPU) {
	n := copy(dig.buf, dig.digest[:])

	binary.LittleEndian.PutUint32(dig.buf[n:], mc.LastResult.Address)
	n += 4
	dig.buf[n] = mc.LastResult.OpCode
	n++
	binary.LittleEndian.PutUint32(dig.buf[n:], mc.EIP.Address())
	n += 4
	for r := registers.EAX; r < registers.NumRegisters; r++ {
		binary.LittleEndian.PutUint32(dig.buf[n:], mc.Regs.Get(r))
		n += 4
	}
	binary.LittleEndian.PutUint32(dig.buf[n:], mc.Flags.Value())

	dig.digest = sha1.Sum(dig.buf)
	dig.Count++
}
