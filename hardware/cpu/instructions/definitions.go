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

package instructions

import (
	"fmt"
	"sort"
	"strings"
)

// Operand tokens used in the Operands field of a Definition.
const (
	OperandRM32  = "r/m32"
	OperandRM8   = "r/m8"
	OperandR32   = "r32"
	OperandR8    = "r8"
	OperandImm8  = "imm8"
	OperandImm32 = "imm32"
	OperandRel8  = "rel8"
	OperandRel32 = "rel32"
)

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode   uint8
	Mnemonic string

	// comma separated list of operand tokens in Intel order (destination
	// first). tokens that aren't one of the Operand* constants are fixed
	// register names, eg. AL or DX
	Operands string

	Form   Form
	Effect Category

	// for Grouped instructions, the mnemonic of the operation selected by
	// the Reg field of the ModRM byte. a missing entry is an unimplemented
	// extension
	Extensions map[uint8]string
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%02x %s", defn.OpCode, defn.Mnemonic))
	if defn.Operands != "" {
		s.WriteString(fmt.Sprintf(" %s", defn.Operands))
	}
	s.WriteString(fmt.Sprintf(" [form=%s effect=%s]", defn.Form, defn.Effect))
	if len(defn.Extensions) > 0 {
		keys := make([]int, 0, len(defn.Extensions))
		for k := range defn.Extensions {
			keys = append(keys, int(k))
		}
		sort.Ints(keys)
		ext := make([]string, 0, len(keys))
		for _, k := range keys {
			ext = append(ext, fmt.Sprintf("/%d=%s", k, defn.Extensions[uint8(k)]))
		}
		s.WriteString(fmt.Sprintf(" {%s}", strings.Join(ext, " ")))
	}
	return s.String()
}

// OperandTokens returns the operands field split into tokens.
func (defn Definition) OperandTokens() []string {
	if defn.Operands == "" {
		return nil
	}
	t := strings.Split(defn.Operands, ",")
	for i := range t {
		t[i] = strings.TrimSpace(t[i])
	}
	return t
}

// HasModRM returns true if a ModRM byte follows the opcode.
func (defn Definition) HasModRM() bool {
	return defn.Form == WithModRM || defn.Form == Grouped
}

// ImmediateBytes returns the number of immediate and relative offset bytes
// that follow the opcode, the ModRM byte and its displacement.
func (defn Definition) ImmediateBytes() int {
	var n int
	for _, t := range defn.OperandTokens() {
		switch t {
		case OperandImm8, OperandRel8:
			n++
		case OperandImm32, OperandRel32:
			n += 4
		}
	}
	return n
}

// MinBytes returns the smallest number of bytes an instance of the
// instruction can occupy.
func (defn Definition) MinBytes() int {
	n := 1 + defn.ImmediateBytes()
	if defn.HasModRM() {
		n++
	}
	return n
}

// MaxBytes returns the largest number of bytes an instance of the
// instruction can occupy.
func (defn Definition) MaxBytes() int {
	n := defn.MinBytes()
	if defn.HasModRM() {
		// SIB byte and a 32-bit displacement
		n += 5
	}
	return n
}

// ExtensionMnemonic returns the mnemonic selected by the Reg field of a ModRM
// byte. For instructions that are not Grouped the Mnemonic field is returned.
func (defn Definition) ExtensionMnemonic(reg uint8) (string, bool) {
	if defn.Form != Grouped {
		return defn.Mnemonic, true
	}
	m, ok := defn.Extensions[reg]
	return m, ok
}

// IsBranch returns true if instruction is a conditional jump.
func (defn Definition) IsBranch() bool {
	return defn.Effect == Flow && strings.HasPrefix(defn.Mnemonic, "J") && defn.Mnemonic != "JMP"
}

// conditional jumps in opcode order from 0x70. an empty string is an opcode
// that isn't supported
var branchMnemonics = [16]string{
	"JO", "JNO", "JC", "JNC", "JZ", "JNZ", "JBE", "JA",
	"JS", "JNS", "", "", "JL", "JGE", "JLE", "JG",
}

var definitions []*Definition

// GetDefinitions returns the table of instruction definitions indexed by
// opcode. Unimplemented opcodes have a nil entry. The table is shared and
// should not be modified.
func GetDefinitions() []*Definition {
	return definitions
}

func init() {
	definitions = make([]*Definition, 256)

	add := func(opcode uint8, mnemonic string, operands string, form Form, effect Category) *Definition {
		d := &Definition{
			OpCode:   opcode,
			Mnemonic: mnemonic,
			Operands: operands,
			Form:     form,
			Effect:   effect,
		}
		definitions[opcode] = d
		return d
	}

	add(0x01, "ADD", "r/m32, r32", WithModRM, Modify)
	add(0x03, "ADD", "r32, r/m32", WithModRM, Modify)
	add(0x29, "SUB", "r/m32, r32", WithModRM, Modify)
	add(0x2b, "SUB", "r32, r/m32", WithModRM, Modify)
	add(0x39, "CMP", "r/m32, r32", WithModRM, Read)
	add(0x3b, "CMP", "r32, r/m32", WithModRM, Read)
	add(0x3c, "CMP", "AL, imm8", Implied, Read)
	add(0x3d, "CMP", "EAX, imm32", Implied, Read)

	for r := uint8(0); r < 8; r++ {
		add(0x40+r, "INC", "r32", RegisterInOpcode, Modify)
		add(0x48+r, "DEC", "r32", RegisterInOpcode, Modify)
		add(0x50+r, "PUSH", "r32", RegisterInOpcode, Stack)
		add(0x58+r, "POP", "r32", RegisterInOpcode, Stack)
		add(0xb0+r, "MOV", "r8, imm8", RegisterInOpcode, Write)
		add(0xb8+r, "MOV", "r32, imm32", RegisterInOpcode, Write)
	}

	add(0x68, "PUSH", "imm32", Implied, Stack)
	add(0x6a, "PUSH", "imm8", Implied, Stack)

	for i, m := range branchMnemonics {
		if m != "" {
			add(0x70+uint8(i), m, "rel8", Implied, Flow)
		}
	}

	grp1 := add(0x83, "GRP1", "r/m32, imm8", Grouped, Modify)
	grp1.Extensions = map[uint8]string{0: "ADD", 5: "SUB", 7: "CMP"}

	add(0x88, "MOV", "r/m8, r8", WithModRM, Write)
	add(0x89, "MOV", "r/m32, r32", WithModRM, Write)
	add(0x8a, "MOV", "r8, r/m8", WithModRM, Read)
	add(0x8b, "MOV", "r32, r/m32", WithModRM, Read)
	add(0x90, "NOP", "", Implied, Read)

	add(0xc3, "RET", "", Implied, Subroutine)

	grp11 := add(0xc6, "GRP11", "r/m8, imm8", Grouped, Write)
	grp11.Extensions = map[uint8]string{0: "MOV"}
	grp11 = add(0xc7, "GRP11", "r/m32, imm32", Grouped, Write)
	grp11.Extensions = map[uint8]string{0: "MOV"}

	add(0xc9, "LEAVE", "", Implied, Stack)
	add(0xe8, "CALL", "rel32", Implied, Subroutine)
	add(0xe9, "JMP", "rel32", Implied, Flow)
	add(0xeb, "JMP", "rel8", Implied, Flow)
	add(0xec, "IN", "AL, DX", Implied, IO)
	add(0xee, "OUT", "DX, AL", Implied, IO)

	grp5 := add(0xff, "GRP5", "r/m32", Grouped, Modify)
	grp5.Extensions = map[uint8]string{0: "INC", 1: "DEC"}
}
