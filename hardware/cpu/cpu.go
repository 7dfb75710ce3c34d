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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/hardware/cpu/execution"
	"github.com/jetsetilly/gopher86/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher86/hardware/cpu/registers"
	"github.com/jetsetilly/gopher86/hardware/memory/cpubus"
)

// Curated error patterns returned by ExecuteInstruction().
//
// UnimplementedInstruction is raised before any operand has been fetched so
// it reports only the opcode and address. The other two patterns are raised
// after the ModRM byte has been decoded and so include its fields.
const (
	UnimplementedInstruction = "cpu: unimplemented instruction (opcode %02x) at %08x"
	UnimplementedAddressing  = "cpu: unimplemented addressing mode (mod=%d reg=%d rm=%d) at %08x"
	UnimplementedExtension   = "cpu: unimplemented instruction (opcode %02x /%d, mod=%d rm=%d) at %08x"
)

// CPU implements a 32-bit x86-like processor. Register logic is implemented
// by the types in the registers sub-package.
type CPU struct {
	Regs  registers.File
	EIP   registers.InstructionPointer
	Flags registers.Flags

	mem   cpubus.Memory
	ports cpubus.Ports

	instructions []*instructions.Definition

	// indexed by opcode. a nil entry is an unimplemented instruction
	handlers [256]func() error

	// last result. valid after every call to ExecuteInstruction(), even if
	// there was an error
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU type. All
// registers and the EIP are zero, meaning the CPU is halted until Reset() is
// called.
func NewCPU(mem cpubus.Memory, ports cpubus.Ports) *CPU {
	mc := &CPU{
		Regs:         registers.NewFile(),
		EIP:          registers.NewInstructionPointer(0),
		Flags:        registers.NewFlags(),
		mem:          mem,
		ports:        ports,
		instructions: instructions.GetDefinitions(),
	}
	mc.bindHandlers()
	return mc
}

// Plumb a new memory and port bus into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory, ports cpubus.Ports) {
	mc.mem = mem
	mc.ports = ports
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s=%s", mc.EIP.Label(), mc.EIP, mc.Regs, mc.Flags.Label(), mc.Flags)
}

// Reset clears all registers and flags. The EIP and the ESP register are then
// loaded with the supplied values.
func (mc *CPU) Reset(eip uint32, esp uint32) {
	mc.LastResult.Reset()
	mc.Regs.Reset()
	mc.Flags.Reset()
	mc.Regs.Set(registers.ESP, esp)
	mc.EIP.Load(eip)
}

// Halted returns true if the EIP is at the halt address.
func (mc *CPU) Halted() bool {
	return mc.EIP.Address() == 0
}

// ExecuteInstruction steps the CPU forward one instruction. The basic process
// when executing an instruction is this:
//
//  1. read opcode and look up the handler for the opcode
//  2. the handler reads the operands (if any) that follow the opcode
//  3. the handler performs the instruction and advances the EIP
//
// ExecuteInstruction() does not check whether the CPU is halted. It is up to
// the caller to stop executing instructions once Halted() returns true.
func (mc *CPU) ExecuteInstruction() error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.EIP.Address()

	opcode, err := mc.fetch8(0)
	if err != nil {
		return err
	}

	mc.LastResult.OpCode = opcode
	mc.LastResult.Defn = mc.instructions[opcode]

	h := mc.handlers[opcode]
	if h == nil {
		return curated.Errorf(UnimplementedInstruction, opcode, mc.LastResult.Address)
	}

	if mc.LastResult.Defn != nil {
		mc.LastResult.Mnemonic = mc.LastResult.Defn.Mnemonic
	}

	err = h()
	if err != nil {
		return err
	}

	mc.LastResult.Final = true

	return nil
}

// extension returns the mnemonic selected by the Reg field of a ModRM byte for
// the current instruction. Returns an UnimplementedExtension error if there is
// no mnemonic.
func (mc *CPU) extension(m instructions.ModRM) error {
	if mc.LastResult.Defn != nil {
		if mn, ok := mc.LastResult.Defn.ExtensionMnemonic(m.Reg); ok {
			mc.LastResult.Mnemonic = mn
			return nil
		}
	}
	return curated.Errorf(UnimplementedExtension, mc.LastResult.OpCode, m.Reg, m.Mod, m.RM, mc.LastResult.Address)
}
