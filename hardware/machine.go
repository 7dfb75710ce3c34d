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

package hardware

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/digest"
	"github.com/jetsetilly/gopher86/hardware/cpu"
	"github.com/jetsetilly/gopher86/hardware/memory"
	"github.com/jetsetilly/gopher86/hardware/ports"
	"github.com/jetsetilly/gopher86/hardware/preferences"
	"github.com/jetsetilly/gopher86/logger"
	"github.com/jetsetilly/gopher86/programloader"
)

// Curated error patterns returned by the Machine type.
const (
	MachineError = "machine: %v"
	NoProgram    = "machine: no program attached"
)

// Machine is the main container for the emulated components.
type Machine struct {
	Prefs *preferences.Preferences

	CPU   *cpu.CPU
	Mem   *memory.Memory
	Ports *ports.Bus

	// the console is also attached to the port bus at ports.ConsolePort
	Console *ports.Console

	// log every executed instruction
	Trace bool

	// if not nil the digest is updated after every instruction. the digest is
	// reset on every call to Reset()
	Digest *digest.Execution

	// number of instructions executed since the last reset
	InstructionCount int

	// the attached program. reloaded into memory on every Reset()
	program *programloader.Loader
}

// NewMachine creates a new Machine and everything associated with the
// hardware. The size of memory is taken from the preferences and cannot be
// changed once the Machine has been created.
//
// The in and out arguments are used by the console. Either can be nil.
func NewMachine(prefs *preferences.Preferences, in io.Reader, out io.Writer) (*Machine, error) {
	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, curated.Errorf(MachineError, err)
		}
	}

	m := &Machine{
		Prefs:   prefs,
		Ports:   ports.NewBus(),
		Console: ports.NewConsole(in, out),
	}

	var err error

	m.Mem, err = memory.NewMemory(prefs.MemorySize.Get().(int))
	if err != nil {
		return nil, curated.Errorf(MachineError, err)
	}

	m.Ports.Attach(ports.ConsolePort, m.Console)
	m.CPU = cpu.NewCPU(m.Mem, m.Ports)

	err = m.Reset()
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s [%d instructions]", m.CPU, m.InstructionCount)
}

// AttachProgram loads the program and copies it into memory. The machine is
// reset as part of the process. If the program cannot be attached the
// previous program (if any) remains attached.
func (m *Machine) AttachProgram(ld *programloader.Loader) error {
	err := ld.Load()
	if err != nil {
		return err
	}

	prev := m.program
	m.program = ld

	err = m.Reset()
	if err != nil {
		// restore the previously attached program
		m.program = prev
		_ = m.Reset()
		return err
	}

	logger.Logf(logger.Allow, "machine", "attached %s", ld)

	return nil
}

// Reset the machine:
//   - clear memory
//   - copy the attached program (if any) into memory
//   - reset the CPU and load the EIP and ESP from the preferences
func (m *Machine) Reset() error {
	m.Mem.Clear()

	if m.program != nil {
		err := m.Mem.Load(m.program.Origin, m.program.Data)
		if err != nil {
			return curated.Errorf(MachineError, err)
		}
	}

	eip := preferences.Uint32(m.Prefs.EIP)
	esp := preferences.Uint32(m.Prefs.ESP)
	m.CPU.Reset(eip, esp)
	m.InstructionCount = 0

	if m.Digest != nil {
		m.Digest.ResetDigest()
	}

	logger.Logf(logger.Allow, "machine", "reset (EIP=%08x ESP=%08x)", eip, esp)

	return nil
}

// Halted returns true once an instruction has left the EIP at the halt
// address. A program that starts at the halt address is not halted until it
// has executed at least one instruction.
func (m *Machine) Halted() bool {
	return m.InstructionCount > 0 && m.CPU.Halted()
}

// HasProgram returns true if a program has been attached.
func (m *Machine) HasProgram() bool {
	return m.program != nil
}
