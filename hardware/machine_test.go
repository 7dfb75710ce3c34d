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

package hardware_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/hardware"
	"github.com/jetsetilly/gopher86/hardware/cpu"
	"github.com/jetsetilly/gopher86/hardware/cpu/registers"
	"github.com/jetsetilly/gopher86/hardware/govern"
	"github.com/jetsetilly/gopher86/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher86/hardware/preferences"
	"github.com/jetsetilly/gopher86/logger"
	"github.com/jetsetilly/gopher86/prefs"
	"github.com/jetsetilly/gopher86/programloader"
	"github.com/jetsetilly/gopher86/test"
)

func newMachine(t *testing.T, program []uint8, input string) (*hardware.Machine, *test.CompareWriter) {
	t.Helper()

	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	out := &test.CompareWriter{}
	m, err := hardware.NewMachine(p, strings.NewReader(input), out)
	test.DemandSuccess(t, err)

	ld := programloader.NewLoaderFromData("test", program)
	test.DemandSuccess(t, m.AttachProgram(&ld))

	return m, out
}

// mov eax, 41
// jmp 0
var movThenHalt = []uint8{
	0xb8, 0x29, 0x00, 0x00, 0x00,
	0xe9, 0xf6, 0x83, 0xff, 0xff,
}

func TestMovThenHalt(t *testing.T) {
	m, _ := newMachine(t, movThenHalt, "")

	test.ExpectEquality(t, m.CPU.EIP.Address(), uint32(0x7c00))
	test.ExpectEquality(t, m.CPU.Regs.Get(registers.ESP), uint32(0x7c00))

	state, err := m.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Halted)
	test.ExpectSuccess(t, m.CPU.Halted())
	test.ExpectEquality(t, m.CPU.Regs.Get(registers.EAX), uint32(41))
	test.ExpectEquality(t, m.InstructionCount, 2)

	// running a halted machine does nothing
	state, err = m.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Halted)
	test.ExpectEquality(t, m.InstructionCount, 2)
}

//	    push 2
//	    push 5
//	    call add
//	    add esp, 8
//	    jmp 0
//	add:
//	    push ebp
//	    mov ebp, esp
//	    mov edx, [ebp+8]
//	    mov eax, [ebp+12]
//	    add eax, edx
//	    mov esp, ebp
//	    pop ebp
//	    ret
var callWithArguments = []uint8{
	0x6a, 0x02,
	0x6a, 0x05,
	0xe8, 0x08, 0x00, 0x00, 0x00,
	0x83, 0xc4, 0x08,
	0xe9, 0xef, 0x83, 0xff, 0xff,
	0x55,
	0x89, 0xe5,
	0x8b, 0x55, 0x08,
	0x8b, 0x45, 0x0c,
	0x01, 0xd0,
	0x89, 0xec,
	0x5d,
	0xc3,
}

func TestCallWithArguments(t *testing.T) {
	m, _ := newMachine(t, callWithArguments, "")

	state, err := m.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Halted)

	test.ExpectEquality(t, m.CPU.Regs.Get(registers.EAX), uint32(7))
	test.ExpectEquality(t, m.CPU.Regs.Get(registers.EDX), uint32(5))
	test.ExpectEquality(t, m.CPU.Regs.Get(registers.ESP), uint32(0x7c00))
	test.ExpectEquality(t, m.CPU.Regs.Get(registers.EBP), uint32(0))
	test.ExpectEquality(t, m.InstructionCount, 13)

	// the return address is left on the stack below the arguments
	v, err := m.Mem.Peek(0x7c00 - 12)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x09))
}

//	    mov edx, 0x3f8
//	loop:
//	    in al, dx
//	    cmp al, 0xff
//	    jz done
//	    out dx, al
//	    jmp loop
//	done:
//	    jmp 0
var echo = []uint8{
	0xba, 0xf8, 0x03, 0x00, 0x00,
	0xec,
	0x3c, 0xff,
	0x74, 0x03,
	0xee,
	0xeb, 0xf8,
	0xe9, 0xee, 0x83, 0xff, 0xff,
}

func TestConsoleEcho(t *testing.T) {
	m, out := newMachine(t, echo, "hello")

	state, err := m.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Halted)
	test.ExpectEquality(t, out.String(), "hello")
}

func TestStep(t *testing.T) {
	m, _ := newMachine(t, movThenHalt, "")

	r, err := m.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Mnemonic, "MOV")
	test.ExpectEquality(t, r.ByteCount, 5)
	test.ExpectEquality(t, m.CPU.EIP.Address(), uint32(0x7c05))

	r, err = m.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Mnemonic, "JMP")
	test.ExpectSuccess(t, r.Branched)
	test.ExpectSuccess(t, m.CPU.Halted())

	// stepping a halted machine is not an error
	r, err = m.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Mnemonic, "")
	test.ExpectEquality(t, m.InstructionCount, 2)
}

func TestReset(t *testing.T) {
	m, _ := newMachine(t, movThenHalt, "")

	_, err := m.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, m.Mem.Poke(0x7c01, 0x2a))

	// reset restores the original program
	test.ExpectSuccess(t, m.Reset())
	test.ExpectEquality(t, m.CPU.EIP.Address(), uint32(0x7c00))
	test.ExpectEquality(t, m.CPU.Regs.Get(registers.EAX), uint32(0))
	test.ExpectEquality(t, m.InstructionCount, 0)

	_, err = m.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.CPU.Regs.Get(registers.EAX), uint32(41))
}

func TestInstructionLimit(t *testing.T) {
	// jmp $
	m, _ := newMachine(t, []uint8{0xeb, 0xfe}, "")
	test.DemandSuccess(t, m.Prefs.InstructionLimit.Set(100))

	state, err := m.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Ending)
	test.ExpectEquality(t, m.InstructionCount, 100)
	test.ExpectFailure(t, m.CPU.Halted())
}

func TestContinueCheck(t *testing.T) {
	m, _ := newMachine(t, []uint8{0xeb, 0xfe}, "")

	var n int
	state, err := m.Run(func() (govern.State, error) {
		n++
		if n >= hardware.PerformanceBrake {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Ending)
	test.ExpectEquality(t, m.InstructionCount, hardware.PerformanceBrake)

	// an unsupported state is an error
	_, err = m.Run(func() (govern.State, error) {
		return govern.Stepping, nil
	})
	test.ExpectFailure(t, err)
}

func TestUnimplementedInstruction(t *testing.T) {
	m, _ := newMachine(t, []uint8{0x90, 0x0f}, "")

	state, err := m.Run(nil)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, state, govern.Ending)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnimplementedInstruction))
	test.ExpectEquality(t, m.CPU.LastResult.Address, uint32(0x7c01))
	test.ExpectEquality(t, m.InstructionCount, 1)
}

func TestRunOffEndOfMemory(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.MemorySize.Set(0x7c02))

	m, err := hardware.NewMachine(p, nil, nil)
	test.DemandSuccess(t, err)

	// two NOPs fill the end of memory
	ld := programloader.NewLoaderFromData("nops", []uint8{0x90, 0x90})
	test.DemandSuccess(t, m.AttachProgram(&ld))

	_, err = m.Run(nil)
	test.ExpectSuccess(t, curated.Is(err, cpubus.AddressError))
	test.ExpectEquality(t, m.InstructionCount, 2)

	// a program that does not fit in memory cannot be attached
	ld = programloader.NewLoaderFromData("big", make([]uint8, 3))
	test.ExpectFailure(t, m.AttachProgram(&ld))
	test.ExpectSuccess(t, m.HasProgram())
}

func TestTrace(t *testing.T) {
	m, _ := newMachine(t, movThenHalt, "")

	logger.Clear()
	_, err := m.Step()
	test.ExpectSuccess(t, err)
	w := &test.CompareWriter{}
	logger.Write(w)
	test.ExpectFailure(t, w.Contains("trace: "))

	m.Trace = true
	_, err = m.Step()
	test.ExpectSuccess(t, err)
	w.Clear()
	logger.Write(w)
	test.ExpectSuccess(t, w.Contains("trace: "))
	test.ExpectSuccess(t, w.Contains("machine: halted after 2 instructions"))
}

func TestStartAtHaltAddress(t *testing.T) {
	prefs.PushCommandLineStack("hardware.cpu.eip::0; hardware.load.origin::0")
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	prefs.PopCommandLineStack()
	test.DemandSuccess(t, err)

	m, err := hardware.NewMachine(p, nil, nil)
	test.DemandSuccess(t, err)

	// mov eax, 41
	// jmp 0
	ld := programloader.NewLoaderFromData("origin zero", []uint8{
		0xb8, 0x29, 0x00, 0x00, 0x00,
		0xe9, 0xf6, 0xff, 0xff, 0xff,
	})
	ld.Origin = preferences.Uint32(p.LoadOrigin)
	test.DemandSuccess(t, m.AttachProgram(&ld))

	// the EIP is at the halt address but nothing has been executed yet
	test.ExpectEquality(t, m.CPU.EIP.Address(), uint32(0))
	test.ExpectSuccess(t, m.CPU.Halted())
	test.ExpectFailure(t, m.Halted())

	state, err := m.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Halted)
	test.ExpectSuccess(t, m.Halted())
	test.ExpectEquality(t, m.InstructionCount, 2)
	test.ExpectEquality(t, m.CPU.Regs.Get(registers.EAX), uint32(41))

	// a reset machine at the halt address can be run again
	test.ExpectSuccess(t, m.Reset())
	test.ExpectFailure(t, m.Halted())
	_, err = m.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.CPU.EIP.Address(), uint32(5))
}
