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

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/disassembly"
	"github.com/jetsetilly/gopher86/hardware"
	"github.com/jetsetilly/gopher86/hardware/cpu/registers"
	"github.com/jetsetilly/gopher86/hardware/govern"
	"github.com/jetsetilly/gopher86/logger"
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is the curated error pattern for errors returned by the
// script package.
const ScriptError = "script: %v"

// Script is a Lua interpreter bound to a machine.
type Script struct {
	L *lua.LState
	m *hardware.Machine

	// destination of the Lua print() function
	output io.Writer
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the script's print() function is sent to output, which can be
// nil.
func NewScript(m *hardware.Machine, output io.Writer) *Script {
	if output == nil {
		output = io.Discard
	}

	scr := &Script{
		L:      lua.NewState(),
		m:      m,
		output: output,
	}
	scr.bind()

	return scr
}

// Close the Lua interpreter. The Script should not be used after Close() has
// been called.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunFile runs the Lua script in the named file.
func (scr *Script) RunFile(filename string) error {
	err := scr.L.DoFile(filename)
	if err != nil {
		return curated.Errorf(ScriptError, errors.Wrapf(err, "running %s", filename))
	}
	return nil
}

// RunString runs the Lua code in the string.
func (scr *Script) RunString(code string) error {
	err := scr.L.DoString(code)
	if err != nil {
		return curated.Errorf(ScriptError, errors.Wrap(err, "running string"))
	}
	return nil
}

func (scr *Script) bind() {
	for name, fn := range map[string]lua.LGFunction{
		"reg":     scr.reg,
		"setreg":  scr.setreg,
		"eip":     scr.eip,
		"seteip":  scr.seteip,
		"flag":    scr.flag,
		"setflag": scr.setflag,
		"peek":    scr.peek,
		"poke":    scr.poke,
		"step":    scr.step,
		"run":     scr.run,
		"halted":  scr.halted,
		"count":   scr.count,
		"reset":   scr.reset,
		"disasm":  scr.disasm,
		"log":     scr.log,
		"print":   scr.print,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}
}

// checkUint32 returns argument n as an unsigned 32-bit value. negative values
// are converted to their two's complement form.
func checkUint32(L *lua.LState, n int) uint32 {
	return uint32(int64(L.CheckNumber(n)))
}

// raise a Lua error for a Go error. does not return.
func raise(L *lua.LState, err error) {
	L.RaiseError("%v", err)
}

func (scr *Script) reg(L *lua.LState) int {
	name := L.CheckString(1)

	if strings.EqualFold(name, scr.m.CPU.EIP.Label()) {
		L.Push(lua.LNumber(scr.m.CPU.EIP.Address()))
		return 1
	}

	if r, ok := registers.RegisterFromName(name); ok {
		L.Push(lua.LNumber(scr.m.CPU.Regs.Get(r)))
		return 1
	}

	if idx, ok := registers.ByteRegisterFromName(name); ok {
		L.Push(lua.LNumber(scr.m.CPU.Regs.Get8(idx)))
		return 1
	}

	L.ArgError(1, fmt.Sprintf("unknown register (%s)", name))
	return 0
}

func (scr *Script) setreg(L *lua.LState) int {
	name := L.CheckString(1)
	v := checkUint32(L, 2)

	if strings.EqualFold(name, scr.m.CPU.EIP.Label()) {
		scr.m.CPU.EIP.Load(v)
		return 0
	}

	if r, ok := registers.RegisterFromName(name); ok {
		scr.m.CPU.Regs.Set(r, v)
		return 0
	}

	if idx, ok := registers.ByteRegisterFromName(name); ok {
		scr.m.CPU.Regs.Set8(idx, uint8(v))
		return 0
	}

	L.ArgError(1, fmt.Sprintf("unknown register (%s)", name))
	return 0
}

func (scr *Script) eip(L *lua.LState) int {
	L.Push(lua.LNumber(scr.m.CPU.EIP.Address()))
	return 1
}

func (scr *Script) seteip(L *lua.LState) int {
	scr.m.CPU.EIP.Load(checkUint32(L, 1))
	return 0
}

// flagPtr returns a pointer to the named flag.
func (scr *Script) flagPtr(L *lua.LState, n int) *bool {
	name := L.CheckString(n)
	switch strings.ToUpper(name) {
	case "C", "CARRY":
		return &scr.m.CPU.Flags.Carry
	case "Z", "ZERO":
		return &scr.m.CPU.Flags.Zero
	case "S", "SIGN":
		return &scr.m.CPU.Flags.Sign
	case "O", "OVERFLOW":
		return &scr.m.CPU.Flags.Overflow
	}
	L.ArgError(n, fmt.Sprintf("unknown flag (%s)", name))
	return nil
}

func (scr *Script) flag(L *lua.LState) int {
	L.Push(lua.LBool(*scr.flagPtr(L, 1)))
	return 1
}

func (scr *Script) setflag(L *lua.LState) int {
	f := scr.flagPtr(L, 1)
	*f = L.ToBool(2)
	return 0
}

func (scr *Script) peek(L *lua.LState) int {
	v, err := scr.m.Mem.Peek(checkUint32(L, 1))
	if err != nil {
		raise(L, err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	err := scr.m.Mem.Poke(checkUint32(L, 1), uint8(checkUint32(L, 2)))
	if err != nil {
		raise(L, err)
	}
	return 0
}

func (scr *Script) step(L *lua.LState) int {
	_, err := scr.m.Step()
	if err != nil {
		raise(L, err)
	}
	L.Push(lua.LBool(!scr.m.Halted()))
	return 1
}

func (scr *Script) run(L *lua.LState) int {
	limit := L.OptInt(1, 0)

	var n int
	state, err := scr.m.Run(func() (govern.State, error) {
		n++
		if limit > 0 && n >= limit {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	if err != nil {
		raise(L, err)
	}

	L.Push(lua.LString(state.String()))
	return 1
}

func (scr *Script) halted(L *lua.LState) int {
	L.Push(lua.LBool(scr.m.Halted()))
	return 1
}

func (scr *Script) count(L *lua.LState) int {
	L.Push(lua.LNumber(scr.m.InstructionCount))
	return 1
}

func (scr *Script) reset(L *lua.LState) int {
	err := scr.m.Reset()
	if err != nil {
		raise(L, err)
	}
	return 0
}

func (scr *Script) disasm(L *lua.LState) int {
	address := checkUint32(L, 1)
	length := L.CheckInt(2)

	dsm, err := disassembly.FromMemory(scr.m.Mem, address, length)
	if err != nil {
		raise(L, err)
	}

	tbl := L.NewTable()
	for _, e := range dsm.Entries() {
		tbl.Append(lua.LString(e.String()))
	}
	L.Push(tbl)

	return 1
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.Get(i).String())
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}
