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
	"github.com/jetsetilly/gopher86/hardware/cpu/execution"
	"github.com/jetsetilly/gopher86/logger"
)

// tracer permits logging of executed instructions when Machine.Trace is set.
type tracer struct {
	m *Machine
}

func (t tracer) AllowLogging() bool {
	return t.m.Trace
}

// Step the emulation forward one CPU instruction. The result of the
// instruction is returned even if there was an error, in which case the
// result will not be marked as final.
//
// Step does nothing if the machine has halted.
func (m *Machine) Step() (execution.Result, error) {
	if m.Halted() {
		return execution.Result{}, nil
	}

	err := m.CPU.ExecuteInstruction()
	if err != nil {
		return m.CPU.LastResult, err
	}

	m.InstructionCount++

	if m.Digest != nil {
		m.Digest.Update(m.CPU)
	}

	logger.Log(tracer{m}, "trace", m.CPU.LastResult)

	if m.Halted() {
		logger.Logf(logger.Allow, "machine", "halted after %d instructions", m.InstructionCount)
	}

	return m.CPU.LastResult, nil
}
