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
	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/hardware/govern"
	"github.com/jetsetilly/gopher86/logger"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. Execution stops when
// the CPU halts, when the instruction limit in the preferences is reached or
// when continueCheck() returns a State that is not Running or Paused.
//
// The State returned is Halted if the CPU has halted and Ending otherwise.
func (m *Machine) Run(continueCheck func() (govern.State, error)) (govern.State, error) {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	limit := m.Prefs.InstructionLimit.Get().(int)

	var err error

	state := govern.Running

	for !state.Stopped() {
		if m.Halted() {
			return govern.Halted, nil
		}

		switch state {
		case govern.Running:
			if limit > 0 && m.InstructionCount >= limit {
				logger.Logf(logger.Allow, "machine", "instruction limit reached (%d)", limit)
				return govern.Ending, nil
			}
			_, err = m.Step()
			if err != nil {
				return govern.Ending, err
			}
		case govern.Paused:
		default:
			return govern.Ending, curated.Errorf("machine: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return govern.Ending, err
		}
	}

	if m.Halted() {
		return govern.Halted, nil
	}

	return state, nil
}
