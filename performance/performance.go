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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/hardware"
	"github.com/jetsetilly/gopher86/hardware/govern"
)

// Measurement is the number of instructions executed over a period of time.
type Measurement struct {
	Instructions int
	Duration     time.Duration
}

// IPS returns the number of instructions executed per second.
func (m Measurement) IPS() float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.Instructions) / m.Duration.Seconds()
}

func (m Measurement) String() string {
	return fmt.Sprintf("%d instructions in %.2f seconds (%.2f MIPS)", m.Instructions, m.Duration.Seconds(), m.IPS()/1000000)
}

// Check the performance of the emulator by running the machine for the
// specified duration. The machine must have a program attached.
//
// Emulation will create a cpu and/or memory profile as defined by the Profile
// argument.
func Check(output io.Writer, profile Profile, m *hardware.Machine, duration string) (Measurement, error) {
	var meas Measurement

	if !m.HasProgram() {
		return meas, curated.Errorf("performance: %v", "no program attached")
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return meas, curated.Errorf("performance: %v", err)
	}

	runner := func() error {
		startTime := time.Now()
		defer func() {
			meas.Duration = time.Since(startTime)
		}()

		timer := time.NewTimer(dur)
		defer timer.Stop()

		expired := false

		// only check for the end of the measurement period every
		// PerformanceBrake instructions
		performanceBrake := 0

		continueCheck := func() (govern.State, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0
				select {
				case <-timer.C:
					expired = true
					return govern.Ending, nil
				default:
				}
			}
			return govern.Running, nil
		}

		for !expired {
			state, err := m.Run(continueCheck)
			meas.Instructions += m.InstructionCount
			if err != nil {
				return err
			}

			if state != govern.Halted {
				// stopped because of the instruction limit
				return nil
			}

			err = m.Reset()
			if err != nil {
				return err
			}
		}

		return nil
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return meas, curated.Errorf("performance: %v", err)
	}

	if output != nil {
		fmt.Fprintln(output, meas)
	}

	return meas, nil
}
