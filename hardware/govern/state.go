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

package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// EmulatorStart is the default state and should never be entered once the
// emulator has begun.
//
// Halted is entered when the instruction pointer reaches the halt address.
// Ending is used to request that the emulation stop for any other reason.
const (
	EmulatorStart State = iota
	Initialising
	Paused
	Stepping
	Running
	Halted
	Ending
)

var stateNames = [...]string{
	EmulatorStart: "EmulatorStart",
	Initialising:  "Initialising",
	Paused:        "Paused",
	Stepping:      "Stepping",
	Running:       "Running",
	Halted:        "Halted",
	Ending:        "Ending",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return ""
	}
	return stateNames[s]
}

// Stopped returns true if the state indicates that no more instructions
// should be executed.
func (s State) Stopped() bool {
	return s == Halted || s == Ending
}
