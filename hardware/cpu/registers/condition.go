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

package registers

import "fmt"

// Condition is a predicate over the flags. Conditional jumps are defined in
// terms of a Condition.
type Condition int

// List of valid Condition values. The order matches the low nibble of the
// short conditional jump opcodes, with the parity conditions removed.
const (
	CondOverflow Condition = iota
	CondNotOverflow
	CondCarry
	CondNotCarry
	CondZero
	CondNotZero
	CondBelowOrEqual
	CondAbove
	CondSign
	CondNotSign
	CondLess
	CondGreaterOrEqual
	CondLessOrEqual
	CondGreater
)

var conditionNames = []string{"O", "NO", "C", "NC", "Z", "NZ", "BE", "A", "S", "NS", "L", "GE", "LE", "G"}

func (c Condition) String() string {
	if c < 0 || int(c) >= len(conditionNames) {
		return fmt.Sprintf("cond(%d)", int(c))
	}
	return conditionNames[c]
}

// Test returns true if the condition holds for the current flags.
func (fl Flags) Test(c Condition) bool {
	switch c {
	case CondOverflow:
		return fl.Overflow
	case CondNotOverflow:
		return !fl.Overflow
	case CondCarry:
		return fl.Carry
	case CondNotCarry:
		return !fl.Carry
	case CondZero:
		return fl.Zero
	case CondNotZero:
		return !fl.Zero
	case CondBelowOrEqual:
		return fl.Carry || fl.Zero
	case CondAbove:
		return !fl.Carry && !fl.Zero
	case CondSign:
		return fl.Sign
	case CondNotSign:
		return !fl.Sign
	case CondLess:
		return fl.Sign != fl.Overflow
	case CondGreaterOrEqual:
		return fl.Sign == fl.Overflow
	case CondLessOrEqual:
		return fl.Zero || fl.Sign != fl.Overflow
	case CondGreater:
		return !fl.Zero && fl.Sign == fl.Overflow
	}
	return false
}
