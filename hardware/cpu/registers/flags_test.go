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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher86/hardware/cpu/registers"
	"github.com/jetsetilly/gopher86/test"
)

func TestFlagsValue(t *testing.T) {
	var fl registers.Flags
	test.ExpectEquality(t, fl.Value(), uint32(0))
	test.ExpectEquality(t, fl.String(), "    ")

	fl.Carry = true
	fl.Overflow = true
	test.ExpectEquality(t, fl.Value(), uint32(0x0801))
	test.ExpectEquality(t, fl.String(), "C  O")

	fl.FromValue(0xffffffff)
	test.ExpectEquality(t, fl.String(), "CZSO")
	test.ExpectEquality(t, fl.Value(), uint32(0x08c1))

	fl.Reset()
	test.ExpectEquality(t, fl.Value(), uint32(0))
}

func TestSubtract32(t *testing.T) {
	var fl registers.Flags

	r := fl.Subtract32(0, 1)
	test.ExpectEquality(t, r, uint32(0xffffffff))
	test.ExpectEquality(t, fl.Carry, true)
	test.ExpectEquality(t, fl.Zero, false)
	test.ExpectEquality(t, fl.Sign, true)
	test.ExpectEquality(t, fl.Overflow, false)

	r = fl.Subtract32(5, 5)
	test.ExpectEquality(t, r, uint32(0))
	test.ExpectEquality(t, fl.Carry, false)
	test.ExpectEquality(t, fl.Zero, true)
	test.ExpectEquality(t, fl.Sign, false)

	// most negative minus one overflows to a positive number
	fl.Subtract32(0x80000000, 1)
	test.ExpectEquality(t, fl.Overflow, true)
	test.ExpectEquality(t, fl.Sign, false)
	test.ExpectEquality(t, fl.Carry, false)

	// positive minus negative overflowing to negative
	fl.Subtract32(0x7fffffff, 0xffffffff)
	test.ExpectEquality(t, fl.Overflow, true)
	test.ExpectEquality(t, fl.Carry, true)
}

func TestSubtract8(t *testing.T) {
	var fl registers.Flags

	r := fl.Subtract8(0x10, 0x20)
	test.ExpectEquality(t, r, uint8(0xf0))
	test.ExpectEquality(t, fl.Carry, true)
	test.ExpectEquality(t, fl.Sign, true)
	test.ExpectEquality(t, fl.Zero, false)

	fl.Subtract8(0x41, 0x41)
	test.ExpectEquality(t, fl.Zero, true)
	test.ExpectEquality(t, fl.Carry, false)

	fl.Subtract8(0x80, 0x01)
	test.ExpectEquality(t, fl.Overflow, true)
}

func TestAdd32(t *testing.T) {
	var fl registers.Flags

	r := fl.Add32(0xffffffff, 1)
	test.ExpectEquality(t, r, uint32(0))
	test.ExpectEquality(t, fl.Carry, true)
	test.ExpectEquality(t, fl.Zero, true)
	test.ExpectEquality(t, fl.Overflow, false)

	r = fl.Add32(0x7fffffff, 1)
	test.ExpectEquality(t, r, uint32(0x80000000))
	test.ExpectEquality(t, fl.Carry, false)
	test.ExpectEquality(t, fl.Sign, true)
	test.ExpectEquality(t, fl.Overflow, true)

	r = fl.Add32(2, 3)
	test.ExpectEquality(t, r, uint32(5))
	test.ExpectEquality(t, fl.String(), "    ")
}

func TestIncrementDecrement(t *testing.T) {
	var fl registers.Flags

	fl.Carry = true
	r := fl.Increment32(0xffffffff)
	test.ExpectEquality(t, r, uint32(0))
	test.ExpectEquality(t, fl.Zero, true)
	test.ExpectEquality(t, fl.Carry, true)

	fl.Increment32(0x7fffffff)
	test.ExpectEquality(t, fl.Overflow, true)
	test.ExpectEquality(t, fl.Sign, true)

	fl.Carry = false
	r = fl.Decrement32(0)
	test.ExpectEquality(t, r, uint32(0xffffffff))
	test.ExpectEquality(t, fl.Carry, false)
	test.ExpectEquality(t, fl.Sign, true)
	test.ExpectEquality(t, fl.Overflow, false)

	fl.Decrement32(0x80000000)
	test.ExpectEquality(t, fl.Overflow, true)
}

func TestConditions(t *testing.T) {
	var fl registers.Flags

	fl.Subtract32(1, 2)
	test.ExpectEquality(t, fl.Test(registers.CondCarry), true)
	test.ExpectEquality(t, fl.Test(registers.CondBelowOrEqual), true)
	test.ExpectEquality(t, fl.Test(registers.CondAbove), false)
	test.ExpectEquality(t, fl.Test(registers.CondLess), true)
	test.ExpectEquality(t, fl.Test(registers.CondGreater), false)

	fl.Subtract32(2, 2)
	test.ExpectEquality(t, fl.Test(registers.CondZero), true)
	test.ExpectEquality(t, fl.Test(registers.CondLessOrEqual), true)
	test.ExpectEquality(t, fl.Test(registers.CondGreaterOrEqual), true)
	test.ExpectEquality(t, fl.Test(registers.CondNotZero), false)

	// signed comparison of -1 and 1
	fl.Subtract32(0xffffffff, 1)
	test.ExpectEquality(t, fl.Test(registers.CondLess), true)
	test.ExpectEquality(t, fl.Test(registers.CondAbove), true)

	test.ExpectEquality(t, registers.CondGreaterOrEqual.String(), "GE")
}
