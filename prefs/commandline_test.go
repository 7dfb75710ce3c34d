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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopher86/prefs"
	"github.com/jetsetilly/gopher86/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// each push is popped straight away and the unused remainder is
	// returned in key order
	cases := []struct {
		push   string
		remain string
	}{
		{"hardware.cpu.eip::0x0000", "hardware.cpu.eip::0x0000"},
		{"   hardware.cpu.esp::  0x8000 ", "hardware.cpu.esp::0x8000"},
		{"hardware.memory.size::65536; hardware.cpu.eip::0x100", "hardware.cpu.eip::0x100; hardware.memory.size::65536"},
		{" hardware.cpu.eip :: 0x0000 ;::x", "hardware.cpu.eip::0x0000"},
		{"hardware.cpu.eip", ""},
		{"hardware.cpu.eip;hardware.cpu.esp::0x10", "hardware.cpu.esp::0x10"},
	}

	for i, c := range cases {
		prefs.PushCommandLineStack(c.push)
		test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1, i)
		test.ExpectEquality(t, prefs.PopCommandLineStack(), c.remain, i)
	}
}

func TestCommandLineGet(t *testing.T) {
	prefs.PushCommandLineStack("hardware.cpu.eip::0x100;hardware.cpu.esp")

	ok, _ := prefs.GetCommandLinePref("hardware.cpu.esp")
	test.ExpectFailure(t, ok)

	ok, v := prefs.GetCommandLinePref("hardware.cpu.eip")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "0x100")

	// a value can only be used once
	ok, _ = prefs.GetCommandLinePref("hardware.cpu.eip")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineGroups(t *testing.T) {
	prefs.PushCommandLineStack("hardware.cpu.eip::0x100")
	prefs.PushCommandLineStack("hardware.cpu.eip::0x200")

	// only the most recent group is consulted
	ok, v := prefs.GetCommandLinePref("hardware.cpu.eip")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "0x200")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.cpu.eip::0x100")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
