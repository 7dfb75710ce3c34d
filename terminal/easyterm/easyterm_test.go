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

package easyterm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher86/terminal/easyterm"
	"github.com/jetsetilly/gopher86/test"
)

func TestNotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "input"))
	test.DemandSuccess(t, err)
	defer f.Close()

	pt, err := easyterm.NewTerminal(f)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, pt.IsTerminal())
	test.ExpectEquality(t, pt.Mode(), easyterm.ModeCanonical)

	// changing mode of a file that isn't a terminal has no effect other than
	// recording the mode
	test.ExpectSuccess(t, pt.CBreakMode())
	test.ExpectEquality(t, pt.Mode(), easyterm.ModeCBreak)
	test.ExpectSuccess(t, pt.Flush())
	test.ExpectSuccess(t, pt.RawMode())
	test.ExpectEquality(t, pt.Mode().String(), "raw")

	test.ExpectSuccess(t, pt.CleanUp())
	test.ExpectEquality(t, pt.Mode(), easyterm.ModeCanonical)
}

func TestNoInput(t *testing.T) {
	_, err := easyterm.NewTerminal(nil)
	test.ExpectFailure(t, err)
}
