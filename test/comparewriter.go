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

package test

import "strings"

// CompareWriter captures everything written to it so that the output of a
// function can be compared with what is expected.
type CompareWriter struct {
	captured strings.Builder
}

// Write implements the io.Writer interface.
func (tw *CompareWriter) Write(p []byte) (int, error) {
	return tw.captured.Write(p)
}

// Clear discards everything captured so far.
func (tw *CompareWriter) Clear() {
	tw.captured.Reset()
}

// Compare captured output with s.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.captured.String() == s
}

// Contains is true if s appears anywhere in the captured output.
func (tw *CompareWriter) Contains(s string) bool {
	return strings.Contains(tw.captured.String(), s)
}

// Lines splits the captured output into lines. A trailing newline does not
// produce an empty final line.
func (tw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(tw.captured.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (tw *CompareWriter) String() string {
	return tw.captured.String()
}
