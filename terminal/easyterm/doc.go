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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It wraps
// termios methods in functions with friendlier names.
//
// The console port of the emulated machine reads one byte at a time from the
// host's standard input. With the terminal in canonical mode the bytes are
// not available until the user presses return. CBreakMode() makes every
// keypress available immediately while still allowing the interrupt key to
// end the program.
//
// If the input file is not a terminal (for example, when input is redirected
// from a file or a pipe) the Terminal is inert and changing the mode has no
// effect.
package easyterm
