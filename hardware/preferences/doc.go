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

// Package preferences contains the preference values that configure the
// machine. The values are stored on disk with the prefs package and can be
// overridden for a single run with the command line stack of the prefs
// package.
//
//	hardware.memory.size    size of memory in bytes (default 1MiB)
//	hardware.cpu.eip        initial value of the EIP (default 0x7c00)
//	hardware.cpu.esp        initial value of ESP (default 0x7c00)
//	hardware.load.origin    address the program is loaded to (default 0x7c00)
//	hardware.load.size      maximum number of program bytes loaded (default 0x200)
//	hardware.cpu.limit      maximum number of instructions to execute (zero is unlimited)
package preferences
