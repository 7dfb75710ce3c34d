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

// Package memory implements the flat memory of the emulated machine. It is a
// single zero-initialised block of bytes addressed from zero. There is no
// memory map, no mirroring and no segmentation.
//
// Every access is bounds checked. Reading or writing an address at or beyond
// the size of the memory returns a curated error with the
// cpubus.AddressError pattern. This includes instruction fetches: an
// instruction pointer running off the end of memory is an error and not
// undefined behaviour.
//
//	CPU ---- cpu bus ---- MEMORY
//	                        |
//	                        ---- program loader (Load)
//
// The Memory type implements the cpubus.Memory interface. The Peek() and
// Poke() functions access memory in the same way but are intended for
// debugging and scripting, so that the intent of the caller is clear.
package memory
