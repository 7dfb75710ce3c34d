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

// Package prefs facilitates the storage of preferential values in the
// Gopher86 system. It is a key/value store and the values are written to
// disk as lines of text of the form:
//
//	key :: value
//
// Values are typed. The Bool, Int and String types are supported. Values are
// registered with an instance of the Disk type with the Add() function and
// can then be saved to and loaded from disk.
//
// Hook functions can be registered with each value. They are called just
// before and just after a new value is set.
//
// The package also supports a stack of "command line" preferences. These are
// specified as a single string of key/value pairs separated by semicolons:
//
//	hardware.cpu.eip::0x0000; hardware.memory.size::65536
//
// A value added to the command line stack will override the value read from
// disk the next time the Disk.Load() function is called. Each command line
// value is used only once.
package prefs
