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

// Package ports implements the port I/O bus of the machine. Devices are
// attached to the bus at a port address with the Attach() function. Reading
// from a port with no device attached returns zero and writing to such a port
// does nothing.
//
// The Console type is the only device. It is conventionally attached at
// ConsolePort and transfers single bytes to and from the host. The host side
// is any io.Reader and io.Writer, usually standard input and standard output.
package ports
