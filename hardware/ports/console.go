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

package ports

import (
	"errors"
	"io"

	"github.com/jetsetilly/gopher86/curated"
)

// ConsolePort is the conventional port address of the console.
const ConsolePort = 0x03f8

// EndOfInput is the value read from the console once the host input has been
// exhausted.
const EndOfInput = 0xff

// ConsoleError is the curated error pattern returned when the host side of the
// console fails.
const ConsoleError = "console: %v"

// Console transfers single bytes between the machine and the host.
type Console struct {
	in  io.Reader
	out io.Writer
	buf [1]uint8
}

// NewConsole is the preferred method of initialisation for the Console type.
// Either argument can be nil. A nil reader always reads as EndOfInput and a
// nil writer discards all output.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

func (con *Console) String() string {
	return "console"
}

// In implements the Port interface. Blocks until a byte is available from the
// host.
func (con *Console) In() (uint8, error) {
	if con.in == nil {
		return EndOfInput, nil
	}
	_, err := io.ReadFull(con.in, con.buf[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return EndOfInput, nil
		}
		return 0, curated.Errorf(ConsoleError, err)
	}
	return con.buf[0], nil
}

// Out implements the Port interface.
func (con *Console) Out(data uint8) error {
	if con.out == nil {
		return nil
	}
	con.buf[0] = data
	if _, err := con.out.Write(con.buf[:]); err != nil {
		return curated.Errorf(ConsoleError, err)
	}
	return nil
}
