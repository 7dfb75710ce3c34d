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

package easyterm

import (
	"fmt"
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Mode is the current input mode of the terminal.
type Mode int

// List of valid Mode values.
const (
	ModeCanonical Mode = iota
	ModeCBreak
	ModeRaw
)

func (m Mode) String() string {
	switch m {
	case ModeCanonical:
		return "canonical"
	case ModeCBreak:
		return "cbreak"
	case ModeRaw:
		return "raw"
	}
	return ""
}

// Terminal is the main container for posix terminals.
type Terminal struct {
	input *os.File

	// false if input is not a terminal
	isTerm bool

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	mode Mode

	mu sync.Mutex
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The attributes of the terminal at the time of the call are taken to
// be the canonical attributes.
func NewTerminal(input *os.File) (*Terminal, error) {
	if input == nil {
		return nil, fmt.Errorf("easyterm: terminal requires an input file")
	}

	pt := &Terminal{
		input:  input,
		isTerm: term.IsTerminal(int(input.Fd())),
	}

	if !pt.isTerm {
		return pt, nil
	}

	// prepare the attributes for the different terminal modes we'll be using
	err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr)
	if err != nil {
		return nil, fmt.Errorf("easyterm: %w", err)
	}

	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	return pt, nil
}

// IsTerminal returns false if the input file is not a terminal.
func (pt *Terminal) IsTerminal() bool {
	return pt.isTerm
}

// Mode returns the current mode of the terminal.
func (pt *Terminal) Mode() Mode {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.mode
}

func (pt *Terminal) setAttr(mode Mode, attr *unix.Termios) error {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if pt.isTerm {
		err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, attr)
		if err != nil {
			return fmt.Errorf("easyterm: %w", err)
		}
	}

	pt.mode = mode

	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	return pt.setAttr(ModeCanonical, &pt.canAttr)
}

// RawMode puts terminal into raw mode.
func (pt *Terminal) RawMode() error {
	return pt.setAttr(ModeRaw, &pt.rawAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (pt *Terminal) CBreakMode() error {
	return pt.setAttr(ModeCBreak, &pt.cbreakAttr)
}

// Flush discards any input that has not yet been read.
func (pt *Terminal) Flush() error {
	if !pt.isTerm {
		return nil
	}
	return termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH)
}

// CleanUp returns the terminal to canonical mode.
func (pt *Terminal) CleanUp() error {
	if pt.Mode() == ModeCanonical {
		return nil
	}
	return pt.CanonicalMode()
}
