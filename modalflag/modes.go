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

package modalflag

import (
	"errors"
	"flag"
	"io"
	"strings"
)

// ParseResult is returned by Parse() and indicates how the caller should
// proceed.
type ParseResult int

// List of valid ParseResult values.
const (
	// arguments were parsed successfully. if sub-modes were added before the
	// call to Parse() then Mode() will have been updated
	ParseContinue ParseResult = iota

	// help was requested and has already been written to the Output field
	ParseHelp

	// the arguments could not be parsed. the error is returned alongside
	// the result
	ParseError
)

// Modes handles command line arguments that are divided into modes, with
// each mode having its own set of flags. Output must be set before Parse() is
// called if help messages are to be seen.
type Modes struct {
	Output io.Writer

	args []string

	// index of the first argument not yet consumed by a mode selection
	cursor int

	// flags and sub-modes for the current mode. replaced by NewMode()
	flags    *flag.FlagSet
	subModes []string
	help     string
	parsed   bool

	// every mode selected since the call to NewArgs()
	path []string
}

func (md *Modes) String() string {
	return md.Path()
}

// Path joins every mode selected so far with a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// Mode is the most recently selected mode. Empty if no mode has been
// selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// NewArgs sets the arguments to be parsed and begins a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.cursor = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode discards the flags and sub-modes of the current mode. Arguments that
// have not been consumed will be parsed by the next call to Parse().
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
	md.help = ""
	md.parsed = false
}

// AdditionalHelp is printed after the flag and sub-mode information when help
// is requested for the current mode.
func (md *Modes) AdditionalHelp(help string) {
	md.help = help
}

// AddSubModes adds to the list of modes that can be selected by the next
// argument. The first sub-mode added is the default. Comparisons are case
// insensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, s := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// Parsed is true if Parse() has been called for the current mode, whether or
// not it succeeded.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// Parse the arguments for the current mode. Help messages are written to
// Output and result in ParseHelp, in which case the caller need print
// nothing further.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	usage := &strings.Builder{}
	md.flags.SetOutput(usage)

	err := md.flags.Parse(md.args[md.cursor:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			writeHelp(md.Output, usage.String(), md.Path(), md.subModes, md.help)
			return ParseHelp, nil
		}

		// an unrecognised flag is an error unless there is a default mode
		// to fall back on
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	sel := md.subModes[0]
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, s := range md.subModes {
		if s == arg {
			sel = s
			md.cursor++
			break
		}
	}
	md.path = append(md.path, sel)

	return ParseContinue, nil
}

// RemainingArgs are the arguments left after the most recent Parse() that
// are neither flags nor a selected sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered remaining argument or the empty string.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}
