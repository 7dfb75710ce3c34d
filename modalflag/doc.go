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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//	_, _ = md.Parse()
//
// If the first argument after the flags is one of the sub-modes then it is
// consumed and Mode() returns its name. If it isn't, Mode() returns the first
// (default) sub-mode and the argument is left in place. Sub-mode comparisons
// are case insensitive.
//
// Once a mode has been selected, NewMode() starts a new set of flags for that
// mode and Parse() is called again to process the remaining arguments:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		trace := md.AddBool("trace", false, "log every instruction")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		run(*trace, md.RemainingArgs())
//	}
//
// Help messages are handled automatically by Parse(). They are printed to the
// Output field and Parse() returns ParseHelp.
//
// In addition to the basic flag types, AddHex() accepts unsigned 32-bit values
// written in decimal or in hex with a 0x prefix. This is useful for addresses.
package modalflag
