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
	"flag"
	"fmt"
	"strconv"
)

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// address is a flag.Value for 32-bit unsigned values.
type address uint32

func (a *address) String() string {
	return fmt.Sprintf("0x%08x", uint32(*a))
}

func (a *address) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return fmt.Errorf("not a valid 32-bit value (%s)", s)
	}
	*a = address(v)
	return nil
}

// AddHex flag for next call to Parse(). The value is accepted in decimal or
// in hex with a 0x prefix.
func (md *Modes) AddHex(name string, value uint32, usage string) *uint32 {
	v := value
	md.flags.Var((*address)(&v), name, usage)
	return &v
}

// Visit calls fn with the name of every flag that was set on the command
// line, in lexicographical order.
func (md *Modes) Visit(fn func(name string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
