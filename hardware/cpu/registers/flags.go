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

package registers

import "strings"

// Bit positions of the flags in the packed EFLAGS word.
const (
	CarryBit    uint32 = 0x0001
	ZeroBit     uint32 = 0x0040
	SignBit     uint32 = 0x0080
	OverflowBit uint32 = 0x0800
)

// Flags is the EFLAGS register. Only the Carry, Zero, Sign and Overflow flags
// are modelled.
type Flags struct {
	Carry    bool
	Zero     bool
	Sign     bool
	Overflow bool
}

// NewFlags is the preferred method of initialisation for the Flags type. All
// flags are clear.
func NewFlags() Flags {
	return Flags{}
}

// Label returns an identifying string for the flags register.
func (fl Flags) Label() string {
	return "EFLAGS"
}

// String returns the flags as four characters in the order C, Z, S, O. A flag
// that is clear is shown as a space.
func (fl Flags) String() string {
	s := strings.Builder{}
	if fl.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune(' ')
	}
	if fl.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune(' ')
	}
	if fl.Sign {
		s.WriteRune('S')
	} else {
		s.WriteRune(' ')
	}
	if fl.Overflow {
		s.WriteRune('O')
	} else {
		s.WriteRune(' ')
	}
	return s.String()
}

// Reset clears all flags.
func (fl *Flags) Reset() {
	*fl = Flags{}
}

// Value converts the flags to the packed EFLAGS word.
func (fl Flags) Value() uint32 {
	var v uint32
	if fl.Carry {
		v |= CarryBit
	}
	if fl.Zero {
		v |= ZeroBit
	}
	if fl.Sign {
		v |= SignBit
	}
	if fl.Overflow {
		v |= OverflowBit
	}
	return v
}

// FromValue sets the flags from a packed EFLAGS word. Bits that are not
// modelled are ignored.
func (fl *Flags) FromValue(v uint32) {
	fl.Carry = v&CarryBit == CarryBit
	fl.Zero = v&ZeroBit == ZeroBit
	fl.Sign = v&SignBit == SignBit
	fl.Overflow = v&OverflowBit == OverflowBit
}

// Subtract32 returns a-b and updates all four flags.
func (fl *Flags) Subtract32(a, b uint32) uint32 {
	result := uint64(a) - uint64(b)
	r := uint32(result)

	sa := a>>31 != 0
	sb := b>>31 != 0
	sr := r>>31 != 0

	fl.Carry = result>>32 != 0
	fl.Zero = r == 0
	fl.Sign = sr
	fl.Overflow = sa != sb && sa != sr

	return r
}

// Subtract8 returns a-b and updates all four flags. The flags are derived at
// 8-bit width.
func (fl *Flags) Subtract8(a, b uint8) uint8 {
	result := uint16(a) - uint16(b)
	r := uint8(result)

	sa := a>>7 != 0
	sb := b>>7 != 0
	sr := r>>7 != 0

	fl.Carry = result>>8 != 0
	fl.Zero = r == 0
	fl.Sign = sr
	fl.Overflow = sa != sb && sa != sr

	return r
}

// Add32 returns a+b and updates all four flags.
func (fl *Flags) Add32(a, b uint32) uint32 {
	result := uint64(a) + uint64(b)
	r := uint32(result)

	sa := a>>31 != 0
	sb := b>>31 != 0
	sr := r>>31 != 0

	fl.Carry = result>>32 != 0
	fl.Zero = r == 0
	fl.Sign = sr
	fl.Overflow = sa == sb && sa != sr

	return r
}

// Increment32 returns a+1. The Zero, Sign and Overflow flags are updated. The
// Carry flag is unchanged.
func (fl *Flags) Increment32(a uint32) uint32 {
	r := a + 1
	fl.Zero = r == 0
	fl.Sign = r>>31 != 0
	fl.Overflow = a == 0x7fffffff
	return r
}

// Decrement32 returns a-1. The Zero, Sign and Overflow flags are updated. The
// Carry flag is unchanged.
func (fl *Flags) Decrement32(a uint32) uint32 {
	r := a - 1
	fl.Zero = r == 0
	fl.Sign = r>>31 != 0
	fl.Overflow = a == 0x80000000
	return r
}
