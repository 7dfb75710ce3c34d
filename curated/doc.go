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

// Package curated wraps the plain Go error type with a pattern. A curated
// error remembers the pattern and the values it was created with, rather than
// only the formatted message. This means that callers can ask whether an error
// is of a particular kind without resorting to string comparison of the
// formatted message.
//
// Errors are created with Errorf(), which has the same signature as the
// function of the same name in the fmt package:
//
//	err := curated.Errorf("memory: address out of range (%#08x)", addr)
//
// Patterns that callers are expected to test for should be exported as string
// constants by the package that creates the error:
//
//	const AddressError = "memory: address out of range (%#08x)"
//
//	if curated.Is(err, cpubus.AddressError) {
//		...
//	}
//
// Is() tests the outermost error only. Has() searches the entire chain. The
// chain is formed by errors used as values of curated errors and by any
// wrapping error that implements Unwrap(), such as those created by
// github.com/pkg/errors:
//
//	err := curated.Errorf("machine: %v", curated.Errorf(cpubus.AddressError, addr))
//
//	curated.Is(err, cpubus.AddressError)  // false
//	curated.Has(err, cpubus.AddressError) // true
//
// The Error() function normalises the message so that adjacent duplicate
// parts are removed. Parts are separated by the sub-string ": ". For
// example, a "cpu: " error wrapped in a "cpu: %v" pattern prints with a
// single "cpu: " prefix. This frees code from worrying about whether the
// error it is wrapping already has the same context.
package curated
