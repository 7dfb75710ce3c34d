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

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// curated errors keep their pattern so that they can be identified without
// string matching on the final message.
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The message is not formatted until
// Error() is called.
func Errorf(pattern string, values ...any) error {
	return curated{pattern: pattern, values: values}
}

// Error implements the error interface. When a curated error wraps another
// with the same prefix, as in "cpu: cpu: unimplemented", the repeated part is
// written only once.
func (er curated) Error() string {
	parts := strings.Split(fmt.Sprintf(er.pattern, er.values...), ": ")

	msg := parts[:1]
	for _, p := range parts[1:] {
		if p != msg[len(msg)-1] {
			msg = append(msg, p)
		}
	}

	return strings.Join(msg, ": ")
}

// Unwrap returns the first value that is an error, making the wrapped error
// visible to errors.Is() and errors.As().
func (er curated) Unwrap() error {
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// IsAny is true if err is a curated error.
func IsAny(err error) bool {
	_, ok := err.(curated)
	return ok
}

// Is is true if err is a curated error created with pattern. Wrapped errors
// are not considered.
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has is true if a curated error created with pattern appears anywhere in the
// chain of err. The chain is followed through any error that implements
// Unwrap(), curated or not, and through every error value of a curated
// error.
func Has(err error, pattern string) bool {
	for err != nil {
		if er, ok := err.(curated); ok {
			if er.pattern == pattern {
				return true
			}
			for _, v := range er.values {
				if e, ok := v.(error); ok && Has(e, pattern) {
					return true
				}
			}
			return false
		}
		err = errors.Unwrap(err)
	}
	return false
}
