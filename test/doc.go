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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect*() functions report a test error and allow the test to continue.
// The Demand*() functions are fatal to the test and should be used when
// subsequent tests depend on the value being correct.
//
// Success and failure are interpreted according to the type of the value.
// For a bool, true is success. For an error, nil is success. The untyped nil
// is also considered a success, because that is how an error-free function
// return reaches these functions.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output for comparison with an expected string.
package test
