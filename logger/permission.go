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

package logger

// Permission is consulted before an entry is added to the log. Log sources
// that are only sometimes of interest, such as instruction tracing, can
// implement it rather than guard every logging call.
type Permission interface {
	AllowLogging() bool
}

type fixed bool

func (p fixed) AllowLogging() bool {
	return bool(p)
}

// Allow always permits logging.
var Allow Permission = fixed(true)

// Deny never permits logging.
var Deny Permission = fixed(false)
