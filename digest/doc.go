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

// Package digest is used to create a hash of the emulation over time. The
// hash can be compared with the hash of a previous run of the same program to
// detect changes in the behaviour of the emulation.
//
// The Execution type chains the state of the CPU after every instruction into
// a SHA-1 digest. Two runs will only have the same digest if every
// instruction executed resulted in the same register state, in the same
// order.
package digest
