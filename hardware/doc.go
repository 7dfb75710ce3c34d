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

// Package hardware is the base package for the emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains references to
// all the sub-systems: the CPU, the flat memory and the port bus. From here,
// the emulation can either be started to run continuously (with an optional
// callback to check for continuation) or it can be stepped one instruction at
// a time.
//
// A program is attached to the machine with AttachProgram(). The program is
// copied into memory verbatim and the CPU is reset so that the EIP and the ESP
// registers hold the values given in the hardware preferences. The emulation
// halts when the EIP reaches address zero.
package hardware
