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

// Package programloader is used to load program binaries. A program is a raw
// binary image. There is no header and no relocation: the bytes are copied
// verbatim into memory at the origin address, where execution usually begins.
//
// Programs can be loaded from the local filesystem or from an HTTP or HTTPS
// URL.
//
//	ld := programloader.NewLoader("hello.bin")
//	err := ld.Load()
//
// The SHA-1 hash of the loaded data is recorded in the Hash field. If the Hash
// field is set before calling Load() then the loaded data must match it.
package programloader
